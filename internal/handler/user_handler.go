package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserHandler handles admin accounts and login.
type UserHandler struct {
	users service.UserServiceInterface
	auth  service.AuthServiceInterface
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserServiceInterface, auth service.AuthServiceInterface) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// Register mounts the user and auth routes on rg.
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.POST("/users", h.Create)
	rg.POST("/auth/login", h.Login)
}

// List handles GET /api/users. Passwords are never serialised.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var in domain.NewUser
	if !bindJSON(c, &in) {
		return
	}
	user, err := h.users.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, session)
}
