package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

const msgServiceNotFound = "Service not found"

// ServiceHandler handles the services catalogue.
type ServiceHandler struct {
	catalog service.ServiceCatalogInterface
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalog service.ServiceCatalogInterface) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// Register mounts the service routes on rg.
func (h *ServiceHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/services", h.List)
	rg.GET("/services/featured", h.Featured)
	rg.GET("/services/hierarchy", h.Hierarchy)
	rg.GET("/services/parent/:parentId", h.ByParent)
	rg.GET("/services/:id/related", h.Related)
	rg.GET("/services/:id", h.Get)
	rg.POST("/services", h.Create)
	rg.PUT("/services/:id", h.Update)
	rg.DELETE("/services/:id", h.Delete)
}

// List handles GET /api/services
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Featured handles GET /api/services/featured
func (h *ServiceHandler) Featured(c *gin.Context) {
	services, err := h.catalog.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch featured services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Hierarchy handles GET /api/services/hierarchy
func (h *ServiceHandler) Hierarchy(c *gin.Context) {
	tree, err := h.catalog.Hierarchy(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch service hierarchy")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// ByParent handles GET /api/services/parent/:parentId. The literal "null"
// selects main services.
func (h *ServiceHandler) ByParent(c *gin.Context) {
	var parentID *int64
	if raw := c.Param("parentId"); raw != nullParent {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			respondMessage(c, http.StatusBadRequest, msgInvalidID)
			return
		}
		parentID = &id
	}

	services, err := h.catalog.ByParent(c.Request.Context(), parentID)
	if err != nil {
		respondError(c, err, "Failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Related handles GET /api/services/:id/related
func (h *ServiceHandler) Related(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	services, err := h.catalog.Related(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch related services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get handles GET /api/services/:id, where id may also be a slug.
func (h *ServiceHandler) Get(c *gin.Context) {
	detail, err := h.catalog.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch service")
		return
	}
	if detail == nil {
		respondNotFound(c, msgServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create handles POST /api/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var in domain.NewService
	if !bindJSON(c, &in) {
		return
	}
	svc, err := h.catalog.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /api/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch domain.ServicePatch
	if !bindJSON(c, &patch) {
		return
	}
	svc, err := h.catalog.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "Failed to update service")
		return
	}
	if svc == nil {
		respondNotFound(c, msgServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete service")
		return
	}
	respondDeleted(c, deleted, msgServiceNotFound)
}
