package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

const msgProductNotFound = "Product not found"

// ProductHandler handles product catalogue requests.
type ProductHandler struct {
	products service.ProductServiceInterface
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{products: products}
}

// Register mounts the product routes on rg.
func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.GET("/products/featured", h.Featured)
	rg.GET("/products/:id", h.Get)
	rg.POST("/products", h.Create)
	rg.PUT("/products/:id", h.Update)
	rg.DELETE("/products/:id", h.Delete)
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Featured handles GET /api/products/featured
func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.products.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch featured products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id, where id may also be a slug.
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.products.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}
	if p == nil {
		respondNotFound(c, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var in domain.NewProduct
	if !bindJSON(c, &in) {
		return
	}
	p, err := h.products.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch domain.ProductPatch
	if !bindJSON(c, &patch) {
		return
	}
	p, err := h.products.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	if p == nil {
		respondNotFound(c, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	respondDeleted(c, deleted, msgProductNotFound)
}
