package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inventory_control/internal/service"

	"github.com/gin-gonic/gin"
)

const errInvalidQuantity = "Valid quantity is required (must be a non-negative number)"

// Request DTO for create-or-merge. Quantity and Price are pointers so that a
// missing field and an explicit zero are distinguishable downstream.
type productRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	SKU         string   `json:"sku"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// catalogError maps typed service errors onto status codes, with 500 as the
// fallback for anything unexpected.
func (h *Handler) catalogError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	var (
		vErr *service.ValidationError
		cErr *service.SKUConflictError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &cErr):
		c.JSON(http.StatusConflict, gin.H{"error": cErr.Error()})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
	}
}

// @Summary      Add or merge a product
// @Description  Inserts a new product, or adds quantity when the SKU already exists under the same name.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  productRequest  true  "Product payload"
// @Success      201  {object}  map[string]interface{}  "product id"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /products [post]
// @Security     BearerAuth
func (h *Handler) addProduct(c *gin.Context) {
	var req productRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	res, err := h.services.CreateOrMerge(c.Request.Context(), service.ProductInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	}, c.GetInt(ctxUserID))
	if err != nil {
		h.catalogError(c, "Failed to add product", "add_product_failed", err, "sku", req.SKU)
		return
	}

	msg := "Product added successfully"
	if res.Merged {
		msg = "Product quantity updated successfully"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": msg,
		"product": gin.H{"id": res.ID},
	})
}

// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page  query  int  false  "Page number (1-based)"
// @Success      200  {object}  map[string]interface{}  "products, pagination"
// @Failure      401  {object}  map[string]string
// @Router       /products [get]
// @Security     BearerAuth
func (h *Handler) listProducts(c *gin.Context) {
	page := 1
	if qs := c.Query("page"); qs != "" {
		if v, err := strconv.Atoi(qs); err == nil {
			page = v
		}
	}

	result, err := h.services.Catalog.List(c.Request.Context(), page)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"Failed to retrieve products", "list_products_failed", err, "page", page)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Products retrieved successfully",
		"products":   result.Products,
		"pagination": result.Pagination,
	})
}

// @Summary      Set product quantity
// @Description  Replaces (does not add to) the stored quantity.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Product id"
// @Param        body  body  quantityRequest  true  "New quantity"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id}/quantity [put]
// @Security     BearerAuth
func (h *Handler) updateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid product id is required"})
		return
	}

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQuantity})
		return
	}

	if err := h.services.SetQuantity(c.Request.Context(), id, *req.Quantity); err != nil {
		h.catalogError(c, "Failed to update the quantity", "update_quantity_failed", err, "id", id)
		return
	}

	// 201 mirrors the original client contract.
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Quantity updated successfully",
		"productId": id,
		"quantity":  *req.Quantity,
	})
}
