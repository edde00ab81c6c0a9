package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Catalog analytics
// @Description  The most stocked and most expensive product; null while the catalog is empty.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "mostStockedProduct, mostExpensiveProduct"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics [get]
// @Security     BearerAuth
func (h *Handler) getAnalytics(c *gin.Context) {
	snap, err := h.services.Snapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"Failed to fetch analytics", "analytics_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mostStockedProduct":   snap.MostStockedProduct,
		"mostExpensiveProduct": snap.MostExpensiveProduct,
	})
}
