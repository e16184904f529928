package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/repository"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

// HandleGetOrder handles GET /api/orders/:id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		order, err := repos.Orders.GetByID(c.Request.Context(), orderID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, buildOrderDetails(order))
	}
}
