package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/checkout-api/internal/checkout"
	"github.com/swiftmart/checkout-api/internal/domain"
	"github.com/swiftmart/checkout-api/pkg/errors"
)

const estimatedDelivery = "5-7 business days"

// CheckoutResponse is the success envelope for a confirmed order
type CheckoutResponse struct {
	Success           bool         `json:"success"`
	OrderID           string       `json:"order_id"`
	TrackingNumber    string       `json:"tracking_number"`
	Status            string       `json:"status"`
	Message           string       `json:"message"`
	OrderDetails      OrderDetails `json:"order_details"`
	EstimatedDelivery string       `json:"estimated_delivery"`
}

type OrderDetails struct {
	OrderID         string          `json:"order_id"`
	TrackingNumber  string          `json:"tracking_number"`
	Status          string          `json:"status"`
	OrderDate       string          `json:"order_date"`
	Customer        CustomerInfo    `json:"customer"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Items           []OrderItem     `json:"items"`
	Totals          Totals          `json:"totals"`
	PaymentMethod   string          `json:"payment_method"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ErrorResponse is the failure envelope; Error carries the human message
// only, never internal details.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// HandleCheckout handles POST /api/checkout
func HandleCheckout(svc *checkout.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, &errors.ErrMalformedInput{Message: "invalid request body"})
			return
		}

		order, err := svc.Checkout(c.Request.Context(), &req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			Success:           true,
			OrderID:           order.ID,
			TrackingNumber:    order.TrackingNumber,
			Status:            string(order.Status),
			Message:           "Order placed successfully",
			OrderDetails:      buildOrderDetails(order),
			EstimatedDelivery: estimatedDelivery,
		})
	}
}

func buildOrderDetails(order *domain.Order) OrderDetails {
	items := make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItem{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		}
	}

	return OrderDetails{
		OrderID:        order.ID,
		TrackingNumber: order.TrackingNumber,
		Status:         string(order.Status),
		OrderDate:      order.OrderDate.Format(time.RFC3339),
		Customer: CustomerInfo{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
		},
		ShippingAddress: ShippingAddress{
			Address: order.Shipping.Address,
			City:    order.Shipping.City,
			State:   order.Shipping.State,
			ZipCode: order.Shipping.ZipCode,
			Country: order.Shipping.Country,
		},
		Items: items,
		Totals: Totals{
			Subtotal: order.Totals.Subtotal,
			Shipping: order.Totals.Shipping,
			Tax:      order.Totals.Tax,
			Total:    order.Totals.Total,
		},
		PaymentMethod: string(order.PaymentMethod),
	}
}

// respondError maps the error taxonomy to HTTP statuses: malformed or
// validation failures are 400, a declined charge is 402, anything else is a
// generic 500 with details logged only.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrMalformedInput:
		writeError(c, http.StatusBadRequest, e.Message)
	case *errors.ErrValidation:
		writeError(c, http.StatusBadRequest, e.Message)
	case *errors.ErrPaymentDeclined:
		writeError(c, http.StatusPaymentRequired, e.Reason)
	default:
		logger.Error("Checkout failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
