package domain

import "time"

// Product is a catalog entry. The catalog is immutable and supplied
// externally; prices carry 2-place precision.
type Product struct {
	ID          string
	Name        string
	Price       float64
	MaxQuantity int
}

// Customer summarizes the buyer on a confirmed order
type Customer struct {
	Name  string
	Email string
}

// ShippingAddress is the delivery address copied onto the order
type ShippingAddress struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// OrderItem is a priced line item on a confirmed order. Price and Total
// come from the catalog, never from the client.
type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Total     float64
}

// Totals are the server-computed monetary components of an order.
// Each component is rounded to 2 decimal places independently.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Order is only constructed after every cart line passes catalog, quantity
// and price checks and shipping/payment pass format checks.
type Order struct {
	ID             string
	TrackingNumber string
	Status         OrderStatus
	OrderDate      time.Time
	Customer       Customer
	Shipping       ShippingAddress
	Items          []OrderItem
	Totals         Totals
	PaymentMethod  PaymentMethod
	TransactionID  string
	CreatedAt      time.Time
}
