package checkout

// Request is the raw checkout payload. Section pointers and per-line field
// pointers distinguish "missing" from zero values so validation can report
// the right reason instead of failing decode.
type Request struct {
	Cart     []CartLine    `json:"cart"`
	Shipping *ShippingInfo `json:"shipping"`
	Payment  *PaymentInfo  `json:"payment"`
}

// CartLine carries the client's claim for one product. Quantity decodes as a
// JSON number so non-integers are rejected with a stable reason rather than
// a decode error. The claimed price is checked against the catalog and then
// discarded.
type CartLine struct {
	ID       string   `json:"id"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	State     string `json:"state,omitempty"`
}

// PaymentInfo is transient and never persisted. Method selects which of the
// remaining fields apply.
type PaymentInfo struct {
	Method      string `json:"method"`
	CardNumber  string `json:"cardNumber,omitempty"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
	CardName    string `json:"cardName,omitempty"`
	CVV         string `json:"cvv,omitempty"`
	PayPalEmail string `json:"paypalEmail,omitempty"`
}
