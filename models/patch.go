package models

// Patch is a single partial-update operation on a payment resource. An
// ordered sequence of patches is submitted as one atomic request.
type Patch struct {
	Operation string      `json:"op"`
	Path      string      `json:"path"`
	Value     interface{} `json:"value,omitempty"`
}

// ShippingAddress is the delivery destination patched onto a payment before
// it is executed.
type ShippingAddress struct {
	RecipientName string `json:"recipient_name,omitempty"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code"`
	CountryCode   string `json:"country_code"`
}

// Amount is the monetary total of a payment transaction, optionally broken
// down into its parts.
type Amount struct {
	Total    string         `json:"total"`
	Currency string         `json:"currency"`
	Details  *AmountDetails `json:"details,omitempty"`
}

// AmountDetails itemises an Amount. All values are formatted decimals.
type AmountDetails struct {
	Subtotal string `json:"subtotal,omitempty"`
	Shipping string `json:"shipping,omitempty"`
	Tax      string `json:"tax,omitempty"`
}
