package models

// FinancingOptionsRequest is the request sent to the calculated
// financing-options endpoint to probe installments availability.
type FinancingOptionsRequest struct {
	FinancingCountryCode string `json:"financing_country_code"`
	TransactionAmount    Money  `json:"transaction_amount"`
}

// Money is an amount in the newer PayPal wire shape used by the financing
// endpoints.
type Money struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currency_code"`
}

// FinancingOptionsResponse is the response from the calculated
// financing-options endpoint.
type FinancingOptionsResponse struct {
	FinancingOptions []FinancingOptions `json:"financing_options"`
}

// FinancingOptions groups the financing offers calculated for one funding
// instrument. A payment qualifies for installments when at least one
// qualifying option is present.
type FinancingOptions struct {
	QualifyingFinancingOptions    []FinancingOption `json:"qualifying_financing_options"`
	NonQualifyingFinancingOptions []FinancingOption `json:"non_qualifying_financing_options,omitempty"`
}

// FinancingOption is a single installments offer.
type FinancingOption struct {
	Term            CreditTerm `json:"credit_financing"`
	MonthlyPayment  Money      `json:"monthly_payment"`
	TotalInterest   Money      `json:"total_interest"`
	TotalCost       Money      `json:"total_cost"`
	PaypalSubsidy   bool       `json:"paypal_subsidy,omitempty"`
	MinAmount       *Money     `json:"min_amount,omitempty"`
	MonthlyInterest *Money     `json:"monthly_percentage_rate,omitempty"`
}

// CreditTerm describes the financing product behind an option.
type CreditTerm struct {
	FinancingCode    string `json:"financing_code,omitempty"`
	APR              string `json:"apr,omitempty"`
	NominalRate      string `json:"nominal_rate,omitempty"`
	Term             int    `json:"term"`
	IntervalDuration string `json:"interval_duration,omitempty"`
}
