package models

// Swagger / API docs: common request and response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid input"`
	Details string `json:"details,omitempty" example:""`
}

// SuccessResponse is used in @Success for generic success
type SuccessResponse struct {
	Message string      `json:"message" example:"Success"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse is generic response for APIs that return only {"message": "..."}
type MessageResponse struct {
	Message string `json:"message" example:"Success"`
}

// CalculationResponse is used in @Success for the calculate endpoint (swagger)
type CalculationResponse struct {
	Financials   FinancialSummary `json:"financials"`
	Space        SpaceMetrics     `json:"space"`
	OverCapacity bool             `json:"overCapacity" example:"false"`
}

// StateResponse is used in @Success for state endpoints (swagger)
type StateResponse struct {
	State      Configuration    `json:"state"`
	Financials FinancialSummary `json:"financials"`
	Space      SpaceMetrics     `json:"space"`
}

// ReferenceResponse is used in @Success for the reference data endpoint (swagger)
type ReferenceResponse struct {
	Currency         string                   `json:"currency" example:"AED"`
	Locations        []Location               `json:"locations"`
	PropertyTypes    []PropertyType           `json:"propertyTypes"`
	TransferPeriods  []TransferPeriod         `json:"transferPeriods"`
	Airports         []Airport                `json:"airports"`
	LockerSpecs      []LockerSpec             `json:"lockerSpecs"`
	PricingReference map[string][]PricingTier `json:"pricingReference"`
}
