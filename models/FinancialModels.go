package models

// RevenueMix is the share of daily gross revenue per stream, in percent.
type RevenueMix struct {
	Lockers   float64 `json:"lockers" example:"100"`
	Scooters  float64 `json:"scooters" example:"0"`
	Transfers float64 `json:"transfers" example:"0"`
	Delivery  float64 `json:"delivery" example:"0"`
}

// FinancialSummary is the complete projection for one configuration. Gross
// figures are the venue's total take; partner figures are the property
// partner's contractual share. All amounts are AED.
type FinancialSummary struct {
	DailyLockerGross   float64 `json:"dailyLockerGross"`
	DailyScooterGross  float64 `json:"dailyScooterGross"`
	DailyTransferGross float64 `json:"dailyTransferGross"`
	DailyDeliveryGross float64 `json:"dailyDeliveryGross"`
	TotalDailyGross    float64 `json:"totalDailyGross"`
	TotalAnnualGross   float64 `json:"totalAnnualGross"`

	PartnerDaily    float64 `json:"partnerDaily"`
	PartnerMonthly  float64 `json:"partnerMonthly"`
	PartnerAnnual   float64 `json:"partnerAnnual"`
	PartnerContract float64 `json:"partnerContract"`

	Mix RevenueMix `json:"mix"`
}

// SpaceMetrics describes the wall space required by the locker configuration.
type SpaceMetrics struct {
	TotalLockers int     `json:"totalLockers" example:"14"`
	WidthNeeded  float64 `json:"widthNeeded" example:"2.2"`
	UnitsNeeded  int     `json:"unitsNeeded" example:"1"`
}
