package models

// Currency is the display currency for all amounts.
const Currency = "AED"

// Location is a venue location tier and its revenue multiplier.
type Location struct {
	Name   string  `json:"name" example:"Downtown"`
	Factor float64 `json:"factor" example:"1.2"`
}

// PropertyType is a supported venue category.
type PropertyType struct {
	Value string `json:"value" example:"hotel"`
	Label string `json:"label" example:"Hotel"`
}

// TransferPeriod describes an annualization divisor for transfer volume.
type TransferPeriod struct {
	Value float64 `json:"value" example:"365"`
	Label string  `json:"label" example:"Daily"`
}

// Airport is a UAE airport with its reference delivery price.
type Airport struct {
	Code  string  `json:"code" example:"DXB"`
	Name  string  `json:"name" example:"Dubai International Airport"`
	Price float64 `json:"price" example:"149"`
}

// LockerSpec gives catalog dimensions for one hospitality locker size,
// in centimeters (width x depth x height).
type LockerSpec struct {
	Size   string `json:"size" example:"M"`
	Width  int    `json:"width" example:"48"`
	Depth  int    `json:"depth" example:"28"`
	Height int    `json:"height" example:"58"`
	Fits   string `json:"fits" example:"Small bags, laptops, personal items"`
}

// PricingTier is one duration-based rate in the pricing reference card.
type PricingTier struct {
	Label string  `json:"label" example:"3 hours"`
	Price float64 `json:"price" example:"9"`
}

// Locations lists the selectable location tiers.
var Locations = []Location{
	{Name: "Standard City", Factor: 1.0},
	{Name: "Tourist Hub", Factor: 1.5},
	{Name: "Downtown", Factor: 1.2},
	{Name: "Transit Zone", Factor: 1.3},
	{Name: "Remote Area", Factor: 0.8},
}

// PropertyTypes lists the supported venue categories.
var PropertyTypes = []PropertyType{
	{Value: "hotel", Label: "Hotel"},
	{Value: "residential", Label: "Residential Building"},
	{Value: "commercial", Label: "Commercial / Office"},
	{Value: "entertainment", Label: "Entertainment Venue"},
	{Value: "waterpark", Label: "Waterpark"},
}

// TransferPeriods lists the transfer volume reporting periods.
var TransferPeriods = []TransferPeriod{
	{Value: 365, Label: "Daily"},
	{Value: 52, Label: "Weekly"},
	{Value: 12, Label: "Monthly"},
}

// UAEAirports lists the delivery destinations with reference prices,
// anchored at the AED 149 starting price for Dubai International.
var UAEAirports = []Airport{
	{Code: "DXB", Name: "Dubai International Airport", Price: 149},
	{Code: "DWC", Name: "Al Maktoum International Airport", Price: 179},
	{Code: "AUH", Name: "Abu Dhabi International Airport", Price: 199},
	{Code: "SHJ", Name: "Sharjah International Airport", Price: 169},
	{Code: "RKT", Name: "Ras Al Khaimah International Airport", Price: 219},
}

// LockerSpecs lists the hospitality range from the product catalog.
var LockerSpecs = []LockerSpec{
	{Size: "M", Width: 48, Depth: 28, Height: 58, Fits: "Small bags, laptops, personal items"},
	{Size: "L", Width: 48, Depth: 33, Height: 85, Fits: "Medium suitcases, carry-on bags, backpacks"},
	{Size: "XL", Width: 48, Depth: 55, Height: 85, Fits: "Large suitcases, oversized bags, golf bags"},
}

// PricingReference is the market pricing card shown alongside the calculator.
var PricingReference = map[string][]PricingTier{
	"lockerM": {
		{Label: "3 hours", Price: 9},
		{Label: "6 hours", Price: 16},
		{Label: "12 hours", Price: 19},
		{Label: "24 hours", Price: 32},
		{Label: "7 days", Price: 128},
	},
	"lockerL": {
		{Label: "3 hours", Price: 13},
		{Label: "6 hours", Price: 19},
		{Label: "12 hours", Price: 26},
		{Label: "24 hours", Price: 38},
		{Label: "7 days", Price: 152},
	},
	"lockerXL": {
		{Label: "3 hours", Price: 16},
		{Label: "6 hours", Price: 26},
		{Label: "12 hours", Price: 31},
		{Label: "24 hours", Price: 44},
		{Label: "7 days", Price: 176},
	},
	"scooters": {
		{Label: "Hourly", Price: 1.13},
		{Label: "Monthly pass", Price: 149},
	},
	"transfers": {
		{Label: "Starting from", Price: 149},
	},
}

// AirportByCode looks up an airport by its IATA code.
func AirportByCode(code string) (Airport, bool) {
	for _, a := range UAEAirports {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}
