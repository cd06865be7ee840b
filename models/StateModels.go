package models

import (
	"encoding/json"
	"fmt"
)

// LockerLine is one locker size line item (quantity, daily price, expected occupancy %).
type LockerLine struct {
	Qty       int     `json:"qty" example:"3"`
	Price     float64 `json:"price" example:"20"`
	Occupancy float64 `json:"occupancy" example:"60"`
}

// ScooterConfig holds the e-scooter rental service assumptions.
type ScooterConfig struct {
	Units       int     `json:"units" example:"5"`
	HourlyRate  float64 `json:"hourlyRate" example:"15"`
	Utilization float64 `json:"utilization" example:"4"`
}

// TransferConfig holds the luggage transfer service assumptions.
// Period is the annualization divisor: 365 = daily, 52 = weekly, 12 = monthly.
type TransferConfig struct {
	Volume      float64 `json:"volume" example:"10"`
	Period      float64 `json:"period" example:"365"`
	Price       float64 `json:"price" example:"50"`
	IsPortfolio bool    `json:"isPortfolio" example:"false"`
}

// DeliveryConfig holds the airport luggage delivery assumptions.
// CustomPrice, when set, strictly overrides the airport's reference price.
type DeliveryConfig struct {
	SelectedAirport string   `json:"selectedAirport" example:"DXB"`
	Volume          float64  `json:"volume" example:"10"`
	Period          float64  `json:"period" example:"365"`
	CustomPrice     *float64 `json:"customPrice"`
	Scope           string   `json:"scope" example:"per-property"`
}

// Delivery scope values. "per-property" volumes are multiplied by the property
// count; "total" volumes already represent the whole portfolio.
const (
	DeliveryScopePerProperty = "per-property"
	DeliveryScopeTotal       = "total"
)

// Configuration is the full calculator state for one property deal.
type Configuration struct {
	ClientName         string  `json:"clientName" example:"New Client"`
	PropertyType       string  `json:"propertyType" example:"hotel"`
	LocationFactor     float64 `json:"locationFactor" example:"1.2"`
	ContractTerm       int     `json:"contractTerm" example:"5"`
	RevenueShare       float64 `json:"revenueShare" example:"20"`
	NumberOfProperties int     `json:"numberOfProperties" example:"1"`

	// Informational only, not used in revenue computation.
	TotalKeys       int `json:"totalKeys" example:"150"`
	AvgDailyTraffic int `json:"avgDailyTraffic" example:"45"`

	LockerM            LockerLine `json:"lockerM"`
	LockerL            LockerLine `json:"lockerL"`
	LockerXL           LockerLine `json:"lockerXL"`
	AvailableWallSpace float64    `json:"availableWallSpace" example:"5"`

	ScootersEnabled  bool           `json:"scootersEnabled" example:"false"`
	Scooters         ScooterConfig  `json:"scooters"`
	TransfersEnabled bool           `json:"transfersEnabled" example:"false"`
	Transfers        TransferConfig `json:"transfers"`
	DeliveryEnabled  bool           `json:"deliveryEnabled" example:"false"`
	Delivery         DeliveryConfig `json:"delivery"`

	// Free text shown on the proposal document. May contain HTML. The key is
	// always serialized so clearing the field overwrites the stored value.
	Notes string `json:"notes"`
}

// DefaultConfiguration returns the baseline hotel installation used for new
// deals and as the fill-in source when restoring older stored state.
func DefaultConfiguration() Configuration {
	return Configuration{
		ClientName:         "New Client",
		PropertyType:       "hotel",
		LocationFactor:     1.2,
		ContractTerm:       5,
		RevenueShare:       20,
		NumberOfProperties: 1,
		TotalKeys:          150,
		AvgDailyTraffic:    45,
		LockerM:            LockerLine{Qty: 3, Price: 20, Occupancy: 60},
		LockerL:            LockerLine{Qty: 5, Price: 30, Occupancy: 55},
		LockerXL:           LockerLine{Qty: 6, Price: 40, Occupancy: 50},
		AvailableWallSpace: 5,
		ScootersEnabled:    false,
		Scooters:           ScooterConfig{Units: 5, HourlyRate: 15, Utilization: 4},
		TransfersEnabled:   false,
		Transfers:          TransferConfig{Volume: 10, Period: 365, Price: 50, IsPortfolio: false},
		DeliveryEnabled:    false,
		Delivery: DeliveryConfig{
			SelectedAirport: "DXB",
			Volume:          10,
			Period:          365,
			CustomPrice:     nil,
			Scope:           DeliveryScopePerProperty,
		},
	}
}

// nestedKeys are the object-valued fields merged one level deep. Everything
// else is merged shallowly at the top level.
var nestedKeys = map[string]bool{
	"lockerM":   true,
	"lockerL":   true,
	"lockerXL":  true,
	"scooters":  true,
	"transfers": true,
	"delivery":  true,
}

func configMap(cfg Configuration) map[string]interface{} {
	raw, _ := json.Marshal(cfg)
	var m map[string]interface{}
	_ = json.Unmarshal(raw, &m)
	return m
}

// mergeMaps overlays src onto dst. Known nested objects are merged one level
// deep (src sub-fields win, dst fills gaps); all other keys are replaced.
// Keys present in src but not in dst are kept, so fields a newer schema does
// not know about are never dropped.
func mergeMaps(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		if nestedKeys[k] {
			sub, okSub := v.(map[string]interface{})
			base, okBase := dst[k].(map[string]interface{})
			if okSub && okBase {
				for sk, sv := range sub {
					base[sk] = sv
				}
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

// MergeWithDefaults restores a Configuration from a stored JSON blob that may
// predate the current schema. Stored values win; fields the blob lacks are
// filled from DefaultConfiguration; unknown stored fields are preserved in the
// returned merged blob. A blob that cannot be parsed, or whose field types no
// longer match the schema, falls back entirely to defaults.
func MergeWithDefaults(stored []byte) (Configuration, []byte) {
	merged := configMap(DefaultConfiguration())

	if len(stored) > 0 {
		var in map[string]interface{}
		if err := json.Unmarshal(stored, &in); err == nil {
			merged = mergeMaps(merged, in)
		}
	}

	raw, _ := json.Marshal(merged)
	var cfg Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		cfg = DefaultConfiguration()
		raw, _ = json.Marshal(configMap(cfg))
	}
	return cfg, raw
}

// EncodeState serializes cfg for persistence, carrying over any unknown
// fields present in the previously stored blob.
func EncodeState(prevStored []byte, cfg Configuration) []byte {
	base := map[string]interface{}{}
	if len(prevStored) > 0 {
		_ = json.Unmarshal(prevStored, &base)
	}
	merged := mergeMaps(base, configMap(cfg))
	raw, _ := json.Marshal(merged)
	return raw
}

// UpdateCommand is a single-field mutation of the live configuration. Field
// names the known set of paths; anything else is rejected.
type UpdateCommand struct {
	Field string          `json:"field" example:"lockerM.qty"`
	Value json.RawMessage `json:"value" swaggertype:"object"`
}

func decodeInto(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("value is required")
	}
	return json.Unmarshal(raw, dst)
}

// ApplyUpdate mutates one configuration field addressed by cmd.Field. Unknown
// fields and type-mismatched values return an error and leave cfg untouched.
func (c *Configuration) ApplyUpdate(cmd UpdateCommand) error {
	switch cmd.Field {
	case "clientName":
		return decodeInto(cmd.Value, &c.ClientName)
	case "propertyType":
		return decodeInto(cmd.Value, &c.PropertyType)
	case "locationFactor":
		return decodeInto(cmd.Value, &c.LocationFactor)
	case "contractTerm":
		return decodeInto(cmd.Value, &c.ContractTerm)
	case "revenueShare":
		return decodeInto(cmd.Value, &c.RevenueShare)
	case "numberOfProperties":
		return decodeInto(cmd.Value, &c.NumberOfProperties)
	case "totalKeys":
		return decodeInto(cmd.Value, &c.TotalKeys)
	case "avgDailyTraffic":
		return decodeInto(cmd.Value, &c.AvgDailyTraffic)
	case "availableWallSpace":
		return decodeInto(cmd.Value, &c.AvailableWallSpace)
	case "notes":
		return decodeInto(cmd.Value, &c.Notes)
	case "lockerM.qty":
		return decodeInto(cmd.Value, &c.LockerM.Qty)
	case "lockerM.price":
		return decodeInto(cmd.Value, &c.LockerM.Price)
	case "lockerM.occupancy":
		return decodeInto(cmd.Value, &c.LockerM.Occupancy)
	case "lockerL.qty":
		return decodeInto(cmd.Value, &c.LockerL.Qty)
	case "lockerL.price":
		return decodeInto(cmd.Value, &c.LockerL.Price)
	case "lockerL.occupancy":
		return decodeInto(cmd.Value, &c.LockerL.Occupancy)
	case "lockerXL.qty":
		return decodeInto(cmd.Value, &c.LockerXL.Qty)
	case "lockerXL.price":
		return decodeInto(cmd.Value, &c.LockerXL.Price)
	case "lockerXL.occupancy":
		return decodeInto(cmd.Value, &c.LockerXL.Occupancy)
	case "scootersEnabled":
		return decodeInto(cmd.Value, &c.ScootersEnabled)
	case "scooters.units":
		return decodeInto(cmd.Value, &c.Scooters.Units)
	case "scooters.hourlyRate":
		return decodeInto(cmd.Value, &c.Scooters.HourlyRate)
	case "scooters.utilization":
		return decodeInto(cmd.Value, &c.Scooters.Utilization)
	case "transfersEnabled":
		return decodeInto(cmd.Value, &c.TransfersEnabled)
	case "transfers.volume":
		return decodeInto(cmd.Value, &c.Transfers.Volume)
	case "transfers.period":
		return decodeInto(cmd.Value, &c.Transfers.Period)
	case "transfers.price":
		return decodeInto(cmd.Value, &c.Transfers.Price)
	case "transfers.isPortfolio":
		return decodeInto(cmd.Value, &c.Transfers.IsPortfolio)
	case "deliveryEnabled":
		return decodeInto(cmd.Value, &c.DeliveryEnabled)
	case "delivery.selectedAirport":
		return decodeInto(cmd.Value, &c.Delivery.SelectedAirport)
	case "delivery.volume":
		return decodeInto(cmd.Value, &c.Delivery.Volume)
	case "delivery.period":
		return decodeInto(cmd.Value, &c.Delivery.Period)
	case "delivery.customPrice":
		return decodeInto(cmd.Value, &c.Delivery.CustomPrice)
	case "delivery.scope":
		return decodeInto(cmd.Value, &c.Delivery.Scope)
	default:
		return fmt.Errorf("unknown configuration field %q", cmd.Field)
	}
}
