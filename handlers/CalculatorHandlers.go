package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"

	"citylockers/models"

	"github.com/gin-gonic/gin"
)

// SeasonalityFactor is the weighted average of the Dubai tourist demand
// curve: 5 high-season months at 1.15, 1 low-season month at 0.85, 6
// baseline months at 1.00.
const SeasonalityFactor = (5*1.15 + 1*0.85 + 6*1.0) / 12

// Physical ratio of the locker racks: 14 lockers occupy one 2.2 m wall unit,
// uniformly across sizes.
const (
	LockersPerUnit  = 14
	UnitWidthMeters = 2.2
)

// ---------- Revenue formulas ----------

// CalculateLockerRevenue returns the daily gross for one locker size line.
func CalculateLockerRevenue(qty int, price, occupancy, locationFactor float64) float64 {
	return price * float64(qty) * (occupancy / 100) * locationFactor * SeasonalityFactor
}

// CalculateScooterRevenue returns the daily gross for the scooter fleet.
func CalculateScooterRevenue(units int, hourlyRate, utilizationHours, locationFactor float64) float64 {
	return float64(units) * hourlyRate * utilizationHours * locationFactor * SeasonalityFactor
}

// CalculateTransferRevenue returns the daily gross for transfer-style
// services. Volume is normalized to a daily figure via the period divisor
// (365 daily, 52 weekly, 12 monthly). Transfers are not modeled as
// location-sensitive, so no location factor applies.
func CalculateTransferRevenue(volume, periodDivisor, price float64) float64 {
	dailyVolume := volume * (periodDivisor / 365)
	return dailyVolume * price * SeasonalityFactor
}

// ResolveDeliveryPrice returns the effective per-delivery price: the custom
// override when set, otherwise the selected airport's reference price.
func ResolveDeliveryPrice(d models.DeliveryConfig) float64 {
	if d.CustomPrice != nil {
		return *d.CustomPrice
	}
	if airport, ok := models.AirportByCode(d.SelectedAirport); ok {
		return airport.Price
	}
	return 0
}

// CalculateSpaceUtilization converts locker counts into required wall space.
// Width is continuous; units are rounded up because partial racks cannot be
// purchased.
func CalculateSpaceUtilization(qtyM, qtyL, qtyXL int) models.SpaceMetrics {
	totalLockers := qtyM + qtyL + qtyXL
	return models.SpaceMetrics{
		TotalLockers: totalLockers,
		WidthNeeded:  float64(totalLockers) / LockersPerUnit * UnitWidthMeters,
		UnitsNeeded:  int(math.Ceil(float64(totalLockers) / LockersPerUnit)),
	}
}

// ---------- Aggregator ----------

// CalculateFinancials produces the full projection for a configuration. It is
// pure and total: degenerate input yields zero figures, never an error.
func CalculateFinancials(cfg models.Configuration) models.FinancialSummary {
	propertyCount := float64(cfg.NumberOfProperties)
	if propertyCount < 1 {
		propertyCount = 1
	}

	dailyRevM := CalculateLockerRevenue(cfg.LockerM.Qty, cfg.LockerM.Price, cfg.LockerM.Occupancy, cfg.LocationFactor)
	dailyRevL := CalculateLockerRevenue(cfg.LockerL.Qty, cfg.LockerL.Price, cfg.LockerL.Occupancy, cfg.LocationFactor)
	dailyRevXL := CalculateLockerRevenue(cfg.LockerXL.Qty, cfg.LockerXL.Price, cfg.LockerXL.Occupancy, cfg.LocationFactor)
	dailyLockerGross := (dailyRevM + dailyRevL + dailyRevXL) * propertyCount

	dailyScooterGross := 0.0
	if cfg.ScootersEnabled {
		dailyScooterGross = CalculateScooterRevenue(cfg.Scooters.Units, cfg.Scooters.HourlyRate,
			cfg.Scooters.Utilization, cfg.LocationFactor) * propertyCount
	}

	dailyTransferGross := 0.0
	if cfg.TransfersEnabled {
		dailyTransferGross = CalculateTransferRevenue(cfg.Transfers.Volume, cfg.Transfers.Period, cfg.Transfers.Price)
		// Portfolio volume already covers every property.
		if !cfg.Transfers.IsPortfolio {
			dailyTransferGross *= propertyCount
		}
	}

	dailyDeliveryGross := 0.0
	if cfg.DeliveryEnabled {
		price := ResolveDeliveryPrice(cfg.Delivery)
		dailyDeliveryGross = CalculateTransferRevenue(cfg.Delivery.Volume, cfg.Delivery.Period, price)
		if cfg.Delivery.Scope != models.DeliveryScopeTotal {
			dailyDeliveryGross *= propertyCount
		}
	}

	totalDailyGross := dailyLockerGross + dailyScooterGross + dailyTransferGross + dailyDeliveryGross
	totalAnnualGross := totalDailyGross * 365

	partnerDaily := totalDailyGross * (cfg.RevenueShare / 100)
	partnerMonthly := partnerDaily * 30
	partnerAnnual := totalAnnualGross * (cfg.RevenueShare / 100)
	partnerContract := partnerAnnual * float64(cfg.ContractTerm)

	// Floor the denominator so an all-zero configuration yields ~0 mix
	// percentages instead of NaN.
	totalGross := math.Max(totalDailyGross, 0.01)

	return models.FinancialSummary{
		DailyLockerGross:   dailyLockerGross,
		DailyScooterGross:  dailyScooterGross,
		DailyTransferGross: dailyTransferGross,
		DailyDeliveryGross: dailyDeliveryGross,
		TotalDailyGross:    totalDailyGross,
		TotalAnnualGross:   totalAnnualGross,
		PartnerDaily:       partnerDaily,
		PartnerMonthly:     partnerMonthly,
		PartnerAnnual:      partnerAnnual,
		PartnerContract:    partnerContract,
		Mix: models.RevenueMix{
			Lockers:   dailyLockerGross / totalGross * 100,
			Scooters:  dailyScooterGross / totalGross * 100,
			Transfers: dailyTransferGross / totalGross * 100,
			Delivery:  dailyDeliveryGross / totalGross * 100,
		},
	}
}

// CalculateHandler godoc
// @Summary      Calculate financial projection
// @Description  Runs the revenue projection for the submitted configuration. Missing fields are filled from defaults.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      models.Configuration  true  "Configuration (partial allowed)"
// @Success      200   {object}  models.CalculationResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/calculate [post]
func CalculateHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body: " + err.Error()})
		return
	}
	// Merge tolerance is for persisted state; a malformed request is an error.
	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}

	cfg, _ := models.MergeWithDefaults(body)
	financials := CalculateFinancials(cfg)
	space := CalculateSpaceUtilization(cfg.LockerM.Qty, cfg.LockerL.Qty, cfg.LockerXL.Qty)

	c.JSON(http.StatusOK, gin.H{
		"financials":   financials,
		"space":        space,
		"overCapacity": space.WidthNeeded > cfg.AvailableWallSpace,
	})
}
