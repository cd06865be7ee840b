package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"citylockers/models"

	"github.com/gin-gonic/gin"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestSeasonalityFactor(t *testing.T) {
	expected := (5*1.15 + 1*0.85 + 6*1.0) / 12
	if !approxEqual(SeasonalityFactor, expected, tolerance) {
		t.Errorf("expected seasonality %f, got %f", expected, SeasonalityFactor)
	}
	if SeasonalityFactor < 1.0 || SeasonalityFactor > 1.1 {
		t.Errorf("seasonality factor out of plausible range: %f", SeasonalityFactor)
	}
}

func TestLockerRevenue(t *testing.T) {
	// 3 lockers at 20/day, 60% occupancy, factor 1.2
	got := CalculateLockerRevenue(3, 20, 60, 1.2)
	expected := 20.0 * 3 * 0.6 * 1.2 * SeasonalityFactor
	if !approxEqual(got, expected, tolerance) {
		t.Errorf("expected %f, got %f", expected, got)
	}
}

func TestLockerRevenueZeroQty(t *testing.T) {
	if got := CalculateLockerRevenue(0, 20, 60, 1.2); got != 0 {
		t.Errorf("expected 0 for zero quantity, got %f", got)
	}
}

func TestScooterRevenue(t *testing.T) {
	got := CalculateScooterRevenue(5, 15, 4, 1.2)
	expected := 5.0 * 15 * 4 * 1.2 * SeasonalityFactor
	if !approxEqual(got, expected, tolerance) {
		t.Errorf("expected %f, got %f", expected, got)
	}
}

func TestTransferRevenueDaily(t *testing.T) {
	got := CalculateTransferRevenue(10, 365, 50)
	expected := 10.0 * 50 * SeasonalityFactor
	if !approxEqual(got, expected, tolerance) {
		t.Errorf("expected %f, got %f", expected, got)
	}
}

func TestTransferRevenueWeekly(t *testing.T) {
	// 10 transfers per week normalize to 10*(52/365) per day
	got := CalculateTransferRevenue(10, 52, 50)
	expected := 10.0 * (52.0 / 365.0) * 50 * SeasonalityFactor
	if !approxEqual(got, expected, tolerance) {
		t.Errorf("expected %f, got %f", expected, got)
	}
}

func TestTransferRevenueIgnoresLocation(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.TransfersEnabled = true
	cfg.LockerM = models.LockerLine{}
	cfg.LockerL = models.LockerLine{}
	cfg.LockerXL = models.LockerLine{}

	cfg.LocationFactor = 1.0
	base := CalculateFinancials(cfg).DailyTransferGross
	cfg.LocationFactor = 1.5
	scaled := CalculateFinancials(cfg).DailyTransferGross

	if !approxEqual(base, scaled, tolerance) {
		t.Errorf("transfer gross must not depend on location factor: %f vs %f", base, scaled)
	}
}

func TestResolveDeliveryPrice(t *testing.T) {
	d := models.DeliveryConfig{SelectedAirport: "DXB"}
	if got := ResolveDeliveryPrice(d); !approxEqual(got, 149, tolerance) {
		t.Errorf("expected DXB reference price 149, got %f", got)
	}

	custom := 99.0
	d.CustomPrice = &custom
	if got := ResolveDeliveryPrice(d); !approxEqual(got, 99, tolerance) {
		t.Errorf("custom price must override airport price, got %f", got)
	}

	d = models.DeliveryConfig{SelectedAirport: "XXX"}
	if got := ResolveDeliveryPrice(d); got != 0 {
		t.Errorf("unknown airport without custom price should yield 0, got %f", got)
	}
}

func TestSpaceUtilization(t *testing.T) {
	cases := []struct {
		m, l, xl  int
		units     int
		width     float64
		totalQty  int
	}{
		{0, 0, 0, 0, 0, 0},
		{3, 5, 6, 1, 14.0 / 14 * 2.2, 14},
		{5, 5, 5, 2, 15.0 / 14 * 2.2, 15},
		{14, 14, 0, 2, 28.0 / 14 * 2.2, 28},
	}
	for _, tc := range cases {
		got := CalculateSpaceUtilization(tc.m, tc.l, tc.xl)
		if got.TotalLockers != tc.totalQty {
			t.Errorf("(%d,%d,%d): expected %d lockers, got %d", tc.m, tc.l, tc.xl, tc.totalQty, got.TotalLockers)
		}
		if got.UnitsNeeded != tc.units {
			t.Errorf("(%d,%d,%d): expected %d units, got %d", tc.m, tc.l, tc.xl, tc.units, got.UnitsNeeded)
		}
		if !approxEqual(got.WidthNeeded, tc.width, tolerance) {
			t.Errorf("(%d,%d,%d): expected width %f, got %f", tc.m, tc.l, tc.xl, tc.width, got.WidthNeeded)
		}
	}
}

func TestFinancialsDefaultConfiguration(t *testing.T) {
	cfg := models.DefaultConfiguration()
	got := CalculateFinancials(cfg)

	lockers := CalculateLockerRevenue(3, 20, 60, 1.2) +
		CalculateLockerRevenue(5, 30, 55, 1.2) +
		CalculateLockerRevenue(6, 40, 50, 1.2)

	if !approxEqual(got.DailyLockerGross, lockers, 1e-6) {
		t.Errorf("expected locker gross %f, got %f", lockers, got.DailyLockerGross)
	}
	// Optional services are off by default.
	if got.DailyScooterGross != 0 || got.DailyTransferGross != 0 || got.DailyDeliveryGross != 0 {
		t.Errorf("disabled services must contribute 0, got %+v", got)
	}
	if !approxEqual(got.TotalDailyGross, lockers, 1e-6) {
		t.Errorf("expected total daily %f, got %f", lockers, got.TotalDailyGross)
	}
	if !approxEqual(got.TotalAnnualGross, lockers*365, 1e-3) {
		t.Errorf("expected annual %f, got %f", lockers*365, got.TotalAnnualGross)
	}
	if !approxEqual(got.PartnerDaily, lockers*0.2, 1e-6) {
		t.Errorf("expected partner daily %f, got %f", lockers*0.2, got.PartnerDaily)
	}
	if !approxEqual(got.PartnerMonthly, got.PartnerDaily*30, 1e-6) {
		t.Errorf("partner monthly should be 30x partner daily")
	}
	if !approxEqual(got.PartnerAnnual, got.TotalAnnualGross*0.2, 1e-3) {
		t.Errorf("expected partner annual %f, got %f", got.TotalAnnualGross*0.2, got.PartnerAnnual)
	}
	if !approxEqual(got.PartnerContract, got.PartnerAnnual*5, 1e-3) {
		t.Errorf("expected 5-year contract value %f, got %f", got.PartnerAnnual*5, got.PartnerContract)
	}
	if !approxEqual(got.Mix.Lockers, 100, 1e-6) {
		t.Errorf("lockers should be 100%% of mix, got %f", got.Mix.Lockers)
	}
}

func TestFinancialsDeterministic(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.ScootersEnabled = true
	cfg.TransfersEnabled = true
	cfg.DeliveryEnabled = true

	first := CalculateFinancials(cfg)
	second := CalculateFinancials(cfg)
	if first != second {
		t.Errorf("same input must yield identical output:\n%+v\n%+v", first, second)
	}
}

func TestFinancialsZeroConfiguration(t *testing.T) {
	got := CalculateFinancials(models.Configuration{})
	if got.TotalDailyGross != 0 {
		t.Errorf("expected zero gross, got %f", got.TotalDailyGross)
	}
	mix := []float64{got.Mix.Lockers, got.Mix.Scooters, got.Mix.Transfers, got.Mix.Delivery}
	for i, v := range mix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("mix[%d] must be finite for all-zero input, got %f", i, v)
		}
		if v != 0 {
			t.Errorf("mix[%d] should be 0, got %f", i, v)
		}
	}
}

func TestFinancialsMultiProperty(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.ScootersEnabled = true
	single := CalculateFinancials(cfg)

	cfg.NumberOfProperties = 3
	multi := CalculateFinancials(cfg)

	if !approxEqual(multi.DailyLockerGross, single.DailyLockerGross*3, 1e-6) {
		t.Errorf("locker gross should scale with property count")
	}
	if !approxEqual(multi.DailyScooterGross, single.DailyScooterGross*3, 1e-6) {
		t.Errorf("scooter gross should scale with property count")
	}
}

func TestFinancialsPortfolioTransfersNotScaled(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.TransfersEnabled = true
	cfg.NumberOfProperties = 4

	cfg.Transfers.IsPortfolio = false
	perProperty := CalculateFinancials(cfg).DailyTransferGross

	cfg.Transfers.IsPortfolio = true
	portfolio := CalculateFinancials(cfg).DailyTransferGross

	if !approxEqual(perProperty, portfolio*4, 1e-6) {
		t.Errorf("portfolio volume must not be multiplied by property count: per-property %f, portfolio %f", perProperty, portfolio)
	}
}

func TestFinancialsDeliveryTotalScopeNotScaled(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.DeliveryEnabled = true
	cfg.NumberOfProperties = 4

	cfg.Delivery.Scope = models.DeliveryScopePerProperty
	perProperty := CalculateFinancials(cfg).DailyDeliveryGross

	cfg.Delivery.Scope = models.DeliveryScopeTotal
	total := CalculateFinancials(cfg).DailyDeliveryGross

	if !approxEqual(perProperty, total*4, 1e-6) {
		t.Errorf("total-scope delivery volume must not be multiplied by property count: %f vs %f", perProperty, total)
	}
}

func TestFinancialsPropertyCountFloor(t *testing.T) {
	cfg := models.DefaultConfiguration()
	base := CalculateFinancials(cfg)

	cfg.NumberOfProperties = 0
	zero := CalculateFinancials(cfg)
	cfg.NumberOfProperties = -2
	negative := CalculateFinancials(cfg)

	if !approxEqual(base.TotalDailyGross, zero.TotalDailyGross, tolerance) ||
		!approxEqual(base.TotalDailyGross, negative.TotalDailyGross, tolerance) {
		t.Errorf("property count below 1 must behave as 1")
	}
}

func TestCalculateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/calculate", CalculateHandler)

	// Partial body: everything else comes from defaults.
	body := `{"lockerM":{"qty":28},"availableWallSpace":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Financials   models.FinancialSummary `json:"financials"`
		Space        models.SpaceMetrics     `json:"space"`
		OverCapacity bool                    `json:"overCapacity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	// 28 M + 5 L + 6 XL defaults = 39 lockers, 3 rack units, 6.13 m > 3 m.
	if resp.Space.TotalLockers != 39 {
		t.Errorf("expected 39 lockers, got %d", resp.Space.TotalLockers)
	}
	if resp.Space.UnitsNeeded != 3 {
		t.Errorf("expected 3 rack units, got %d", resp.Space.UnitsNeeded)
	}
	if !resp.OverCapacity {
		t.Errorf("39 lockers in 3 m of wall should be over capacity")
	}
	if resp.Financials.TotalDailyGross <= 0 {
		t.Errorf("expected positive gross, got %f", resp.Financials.TotalDailyGross)
	}
}

func TestCalculateHandlerRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/calculate", CalculateHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body should be rejected, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCalculateHandlerEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/calculate", CalculateHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty body should fall back to defaults, got %d", w.Code)
	}

	var resp struct {
		Financials models.FinancialSummary `json:"financials"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	expected := CalculateFinancials(models.DefaultConfiguration())
	if !approxEqual(resp.Financials.TotalDailyGross, expected.TotalDailyGross, 1e-6) {
		t.Errorf("expected default gross %f, got %f", expected.TotalDailyGross, resp.Financials.TotalDailyGross)
	}
}
