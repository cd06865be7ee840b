package models

import "testing"

func TestAirportByCode(t *testing.T) {
	a, ok := AirportByCode("DXB")
	if !ok {
		t.Fatalf("DXB must exist")
	}
	if a.Price != 149 {
		t.Errorf("expected DXB price 149, got %f", a.Price)
	}

	if _, ok := AirportByCode("LHR"); ok {
		t.Errorf("unknown airport code should not resolve")
	}
}

func TestLockerSpecsMatchCatalog(t *testing.T) {
	want := map[string][3]int{
		"M":  {48, 28, 58},
		"L":  {48, 33, 85},
		"XL": {48, 55, 85},
	}
	if len(LockerSpecs) != len(want) {
		t.Fatalf("expected %d locker sizes, got %d", len(want), len(LockerSpecs))
	}
	for _, spec := range LockerSpecs {
		dims, ok := want[spec.Size]
		if !ok {
			t.Errorf("unexpected locker size %q", spec.Size)
			continue
		}
		if spec.Width != dims[0] || spec.Depth != dims[1] || spec.Height != dims[2] {
			t.Errorf("size %s: got %dx%dx%d, want %dx%dx%d",
				spec.Size, spec.Width, spec.Depth, spec.Height, dims[0], dims[1], dims[2])
		}
		if spec.Fits == "" {
			t.Errorf("size %s has no fits description", spec.Size)
		}
	}
}

func TestPricingReferenceTiers(t *testing.T) {
	for _, size := range []string{"lockerM", "lockerL", "lockerXL"} {
		if got := len(PricingReference[size]); got != 5 {
			t.Errorf("%s: expected 5 duration tiers, got %d", size, got)
		}
	}

	checks := []struct {
		service string
		label   string
		price   float64
	}{
		{"lockerM", "3 hours", 9},
		{"lockerM", "7 days", 128},
		{"lockerL", "24 hours", 38},
		{"lockerXL", "12 hours", 31},
		{"lockerXL", "7 days", 176},
		{"scooters", "Hourly", 1.13},
		{"transfers", "Starting from", 149},
	}
	for _, check := range checks {
		found := false
		for _, tier := range PricingReference[check.service] {
			if tier.Label == check.label {
				found = true
				if tier.Price != check.price {
					t.Errorf("%s %s: got %.2f, want %.2f", check.service, check.label, tier.Price, check.price)
				}
			}
		}
		if !found {
			t.Errorf("%s has no %q tier", check.service, check.label)
		}
	}
}

func TestLocationFactorsCoverDefaults(t *testing.T) {
	found := false
	for _, loc := range Locations {
		if loc.Factor == DefaultConfiguration().LocationFactor {
			found = true
		}
	}
	if !found {
		t.Errorf("default location factor must correspond to a listed location")
	}
}
