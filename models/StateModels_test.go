package models

import (
	"encoding/json"
	"testing"
)

func TestMergeWithDefaultsEmpty(t *testing.T) {
	cfg, _ := MergeWithDefaults(nil)
	if cfg != mustDefault() {
		t.Errorf("empty blob should yield defaults, got %+v", cfg)
	}
}

func TestMergeWithDefaultsCorrupt(t *testing.T) {
	cfg, _ := MergeWithDefaults([]byte(`{not json`))
	if cfg != mustDefault() {
		t.Errorf("unparseable blob should yield defaults, got %+v", cfg)
	}
}

func TestMergeWithDefaultsTypeMismatch(t *testing.T) {
	cfg, _ := MergeWithDefaults([]byte(`{"lockerM":"not an object","clientName":"X"}`))
	if cfg != mustDefault() {
		t.Errorf("type-mismatched blob should yield full defaults, got %+v", cfg)
	}
}

func TestMergeWithDefaultsPartialNested(t *testing.T) {
	cfg, _ := MergeWithDefaults([]byte(`{"lockerM":{"qty":9},"clientName":"Marriott JBR"}`))
	if cfg.ClientName != "Marriott JBR" {
		t.Errorf("stored value should win, got %q", cfg.ClientName)
	}
	if cfg.LockerM.Qty != 9 {
		t.Errorf("stored nested value should win, got %d", cfg.LockerM.Qty)
	}
	// Siblings of the stored nested field come from defaults.
	if cfg.LockerM.Price != 20 || cfg.LockerM.Occupancy != 60 {
		t.Errorf("missing nested fields should fill from defaults, got %+v", cfg.LockerM)
	}
	if cfg.LockerL.Qty != 5 {
		t.Errorf("untouched nested objects should come from defaults, got %+v", cfg.LockerL)
	}
}

func TestMergeWithDefaultsFillsMissingService(t *testing.T) {
	// Old blob from before delivery existed.
	cfg, _ := MergeWithDefaults([]byte(`{"clientName":"Legacy","scootersEnabled":true}`))
	if cfg.Delivery.SelectedAirport != "DXB" || cfg.Delivery.Volume != 10 {
		t.Errorf("missing delivery section should fill from defaults, got %+v", cfg.Delivery)
	}
	if !cfg.ScootersEnabled {
		t.Errorf("stored values should survive the merge")
	}
}

func TestMergeWithDefaultsPreservesUnknownFields(t *testing.T) {
	_, raw := MergeWithDefaults([]byte(`{"clientName":"X","futureFeature":{"on":true}}`))
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("merged blob must be valid JSON: %v", err)
	}
	if _, ok := m["futureFeature"]; !ok {
		t.Errorf("unknown stored fields must be preserved in the merged blob")
	}
}

func TestEncodeStatePreservesUnknownFields(t *testing.T) {
	prev := []byte(`{"clientName":"Old","futureFeature":42}`)
	cfg := DefaultConfiguration()
	cfg.ClientName = "New"

	raw := EncodeState(prev, cfg)
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("encoded state must be valid JSON: %v", err)
	}
	if m["clientName"] != "New" {
		t.Errorf("current configuration should win, got %v", m["clientName"])
	}
	if v, ok := m["futureFeature"]; !ok || v != 42.0 {
		t.Errorf("unknown fields from the previous blob must survive, got %v", v)
	}
}

func TestEncodeStateClearedNotesStayCleared(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Notes = "old confidential remark"
	stored := EncodeState(nil, cfg)

	if err := cfg.ApplyUpdate(UpdateCommand{Field: "notes", Value: json.RawMessage(`""`)}); err != nil {
		t.Fatalf("clearing notes failed: %v", err)
	}
	stored = EncodeState(stored, cfg)

	restored, _ := MergeWithDefaults(stored)
	if restored.Notes != "" {
		t.Errorf("cleared notes resurrected from previous blob: %q", restored.Notes)
	}
}

func TestMergeRoundTripIsStable(t *testing.T) {
	stored := []byte(`{"lockerXL":{"qty":12},"revenueShare":35,"extra":"kept"}`)
	cfg1, raw1 := MergeWithDefaults(stored)
	cfg2, raw2 := MergeWithDefaults(raw1)

	if cfg1 != cfg2 {
		t.Errorf("merging a merged blob must be a no-op:\n%+v\n%+v", cfg1, cfg2)
	}
	var m1, m2 map[string]interface{}
	_ = json.Unmarshal(raw1, &m1)
	_ = json.Unmarshal(raw2, &m2)
	if m1["extra"] != m2["extra"] {
		t.Errorf("unknown fields must survive repeated merges")
	}
}

func TestApplyUpdate(t *testing.T) {
	cfg := DefaultConfiguration()

	cases := []struct {
		field string
		value string
		check func() bool
	}{
		{"clientName", `"Atlantis"`, func() bool { return cfg.ClientName == "Atlantis" }},
		{"locationFactor", `1.5`, func() bool { return cfg.LocationFactor == 1.5 }},
		{"lockerM.qty", `7`, func() bool { return cfg.LockerM.Qty == 7 }},
		{"lockerXL.occupancy", `45`, func() bool { return cfg.LockerXL.Occupancy == 45 }},
		{"scootersEnabled", `true`, func() bool { return cfg.ScootersEnabled }},
		{"transfers.isPortfolio", `true`, func() bool { return cfg.Transfers.IsPortfolio }},
		{"delivery.selectedAirport", `"AUH"`, func() bool { return cfg.Delivery.SelectedAirport == "AUH" }},
		{"delivery.customPrice", `125.5`, func() bool {
			return cfg.Delivery.CustomPrice != nil && *cfg.Delivery.CustomPrice == 125.5
		}},
		{"delivery.customPrice", `null`, func() bool { return cfg.Delivery.CustomPrice == nil }},
		{"notes", `"<b>VIP</b> deal"`, func() bool { return cfg.Notes == "<b>VIP</b> deal" }},
	}
	for _, tc := range cases {
		err := cfg.ApplyUpdate(UpdateCommand{Field: tc.field, Value: json.RawMessage(tc.value)})
		if err != nil {
			t.Fatalf("update %s=%s failed: %v", tc.field, tc.value, err)
		}
		if !tc.check() {
			t.Errorf("update %s=%s did not take effect", tc.field, tc.value)
		}
	}
}

func TestApplyUpdateUnknownField(t *testing.T) {
	cfg := DefaultConfiguration()
	err := cfg.ApplyUpdate(UpdateCommand{Field: "lockerM.colour", Value: json.RawMessage(`"red"`)})
	if err == nil {
		t.Fatalf("unknown field must be rejected")
	}
	if cfg != DefaultConfiguration() {
		t.Errorf("rejected update must leave the configuration untouched")
	}
}

func TestApplyUpdateTypeMismatch(t *testing.T) {
	cfg := DefaultConfiguration()
	err := cfg.ApplyUpdate(UpdateCommand{Field: "lockerM.qty", Value: json.RawMessage(`"nine"`)})
	if err == nil {
		t.Fatalf("type-mismatched value must be rejected")
	}
	if cfg.LockerM.Qty != 3 {
		t.Errorf("rejected update must leave the field untouched, got %d", cfg.LockerM.Qty)
	}
}

func TestApplyUpdateMissingValue(t *testing.T) {
	cfg := DefaultConfiguration()
	if err := cfg.ApplyUpdate(UpdateCommand{Field: "clientName"}); err == nil {
		t.Fatalf("missing value must be rejected")
	}
}

func mustDefault() Configuration {
	return DefaultConfiguration()
}
