package entities

import (
	"math"
	"testing"
)

// TestReadingValid checks the plausibility filter per sensor type
func TestReadingValid(t *testing.T) {
	tests := []struct {
		name    string
		reading SensorReading
		valid   bool
	}{
		{"normal rain", SensorReading{Type: SensorRain, Value: 12.5}, true},
		{"zero rain", SensorReading{Type: SensorRain, Value: 0}, true},
		{"negative rain", SensorReading{Type: SensorRain, Value: -1}, false},
		{"absurd rain", SensorReading{Type: SensorRain, Value: 5000}, false},
		{"NaN value", SensorReading{Type: SensorTemp, Value: math.NaN()}, false},
		{"positive infinity", SensorReading{Type: SensorRiver, Value: math.Inf(1)}, false},
		{"negative infinity", SensorReading{Type: SensorRiver, Value: math.Inf(-1)}, false},
		{"soil fraction", SensorReading{Type: SensorSoil, Value: 0.85}, true},
		{"soil above one", SensorReading{Type: SensorSoil, Value: 1.2}, false},
		{"cold but plausible temp", SensorReading{Type: SensorTemp, Value: -20}, true},
		{"impossible temp", SensorReading{Type: SensorTemp, Value: 90}, false},
		{"pressure in range", SensorReading{Type: SensorPressure, Value: 1013}, true},
		{"pressure out of range", SensorReading{Type: SensorPressure, Value: 400}, false},
		{"unknown type passes", SensorReading{Type: "LUNAR_PHASE", Value: 1e9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reading.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, expected %v for %+v", got, tt.valid, tt.reading)
			}
		})
	}
}

// TestNeutralConditions verifies the documented fallback values
func TestNeutralConditions(t *testing.T) {
	c := NeutralConditions()

	if c.Rainfall24h != 0 || c.Rainfall7d != 0 {
		t.Errorf("Expected zero rainfall defaults, got %v / %v", c.Rainfall24h, c.Rainfall7d)
	}
	if c.RiverLevel != 2.0 {
		t.Errorf("Expected default river level 2.0, got %v", c.RiverLevel)
	}
	if c.SoilMoisture != 0.5 {
		t.Errorf("Expected default soil moisture 0.5, got %v", c.SoilMoisture)
	}
	if c.Temperature != 25 {
		t.Errorf("Expected default temperature 25, got %v", c.Temperature)
	}
	if c.Pressure != 1013 {
		t.Errorf("Expected default pressure 1013, got %v", c.Pressure)
	}
}

// TestDefaultRegions sanity-checks the built-in region catalogue
func TestDefaultRegions(t *testing.T) {
	regions := DefaultRegions()

	// 36 states plus the FCT.
	if len(regions) != 37 {
		t.Fatalf("Expected 37 regions, got %d", len(regions))
	}

	codes := map[string]Region{}
	for _, region := range regions {
		if _, dup := codes[region.Code]; dup {
			t.Errorf("Duplicate region code %s", region.Code)
		}
		codes[region.Code] = region

		if region.Name == "" {
			t.Errorf("Region %s has no name", region.Code)
		}
		if region.Lat == 0 || region.Lon == 0 {
			t.Errorf("Region %s has missing coordinates", region.Code)
		}
		switch region.RiskLabel {
		case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		default:
			t.Errorf("Region %s has invalid risk label %q", region.Code, region.RiskLabel)
		}
	}

	// Spot-check the riverine states against their known classification.
	if codes["LA"].RiskLabel != RiskCritical {
		t.Errorf("Expected Lagos to be critical, got %s", codes["LA"].RiskLabel)
	}
	if codes["BY"].RiskLabel != RiskCritical {
		t.Errorf("Expected Bayelsa to be critical, got %s", codes["BY"].RiskLabel)
	}
	if codes["KT"].RiskLabel != RiskLow {
		t.Errorf("Expected Katsina to be low, got %s", codes["KT"].RiskLabel)
	}
}
