package service

import (
	"testing"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

func higherBetterConfig(t *testing.T, green, yellow float64) *entity.MetricConfig {
	t.Helper()
	cfg, err := entity.NewMetricConfig("team-1", "cpp_percentage", green, yellow, 0, true)
	if err != nil {
		t.Fatalf("NewMetricConfig() error = %v", err)
	}
	return cfg
}

func lowerBetterConfig(t *testing.T, green, yellow float64) *entity.MetricConfig {
	t.Helper()
	cfg, err := entity.NewMetricConfig("team-1", "critical_bugs", green, yellow, 0, false)
	if err != nil {
		t.Fatalf("NewMetricConfig() error = %v", err)
	}
	return cfg
}

func TestClassifyValue_HigherBetter(t *testing.T) {
	classifier := NewThresholdClassifier()
	cfg := higherBetterConfig(t, 50, 35)

	tests := []struct {
		name  string
		value float64
		want  valueobject.Color
	}{
		{"above green", 80, valueobject.Green},
		{"equal green is inclusive", 50, valueobject.Green},
		{"between yellow and green", 40, valueobject.Yellow},
		{"equal yellow is inclusive", 35, valueobject.Yellow},
		{"below yellow", 34.9, valueobject.Red},
		{"negative value", -5, valueobject.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.ClassifyValue(tt.value, cfg)
			if got.Color() != tt.want {
				t.Errorf("ClassifyValue(%v) = %s, want %s", tt.value, got.Color(), tt.want)
			}
		})
	}
}

func TestClassifyValue_LowerBetter(t *testing.T) {
	classifier := NewThresholdClassifier()
	cfg := lowerBetterConfig(t, 2, 5)

	tests := []struct {
		name  string
		value float64
		want  valueobject.Color
	}{
		{"below green", 0, valueobject.Green},
		{"equal green is inclusive", 2, valueobject.Green},
		{"between green and yellow", 3, valueobject.Yellow},
		{"equal yellow is inclusive", 5, valueobject.Yellow},
		{"above yellow", 5.1, valueobject.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.ClassifyValue(tt.value, cfg)
			if got.Color() != tt.want {
				t.Errorf("ClassifyValue(%v) = %s, want %s", tt.value, got.Color(), tt.want)
			}
		})
	}
}

func TestClassify_Monotonic_HigherBetter(t *testing.T) {
	classifier := NewThresholdClassifier()
	cfg := higherBetterConfig(t, 50, 35)

	previousRank := 3
	for value := -10.0; value <= 110; value += 0.5 {
		rank := classifier.ClassifyValue(value, cfg).Color().Rank()
		if rank > previousRank {
			t.Fatalf("classification degraded from rank %d to %d at value %v", previousRank, rank, value)
		}
		previousRank = rank
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	classifier := NewThresholdClassifier()
	cfg := higherBetterConfig(t, 50, 35)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"text", "not a number"},
		{"nan", "NaN"},
		{"infinity", "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := classifier.Classify(valueobject.ParseMetricReading(tt.raw), cfg)
			if !verdict.IsNeutral() {
				t.Errorf("Classify(%q) = %s, want neutral", tt.raw, verdict.Color())
			}
			if verdict.IsUnconfigured() {
				t.Errorf("Classify(%q) should not report unconfigured", tt.raw)
			}
			if verdict.Color() == valueobject.Red {
				t.Errorf("invalid input must never classify red")
			}
		})
	}
}

func TestClassify_MissingConfig(t *testing.T) {
	classifier := NewThresholdClassifier()

	verdict := classifier.Classify(valueobject.ParseMetricReading("42"), nil)
	if !verdict.IsNeutral() {
		t.Errorf("missing config: got %s, want neutral", verdict.Color())
	}
	if !verdict.IsUnconfigured() {
		t.Errorf("missing config must be distinguishable from unparseable input")
	}
}

func TestEffectiveColor_ApprovalOverride(t *testing.T) {
	classifier := NewThresholdClassifier()
	cfg := higherBetterConfig(t, 50, 35)

	metric, err := entity.NewHealthMetric("team-1", "cpp_percentage", "S03", valueobject.ParseMetricReading("10"))
	if err != nil {
		t.Fatalf("NewHealthMetric() error = %v", err)
	}

	actual, effective := classifier.EffectiveColor(metric, cfg)
	if actual.Color() != valueobject.Red {
		t.Fatalf("computed color = %s, want red", actual.Color())
	}
	if effective != valueobject.Red {
		t.Fatalf("effective color before approval = %s, want red", effective)
	}

	if err := metric.Approve("po@example.com", "accepted for this sprint"); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	actual, effective = classifier.EffectiveColor(metric, cfg)
	if effective != valueobject.Green {
		t.Errorf("effective color after approval = %s, want green", effective)
	}
	if actual.Color() != valueobject.Red {
		t.Errorf("computed color must stay retrievable for audit, got %s", actual.Color())
	}

	if err := metric.Approve("someone-else", ""); err != entity.ErrAlreadyApproved {
		t.Errorf("second Approve() error = %v, want ErrAlreadyApproved", err)
	}
}
