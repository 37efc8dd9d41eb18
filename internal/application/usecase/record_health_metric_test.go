package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

func setupRecordUseCase(t *testing.T) (*RecordHealthMetricUseCase, *memTeamRepo, *memMetricRepo, *memConfigRepo, *fakeNotifier, *entity.Team) {
	t.Helper()

	teams := newMemTeamRepo()
	metrics := &memMetricRepo{}
	configs := &memConfigRepo{}
	notifier := &fakeNotifier{}

	team, err := entity.NewTeam("Phoenix", 5, 2)
	if err != nil {
		t.Fatalf("NewTeam() error = %v", err)
	}
	if err := teams.Save(context.Background(), team); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	uc := NewRecordHealthMetricUseCase(
		metrics, configs, teams,
		service.NewThresholdClassifier(),
		nil, nil, notifier,
		logger.New("error"),
	)

	return uc, teams, metrics, configs, notifier, team
}

func TestRecordHealthMetricUseCase_CreatesAndClassifies(t *testing.T) {
	uc, _, metrics, configs, notifier, team := setupRecordUseCase(t)

	config, err := entity.NewMetricConfig(team.ID(), "velocity_sp", 40, 30, 20, true)
	if err != nil {
		t.Fatalf("NewMetricConfig() error = %v", err)
	}
	if err := configs.Save(context.Background(), config); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cap := valueobject.CapabilityFor(valueobject.ScrumMaster)
	res, err := uc.Execute(context.Background(), cap, team.ID(), "velocity_sp", "S01", "35")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.EffectiveColor != "yellow" {
		t.Errorf("EffectiveColor = %s, want yellow", res.EffectiveColor)
	}
	if res.Value != "35" {
		t.Errorf("Value = %s, want 35", res.Value)
	}
	if len(metrics.metrics) != 1 {
		t.Fatalf("expected 1 stored metric, got %d", len(metrics.metrics))
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(notifier.calls))
	}
	if notifier.calls[0].teamID != team.ID() {
		t.Errorf("broadcast team = %s, want %s", notifier.calls[0].teamID, team.ID())
	}
}

func TestRecordHealthMetricUseCase_UpsertsBySprintKey(t *testing.T) {
	uc, _, metrics, _, _, team := setupRecordUseCase(t)

	cap := valueobject.CapabilityFor(valueobject.Admin)
	if _, err := uc.Execute(context.Background(), cap, team.ID(), "old_bugs", "S02", "4"); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	res, err := uc.Execute(context.Background(), cap, team.ID(), "old_bugs", "S02", "7")
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}

	if len(metrics.metrics) != 1 {
		t.Fatalf("expected upsert to keep 1 record, got %d", len(metrics.metrics))
	}
	if res.Value != "7" {
		t.Errorf("Value = %s, want 7", res.Value)
	}
}

func TestRecordHealthMetricUseCase_TextValueGetsNeutralVerdict(t *testing.T) {
	uc, _, _, configs, _, team := setupRecordUseCase(t)

	config, _ := entity.NewMetricConfig(team.ID(), "ram", 95, 85, 70, true)
	if err := configs.Save(context.Background(), config); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cap := valueobject.CapabilityFor(valueobject.ScrumMaster)
	res, err := uc.Execute(context.Background(), cap, team.ID(), "ram", "S01", "n/a")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.ActualColor != "none" {
		t.Errorf("ActualColor = %s, want none", res.ActualColor)
	}
	if res.Unconfigured {
		t.Errorf("Unconfigured = true for configured metric")
	}
	if res.Value != "n/a" {
		t.Errorf("Value = %s, want n/a", res.Value)
	}
}

func TestRecordHealthMetricUseCase_UnconfiguredMetricIsDistinguishable(t *testing.T) {
	uc, _, _, _, _, team := setupRecordUseCase(t)

	cap := valueobject.CapabilityFor(valueobject.ScrumMaster)
	res, err := uc.Execute(context.Background(), cap, team.ID(), "brand_new_metric", "S01", "42")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !res.Unconfigured {
		t.Errorf("expected unconfigured flag for metric without thresholds")
	}
	if res.ActualColor != "none" {
		t.Errorf("ActualColor = %s, want none", res.ActualColor)
	}
}

func TestRecordHealthMetricUseCase_ForbiddenWithoutDataEntry(t *testing.T) {
	uc, _, _, _, _, team := setupRecordUseCase(t)

	cap := valueobject.CapabilityFor(valueobject.ProductOwner)
	_, err := uc.Execute(context.Background(), cap, team.ID(), "velocity_sp", "S01", "35")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecordHealthMetricUseCase_UnknownTeam(t *testing.T) {
	uc, _, _, _, _, _ := setupRecordUseCase(t)

	cap := valueobject.CapabilityFor(valueobject.Admin)
	if _, err := uc.Execute(context.Background(), cap, "missing", "velocity_sp", "S01", "35"); err == nil {
		t.Fatalf("expected error for unknown team")
	}
}
