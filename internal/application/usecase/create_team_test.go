package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

func TestCreateTeamUseCase_SeedsCatalogueConfigs(t *testing.T) {
	teams := newMemTeamRepo()
	configs := &memConfigRepo{}
	uc := NewCreateTeamUseCase(teams, configs, logger.New("error"))

	cap := valueobject.CapabilityFor(valueobject.Admin)
	res, err := uc.Execute(context.Background(), cap, "Phoenix", 7, 2)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.Name != "Phoenix" || res.Size != 7 {
		t.Errorf("unexpected team DTO: %+v", res)
	}

	catalogue := entity.MetricCatalogue()
	seeded, err := configs.FindByTeam(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("FindByTeam() error = %v", err)
	}
	if len(seeded) != len(catalogue) {
		t.Fatalf("expected %d seeded configs, got %d", len(catalogue), len(seeded))
	}

	byName := make(map[string]bool)
	for _, c := range seeded {
		byName[c.MetricName()] = c.IsHigherBetter()
	}
	if higher, ok := byName["velocity_sp"]; !ok || !higher {
		t.Errorf("velocity_sp should be seeded as higher-better")
	}
	if higher, ok := byName["critical_bugs"]; !ok || higher {
		t.Errorf("critical_bugs should be seeded as lower-better")
	}
}

func TestCreateTeamUseCase_Forbidden(t *testing.T) {
	uc := NewCreateTeamUseCase(newMemTeamRepo(), &memConfigRepo{}, logger.New("error"))

	cap := valueobject.CapabilityFor(valueobject.ScrumMaster)
	_, err := uc.Execute(context.Background(), cap, "Phoenix", 7, 2)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateTeamUseCase_InvalidInput(t *testing.T) {
	uc := NewCreateTeamUseCase(newMemTeamRepo(), &memConfigRepo{}, logger.New("error"))

	cap := valueobject.CapabilityFor(valueobject.Admin)
	if _, err := uc.Execute(context.Background(), cap, "  ", 7, 2); err == nil {
		t.Errorf("expected error for blank name")
	}
	if _, err := uc.Execute(context.Background(), cap, "Phoenix", 0, 2); err == nil {
		t.Errorf("expected error for zero size")
	}
}
