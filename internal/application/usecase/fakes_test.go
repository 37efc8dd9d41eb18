package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

var errNotFound = errors.New("not found")

type memTeamRepo struct {
	teams map[string]*entity.Team
	order []string
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{teams: make(map[string]*entity.Team)}
}

func (r *memTeamRepo) Save(_ context.Context, team *entity.Team) error {
	r.teams[team.ID()] = team
	r.order = append(r.order, team.ID())
	return nil
}

func (r *memTeamRepo) Update(_ context.Context, team *entity.Team) error {
	if _, ok := r.teams[team.ID()]; !ok {
		return errNotFound
	}
	r.teams[team.ID()] = team
	return nil
}

func (r *memTeamRepo) FindByID(_ context.Context, id string) (*entity.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, errNotFound
	}
	return team, nil
}

func (r *memTeamRepo) FindAll(_ context.Context) ([]*entity.Team, error) {
	out := make([]*entity.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.teams[id])
	}
	return out, nil
}

type memMetricRepo struct {
	metrics []*entity.HealthMetric
}

func (r *memMetricRepo) Save(_ context.Context, m *entity.HealthMetric) error {
	r.metrics = append(r.metrics, m)
	return nil
}

func (r *memMetricRepo) Update(_ context.Context, m *entity.HealthMetric) error {
	for i, existing := range r.metrics {
		if existing.ID() == m.ID() {
			r.metrics[i] = m
			return nil
		}
	}
	return errNotFound
}

func (r *memMetricRepo) FindByID(_ context.Context, id string) (*entity.HealthMetric, error) {
	for _, m := range r.metrics {
		if m.ID() == id {
			return m, nil
		}
	}
	return nil, errNotFound
}

func (r *memMetricRepo) FindByTeam(_ context.Context, teamID, sprintNumber string) ([]*entity.HealthMetric, error) {
	var out []*entity.HealthMetric
	for _, m := range r.metrics {
		if m.TeamID() != teamID {
			continue
		}
		if sprintNumber != "" && m.SprintNumber() != sprintNumber {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *memMetricRepo) FindByKey(_ context.Context, teamID, metricName, sprintNumber string) (*entity.HealthMetric, error) {
	for _, m := range r.metrics {
		if m.TeamID() == teamID && m.MetricName() == metricName && m.SprintNumber() == sprintNumber {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMetricRepo) FindAll(_ context.Context) ([]*entity.HealthMetric, error) {
	return append([]*entity.HealthMetric(nil), r.metrics...), nil
}

type memConfigRepo struct {
	configs []*entity.MetricConfig
}

func (r *memConfigRepo) Save(_ context.Context, c *entity.MetricConfig) error {
	r.configs = append(r.configs, c)
	return nil
}

func (r *memConfigRepo) Update(_ context.Context, c *entity.MetricConfig) error {
	for i, existing := range r.configs {
		if existing.ID() == c.ID() {
			r.configs[i] = c
			return nil
		}
	}
	return errNotFound
}

func (r *memConfigRepo) FindByID(_ context.Context, id string) (*entity.MetricConfig, error) {
	for _, c := range r.configs {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *memConfigRepo) FindByTeam(_ context.Context, teamID string) ([]*entity.MetricConfig, error) {
	var out []*entity.MetricConfig
	for _, c := range r.configs {
		if c.TeamID() == teamID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memConfigRepo) FindByTeamAndMetric(_ context.Context, teamID, metricName string) (*entity.MetricConfig, error) {
	for _, c := range r.configs {
		if c.TeamID() == teamID && c.MetricName() == metricName {
			return c, nil
		}
	}
	return nil, nil
}

type memCalcRepo struct {
	calcs []*entity.SprintCalculation
}

func (r *memCalcRepo) Save(_ context.Context, c *entity.SprintCalculation) error {
	r.calcs = append(r.calcs, c)
	return nil
}

func (r *memCalcRepo) FindByTeam(_ context.Context, teamID string, limit int) ([]*entity.SprintCalculation, error) {
	var out []*entity.SprintCalculation
	for _, c := range r.calcs {
		if c.TeamID() == teamID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memRetroRepo struct {
	boards []*entity.RetroBoard
	items  []*entity.RetroItem
}

func (r *memRetroRepo) SaveBoard(_ context.Context, b *entity.RetroBoard) error {
	r.boards = append(r.boards, b)
	return nil
}

func (r *memRetroRepo) FindBoardByID(_ context.Context, id string) (*entity.RetroBoard, error) {
	for _, b := range r.boards {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (r *memRetroRepo) FindBoardsByTeam(_ context.Context, teamID string) ([]*entity.RetroBoard, error) {
	var out []*entity.RetroBoard
	for _, b := range r.boards {
		if b.TeamID() == teamID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memRetroRepo) SaveItem(_ context.Context, item *entity.RetroItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *memRetroRepo) FindItemsByBoard(_ context.Context, boardID string) ([]*entity.RetroItem, error) {
	var out []*entity.RetroItem
	for _, item := range r.items {
		if item.BoardID() == boardID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memRetroRepo) DeleteItem(_ context.Context, itemID string) error {
	for i, item := range r.items {
		if item.ID() == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

type broadcastCall struct {
	teamID       string
	sprintNumber string
}

type fakeNotifier struct {
	calls []broadcastCall
}

func (n *fakeNotifier) BroadcastTeamHealthUpdate(teamID, sprintNumber string) {
	n.calls = append(n.calls, broadcastCall{teamID: teamID, sprintNumber: sprintNumber})
}
