package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	applicationPort "github.com/dreschagin/scrum-health-dashboard/internal/application/port"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/export"
	wsInfra "github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/notification/websocket"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/handler"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/config"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

const testToken = "test-token"

var errStoreNotFound = errors.New("not found")

type memoryTeamRepo struct {
	mu    sync.RWMutex
	teams map[string]*entity.Team
	order []string
}

func newMemoryTeamRepo() *memoryTeamRepo {
	return &memoryTeamRepo{teams: make(map[string]*entity.Team)}
}

func (r *memoryTeamRepo) Save(_ context.Context, team *entity.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID()] = team
	r.order = append(r.order, team.ID())
	return nil
}

func (r *memoryTeamRepo) Update(_ context.Context, team *entity.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID()]; !ok {
		return errStoreNotFound
	}
	r.teams[team.ID()] = team
	return nil
}

func (r *memoryTeamRepo) FindByID(_ context.Context, id string) (*entity.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, errStoreNotFound
	}
	return team, nil
}

func (r *memoryTeamRepo) FindAll(_ context.Context) ([]*entity.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.teams[id])
	}
	return out, nil
}

type memoryMetricRepo struct {
	mu      sync.RWMutex
	metrics []*entity.HealthMetric
}

func (r *memoryMetricRepo) Save(_ context.Context, m *entity.HealthMetric) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = append(r.metrics, m)
	return nil
}

func (r *memoryMetricRepo) Update(_ context.Context, m *entity.HealthMetric) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.metrics {
		if existing.ID() == m.ID() {
			r.metrics[i] = m
			return nil
		}
	}
	return errStoreNotFound
}

func (r *memoryMetricRepo) FindByID(_ context.Context, id string) (*entity.HealthMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.metrics {
		if m.ID() == id {
			return m, nil
		}
	}
	return nil, errStoreNotFound
}

func (r *memoryMetricRepo) FindByTeam(_ context.Context, teamID, sprintNumber string) ([]*entity.HealthMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
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

func (r *memoryMetricRepo) FindByKey(_ context.Context, teamID, metricName, sprintNumber string) (*entity.HealthMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.metrics {
		if m.TeamID() == teamID && m.MetricName() == metricName && m.SprintNumber() == sprintNumber {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memoryMetricRepo) FindAll(_ context.Context) ([]*entity.HealthMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*entity.HealthMetric(nil), r.metrics...), nil
}

type memoryConfigRepo struct {
	mu      sync.RWMutex
	configs []*entity.MetricConfig
}

func (r *memoryConfigRepo) Save(_ context.Context, c *entity.MetricConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, c)
	return nil
}

func (r *memoryConfigRepo) Update(_ context.Context, c *entity.MetricConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.configs {
		if existing.ID() == c.ID() {
			r.configs[i] = c
			return nil
		}
	}
	return errStoreNotFound
}

func (r *memoryConfigRepo) FindByID(_ context.Context, id string) (*entity.MetricConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.configs {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errStoreNotFound
}

func (r *memoryConfigRepo) FindByTeam(_ context.Context, teamID string) ([]*entity.MetricConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.MetricConfig
	for _, c := range r.configs {
		if c.TeamID() == teamID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryConfigRepo) FindByTeamAndMetric(_ context.Context, teamID, metricName string) (*entity.MetricConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.configs {
		if c.TeamID() == teamID && c.MetricName() == metricName {
			return c, nil
		}
	}
	return nil, nil
}

type memoryCalcRepo struct {
	mu    sync.RWMutex
	calcs []*entity.SprintCalculation
}

func (r *memoryCalcRepo) Save(_ context.Context, c *entity.SprintCalculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calcs = append(r.calcs, c)
	return nil
}

func (r *memoryCalcRepo) FindByTeam(_ context.Context, teamID string, limit int) ([]*entity.SprintCalculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
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

type memoryRetroRepo struct {
	mu     sync.RWMutex
	boards []*entity.RetroBoard
	items  []*entity.RetroItem
}

func (r *memoryRetroRepo) SaveBoard(_ context.Context, b *entity.RetroBoard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards = append(r.boards, b)
	return nil
}

func (r *memoryRetroRepo) FindBoardByID(_ context.Context, id string) (*entity.RetroBoard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.boards {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, errStoreNotFound
}

func (r *memoryRetroRepo) FindBoardsByTeam(_ context.Context, teamID string) ([]*entity.RetroBoard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.RetroBoard
	for _, b := range r.boards {
		if b.TeamID() == teamID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRetroRepo) SaveItem(_ context.Context, item *entity.RetroItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *memoryRetroRepo) FindItemsByBoard(_ context.Context, boardID string) ([]*entity.RetroItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.RetroItem
	for _, item := range r.items {
		if item.BoardID() == boardID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryRetroRepo) DeleteItem(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID() == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errStoreNotFound
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New("error")

	teamRepo := newMemoryTeamRepo()
	metricRepo := &memoryMetricRepo{}
	configRepo := &memoryConfigRepo{}
	calcRepo := &memoryCalcRepo{}
	retroRepo := &memoryRetroRepo{}

	classifier := service.NewThresholdClassifier()
	projector := service.NewVelocityProjector()
	hub := wsInfra.NewHub(log)

	createTeamUC := usecase.NewCreateTeamUseCase(teamRepo, configRepo, log)
	updateTeamUC := usecase.NewUpdateTeamUseCase(teamRepo, log)
	listTeamsUC := usecase.NewListTeamsUseCase(teamRepo, log)
	configureUC := usecase.NewConfigureThresholdsUseCase(teamRepo, configRepo, nil, log)
	recordUC := usecase.NewRecordHealthMetricUseCase(metricRepo, configRepo, teamRepo, classifier, nil, nil, hub, log)
	approveUC := usecase.NewApproveHealthMetricUseCase(metricRepo, configRepo, classifier, nil, nil, hub, log)
	teamHealthUC := usecase.NewGetTeamHealthUseCase(teamRepo, metricRepo, configRepo, classifier, nil, log)
	redMetricsUC := usecase.NewListRedMetricsUseCase(teamRepo, metricRepo, configRepo, classifier, log)
	projectVelocityUC := usecase.NewProjectVelocityUseCase(projector, calcRepo, teamRepo, log)
	retroUC := usecase.NewRetrospectiveUseCase(retroRepo, teamRepo, log)
	exportUC := usecase.NewExportHealthMetricsUseCase(
		teamRepo,
		metricRepo,
		configRepo,
		classifier,
		map[string]applicationPort.ExportEncoder{
			"csv":  export.NewCSVEncoder(),
			"json": export.NewJSONEncoder(),
		},
		nil,
		log,
	)

	authConfig := middleware.AuthConfig{Enabled: true, BearerToken: testToken}

	router := NewRouter(
		handler.NewTeamHandler(createTeamUC, updateTeamUC, listTeamsUC, log),
		handler.NewMetricConfigHandler(configureUC, log),
		handler.NewHealthMetricHandler(recordUC, approveUC, teamHealthUC, redMetricsUC, log),
		handler.NewVelocityHandler(projectVelocityUC, log),
		handler.NewRetroHandler(retroUC, log),
		handler.NewExportHandler(exportUC, log),
		handler.NewWebSocketHandler(hub, []string{"http://localhost:8080"}, authConfig, log),
		handler.NewAuthAPIHandler(authConfig, log),
		config.SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			AuthEnabled:    true,
			AuthToken:      testToken,
		},
		log,
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, role string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(handler.RoleHeader, role)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createTestTeam(t *testing.T, client *http.Client, baseURL, name string) dto.TeamDTO {
	t.Helper()
	resp := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/teams", map[string]any{
		"name":                  name,
		"size":                  5,
		"sprint_duration_weeks": 2,
	}, "admin")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for team create, got %d", resp.StatusCode)
	}
	var team dto.TeamDTO
	decodeBody(t, resp, &team)
	return team
}

func TestE2EHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, resp.StatusCode)
		}
	}
}

func TestE2EAuthRequired(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/teams")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	loginResp := doJSON(t, server.Client(), http.MethodPost, server.URL+"/api/v1/auth/login", map[string]string{"token": testToken}, "")
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for login, got %d", loginResp.StatusCode)
	}
	loginResp.Body.Close()
	if len(loginResp.Cookies()) == 0 {
		t.Fatal("expected auth cookie after login")
	}
}

func TestE2ETeamHealthFlow(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	team := createTestTeam(t, client, server.URL, "Phoenix")

	// Команда создается с конфигурациями каталога по умолчанию
	configsResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/teams/"+team.ID+"/metric-configs", nil, "")
	var configs []*dto.MetricConfigDTO
	decodeBody(t, configsResp, &configs)
	if len(configs) == 0 {
		t.Fatal("expected seeded metric configs for new team")
	}

	// Пороги velocity_sp: 40/30/20, higher is better
	upsertResp := doJSON(t, client, http.MethodPut, server.URL+"/api/v1/teams/"+team.ID+"/metric-configs", map[string]any{
		"metric_name":      "velocity_sp",
		"green_threshold":  40,
		"yellow_threshold": 30,
		"red_threshold":    20,
		"is_higher_better": true,
	}, "admin")
	if upsertResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for threshold upsert, got %d", upsertResp.StatusCode)
	}
	upsertResp.Body.Close()

	// PO не может вводить данные
	forbiddenResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/teams/"+team.ID+"/metrics", map[string]string{
		"metric_name":   "velocity_sp",
		"sprint_number": "S01",
		"value":         "35",
	}, "product_owner")
	if forbiddenResp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for product owner data entry, got %d", forbiddenResp.StatusCode)
	}
	forbiddenResp.Body.Close()

	recordResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/teams/"+team.ID+"/metrics", map[string]string{
		"metric_name":   "velocity_sp",
		"sprint_number": "S01",
		"value":         "35",
	}, "scrum_master")
	if recordResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for metric record, got %d", recordResp.StatusCode)
	}
	var recorded dto.HealthMetricDTO
	decodeBody(t, recordResp, &recorded)
	if recorded.ActualColor != "yellow" {
		t.Fatalf("expected yellow for 35 with 40/30 thresholds, got %s", recorded.ActualColor)
	}

	healthResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/teams/"+team.ID+"/health?sprint=S01", nil, "")
	var snapshot dto.TeamHealthDTO
	decodeBody(t, healthResp, &snapshot)
	if len(snapshot.Metrics) != 1 {
		t.Fatalf("expected 1 metric in snapshot, got %d", len(snapshot.Metrics))
	}
	if snapshot.Metrics[0].EffectiveColor != "yellow" {
		t.Fatalf("expected yellow effective color, got %s", snapshot.Metrics[0].EffectiveColor)
	}

	// PO approval форсирует зеленый, вычисленный цвет сохраняется
	approveResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/metrics/"+recorded.ID+"/approve", map[string]string{
		"approved_by": "po@example.com",
		"comment":     "accepted with remediation plan",
	}, "product_owner")
	if approveResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for approve, got %d", approveResp.StatusCode)
	}
	var approved dto.HealthMetricDTO
	decodeBody(t, approveResp, &approved)
	if approved.EffectiveColor != "green" {
		t.Fatalf("expected green effective color after approval, got %s", approved.EffectiveColor)
	}
	if approved.ActualColor != "yellow" {
		t.Fatalf("expected computed color preserved, got %s", approved.ActualColor)
	}

	// Повторный approve — конфликт
	repeatResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/metrics/"+recorded.ID+"/approve", map[string]string{
		"approved_by": "po@example.com",
	}, "product_owner")
	if repeatResp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for repeated approve, got %d", repeatResp.StatusCode)
	}
	repeatResp.Body.Close()
}

func TestE2ERedMetricsAndExport(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	team := createTestTeam(t, client, server.URL, "Hydra")

	// critical_bugs по умолчанию lower is better: 9 — красный
	recordResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/teams/"+team.ID+"/metrics", map[string]string{
		"metric_name":   "critical_bugs",
		"sprint_number": "S02",
		"value":         "9",
	}, "scrum_master")
	if recordResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for metric record, got %d", recordResp.StatusCode)
	}
	recordResp.Body.Close()

	redResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/metrics/red", nil, "")
	var red []*dto.RedMetricDTO
	decodeBody(t, redResp, &red)
	if len(red) != 1 {
		t.Fatalf("expected 1 red metric, got %d", len(red))
	}
	if red[0].TeamName != "Hydra" || red[0].MetricName != "critical_bugs" {
		t.Fatalf("unexpected red metric: %+v", red[0])
	}

	exportResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/export/health-metrics?format=csv&team_id="+team.ID, nil, "")
	if exportResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for export, got %d", exportResp.StatusCode)
	}
	defer exportResp.Body.Close()

	if disposition := exportResp.Header.Get("Content-Disposition"); !strings.Contains(disposition, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", disposition)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(exportResp.Body); err != nil {
		t.Fatalf("read export body: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "critical_bugs") || !strings.Contains(lines[1], "red") {
		t.Fatalf("unexpected export row: %q", lines[1])
	}

	badFormatResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/export/health-metrics?format=xml", nil, "")
	if badFormatResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported format, got %d", badFormatResp.StatusCode)
	}
	badFormatResp.Body.Close()
}

func TestE2EVelocityFlow(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	team := createTestTeam(t, client, server.URL, "Kraken")

	form := map[string]any{
		"team_name":             "Kraken",
		"historical_velocities": []float64{20, 22, 21, 23, 24},
		"team_size":             2,
		"team_members": []map[string]any{
			{"name": "Anna", "role": "backend", "capacity_factor": 1.0},
			{"name": "Pavel", "role": "qa", "capacity_factor": 1.0},
		},
		"sprint_start_date": "2026-03-02",
		"sprint_end_date":   "2026-03-13",
	}

	calcResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/velocity/calculate", form, "")
	if calcResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for velocity calculate, got %d", calcResp.StatusCode)
	}
	var result dto.VelocityResultDTO
	decodeBody(t, calcResp, &result)
	if result.AverageHistoricalVelocity != 22 {
		t.Fatalf("expected average 22, got %v", result.AverageHistoricalVelocity)
	}
	if result.WorkingDays != 10 {
		t.Fatalf("expected 10 working days, got %d", result.WorkingDays)
	}

	saveResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/teams/"+team.ID+"/velocity-calculations", form, "scrum_master")
	if saveResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for velocity save, got %d", saveResp.StatusCode)
	}
	saveResp.Body.Close()

	historyResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/teams/"+team.ID+"/velocity-calculations", nil, "")
	var history []*dto.SprintCalculationDTO
	decodeBody(t, historyResp, &history)
	if len(history) != 1 {
		t.Fatalf("expected 1 saved calculation, got %d", len(history))
	}

	exportResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/velocity/export", form, "")
	if exportResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for velocity export, got %d", exportResp.StatusCode)
	}
	if disposition := exportResp.Header.Get("Content-Disposition"); !strings.Contains(disposition, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", disposition)
	}
	exportResp.Body.Close()

	invalidForm := map[string]any{
		"team_name":             "Kraken",
		"historical_velocities": []float64{20, 22},
		"team_size":             2,
		"sprint_start_date":     "2026-03-02",
		"sprint_end_date":       "2026-03-13",
	}
	invalidResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/velocity/calculate", invalidForm, "")
	if invalidResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid form, got %d", invalidResp.StatusCode)
	}
	invalidResp.Body.Close()
}

func TestE2ERetroFlow(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	team := createTestTeam(t, client, server.URL, "Atlas")

	boardResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/teams/"+team.ID+"/retro-boards", map[string]string{
		"sprint_number": "S05",
		"title":         "Sprint 5 retro",
	}, "scrum_master")
	if boardResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for board create, got %d", boardResp.StatusCode)
	}
	var board dto.RetroBoardDTO
	decodeBody(t, boardResp, &board)

	itemResp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/retro-boards/"+board.ID+"/items", map[string]string{
		"category":    "to_improve",
		"content":     "Flaky pipeline slows reviews",
		"author_name": "Anna",
	}, "scrum_master")
	if itemResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for item create, got %d", itemResp.StatusCode)
	}
	var item dto.RetroItemDTO
	decodeBody(t, itemResp, &item)

	listResp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/retro-boards/"+board.ID+"/items", nil, "")
	var items []*dto.RetroItemDTO
	decodeBody(t, listResp, &items)
	if len(items) != 1 {
		t.Fatalf("expected 1 retro item, got %d", len(items))
	}

	deleteResp := doJSON(t, client, http.MethodDelete, server.URL+"/api/v1/retro-items/"+item.ID, nil, "scrum_master")
	if deleteResp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for item delete, got %d", deleteResp.StatusCode)
	}
	deleteResp.Body.Close()

	listResp = doJSON(t, client, http.MethodGet, server.URL+"/api/v1/retro-boards/"+board.ID+"/items", nil, "")
	decodeBody(t, listResp, &items)
	if len(items) != 0 {
		t.Fatalf("expected empty board after delete, got %d items", len(items))
	}
}
