package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/models"
	"github.com/apexarena/backend/internal/roster"
	"github.com/apexarena/backend/internal/team"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "match-test-secret"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	teamA  *team.Team
	teamB  *team.Team
	admin  string
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&captain.Captain{}, &roster.DepartmentPlayer{}, &team.Team{}, &Match{}))

	var teams []*team.Team
	for i, dept := range []string{"CSE", "ECE"} {
		c := &captain.Captain{
			Name:       fmt.Sprintf("Captain %d", i+1),
			Email:      fmt.Sprintf("cap%d@college.edu", i+1),
			Password:   "irrelevant",
			RNumber:    fmt.Sprintf("R20XX%03d", i+1),
			UniqueID:   fmt.Sprintf("APX-X%03d-ABC12345%d", i+1, i),
			Department: dept,
			Status:     models.StatusApproved,
		}
		require.NoError(t, db.Create(c).Error)

		tm := &team.Team{
			Name:       dept + " Strikers",
			Sport:      "cricket",
			Department: dept,
			CaptainID:  c.ID,
		}
		require.NoError(t, db.Create(tm).Error)
		teams = append(teams, tm)
	}

	admin, err := token.Generate(1, "admin@college.edu", "", token.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpiryDays = 1

	router := gin.New()
	api := router.Group("/api")
	RegisterMatchRoutes(api, db, cfg)

	return &testEnv{router: router, db: db, teamA: teams[0], teamB: teams[1], admin: admin}
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createMatch(t *testing.T) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/matches", e.admin, map[string]interface{}{
		"date":      time.Now().Add(24 * time.Hour),
		"team_a_id": e.teamA.ID,
		"team_b_id": e.teamB.ID,
		"sport":     "cricket",
		"venue":     "Main Ground",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Match MatchResponse `json:"match"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, StatusScheduled, body.Match.Status)
	return body.Match.ID
}

func (e *testEnv) teamRecord(t *testing.T, id uint) (int, int) {
	t.Helper()
	var tm team.Team
	require.NoError(t, e.db.First(&tm, id).Error)
	return tm.Wins, tm.Losses
}

func TestCreateMatchRequiresAdmin(t *testing.T) {
	env := setupTest(t)

	captainToken, err := token.Generate(1, "cap1@college.edu", "CSE", token.RoleCaptain, testSecret, time.Hour)
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/matches", captainToken, map[string]interface{}{
		"date":      time.Now(),
		"team_a_id": env.teamA.ID,
		"team_b_id": env.teamB.ID,
		"sport":     "cricket",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateMatchValidatesTeams(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, http.MethodPost, "/api/matches", env.admin, map[string]interface{}{
		"date":      time.Now(),
		"team_a_id": env.teamA.ID,
		"team_b_id": 424242,
		"sport":     "cricket",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not found")

	w = env.do(t, http.MethodPost, "/api/matches", env.admin, map[string]interface{}{
		"date":      time.Now(),
		"team_a_id": env.teamA.ID,
		"team_b_id": env.teamA.ID,
		"sport":     "cricket",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "two different teams")
}

func TestScoreCompletionSettlesTeamRecordsOnce(t *testing.T) {
	env := setupTest(t)
	id := env.createMatch(t)

	w := env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d/score", id), env.admin,
		map[string]interface{}{"score_a": 2, "score_b": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Match MatchResponse `json:"match"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, StatusCompleted, body.Match.Status)
	assert.Equal(t, 2, body.Match.ScoreA)

	wins, losses := env.teamRecord(t, env.teamA.ID)
	assert.Equal(t, 1, wins)
	assert.Equal(t, 0, losses)
	wins, losses = env.teamRecord(t, env.teamB.ID)
	assert.Equal(t, 0, wins)
	assert.Equal(t, 1, losses)

	// A correction while already completed adjusts scores but never
	// re-settles the result, even if it flips the winner.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d/score", id), env.admin,
		map[string]interface{}{"score_a": 2, "score_b": 5})
	require.Equal(t, http.StatusOK, w.Code)

	wins, losses = env.teamRecord(t, env.teamA.ID)
	assert.Equal(t, 1, wins)
	assert.Equal(t, 0, losses)
	wins, losses = env.teamRecord(t, env.teamB.ID)
	assert.Equal(t, 0, wins)
	assert.Equal(t, 1, losses)
}

func TestTieSettlesNothing(t *testing.T) {
	env := setupTest(t)
	id := env.createMatch(t)

	w := env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d/score", id), env.admin,
		map[string]interface{}{"score_a": 3, "score_b": 3})
	require.Equal(t, http.StatusOK, w.Code)

	wins, losses := env.teamRecord(t, env.teamA.ID)
	assert.Zero(t, wins)
	assert.Zero(t, losses)
	wins, losses = env.teamRecord(t, env.teamB.ID)
	assert.Zero(t, wins)
	assert.Zero(t, losses)
}

func TestStatusTransitionsEnforced(t *testing.T) {
	env := setupTest(t)
	id := env.createMatch(t)

	// scheduled -> live is fine.
	w := env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d", id), env.admin,
		map[string]interface{}{"status": "live"})
	assert.Equal(t, http.StatusOK, w.Code)

	// live -> scheduled is not.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d", id), env.admin,
		map[string]interface{}{"status": "scheduled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status transition")

	// live -> completed, then completed -> live is rejected.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d/score", id), env.admin,
		map[string]interface{}{"score_a": 1, "score_b": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d", id), env.admin,
		map[string]interface{}{"status": "live"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/matches/%d", id), env.admin,
		map[string]interface{}{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown status")
}

func TestGetAndDeleteMatch(t *testing.T) {
	env := setupTest(t)
	id := env.createMatch(t)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/matches/%d", id), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Main Ground")

	w = env.do(t, http.MethodGet, "/api/matches/424242", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/matches/%d", id), env.admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/matches/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMatchesFilters(t *testing.T) {
	env := setupTest(t)
	env.createMatch(t)

	w := env.do(t, http.MethodGet, "/api/matches?status=scheduled", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Matches []MatchResponse `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Matches, 1)

	w = env.do(t, http.MethodGet, "/api/matches?status=completed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Matches)
}
