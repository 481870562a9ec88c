package roster

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/models"
	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "roster-test-secret"

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, *captain.Captain, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&captain.Captain{}, &DepartmentPlayer{}))

	owner := &captain.Captain{
		Name:       "Asha Rao",
		Email:      "asha@college.edu",
		Password:   "irrelevant",
		RNumber:    "R20CS001",
		UniqueID:   "APX-S001-ABC123456",
		Department: "CSE",
		Status:     models.StatusApproved,
	}
	require.NoError(t, db.Create(owner).Error)

	signed, err := token.Generate(owner.ID, owner.Email, owner.Department, token.RoleCaptain, testSecret, time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpiryDays = 1

	router := gin.New()
	api := router.Group("/api")
	RegisterRosterRoutes(api, db, cfg)
	return router, db, owner, signed
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func addPlayerPayload(rNumber, sport string) map[string]string {
	return map[string]string{
		"name":     "Ravi Kumar",
		"r_number": rNumber,
		"phone":    "9876501234",
		"email":    "ravi@college.edu",
		"sport":    sport,
	}
}

func TestAddPlayerInheritsCaptainDepartment(t *testing.T) {
	router, _, owner, bearer := setupTest(t)

	w := doJSON(t, router, http.MethodPost, "/api/captain-auth/players", bearer,
		addPlayerPayload("R20CS042", "cricket"))
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Player PlayerResponse `json:"player"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, owner.Department, body.Player.Department)
	assert.Equal(t, owner.ID, body.Player.CaptainID)
	assert.Equal(t, models.StatusPending, body.Player.Status)
	assert.Regexp(t, `^PLY-asha-`, body.Player.UniqueID)
}

func TestAddPlayerRejectsSameSportTwice(t *testing.T) {
	router, _, _, bearer := setupTest(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "cricket")).Code)

	w := doJSON(t, router, http.MethodPost, "/api/captain-auth/players", bearer,
		addPlayerPayload("R20CS042", "cricket"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered for cricket")
}

func TestAddPlayerTwoSportCap(t *testing.T) {
	router, _, _, bearer := setupTest(t)

	for _, sport := range []string{"cricket", "football"} {
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
			"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", sport)).Code)
	}

	w := doJSON(t, router, http.MethodPost, "/api/captain-auth/players", bearer,
		addPlayerPayload("R20CS042", "chess"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "two sports")
}

func TestAddPlayerRejectsUnknownSport(t *testing.T) {
	router, _, _, bearer := setupTest(t)

	w := doJSON(t, router, http.MethodPost, "/api/captain-auth/players", bearer,
		addPlayerPayload("R20CS042", "quidditch"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown sport")
}

func TestUpdateAndDeleteEnforceOwnership(t *testing.T) {
	router, db, _, bearer := setupTest(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "cricket")).Code)

	var stored DepartmentPlayer
	require.NoError(t, db.First(&stored).Error)

	// A different captain's token must not reach this player.
	other, err := token.Generate(9999, "other@college.edu", "ECE", token.RoleCaptain, testSecret, time.Hour)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPut, "/api/captain-auth/players/1", other,
		map[string]string{"phone": "1112223334"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found or no permission")

	w = doJSON(t, router, http.MethodDelete, "/api/captain-auth/players/1", other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Owner succeeds.
	w = doJSON(t, router, http.MethodPut, "/api/captain-auth/players/1", bearer,
		map[string]string{"phone": "1112223334"})
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&stored, stored.ID).Error)
	assert.Equal(t, "1112223334", stored.Phone)

	w = doJSON(t, router, http.MethodDelete, "/api/captain-auth/players/1", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteThenReAddSameSport(t *testing.T) {
	router, _, _, bearer := setupTest(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "cricket")).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodDelete,
		"/api/captain-auth/players/1", bearer, nil).Code)

	// The (r_number, sport) slot must be free again after the delete.
	w := doJSON(t, router, http.MethodPost, "/api/captain-auth/players", bearer,
		addPlayerPayload("R20CS042", "cricket"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateSportConflictRejected(t *testing.T) {
	router, _, _, bearer := setupTest(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "cricket")).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "football")).Code)

	// Moving the football entry onto cricket would collide with the first
	// registration; the update path reports it like the create path does.
	w := doJSON(t, router, http.MethodPut, "/api/captain-auth/players/2", bearer,
		map[string]string{"sport": "cricket"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered for cricket")

	// A sport change without a conflict still goes through.
	w = doJSON(t, router, http.MethodPut, "/api/captain-auth/players/2", bearer,
		map[string]string{"sport": "chess"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateWithNoFieldsRejected(t *testing.T) {
	router, _, _, bearer := setupTest(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "cricket")).Code)

	w := doJSON(t, router, http.MethodPut, "/api/captain-auth/players/1", bearer, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No fields to update")
}

func TestPublicListShowsOnlyApprovedPlayers(t *testing.T) {
	router, db, _, bearer := setupTest(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS042", "cricket")).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost,
		"/api/captain-auth/players", bearer, addPlayerPayload("R20CS043", "cricket")).Code)

	require.NoError(t, db.Model(&DepartmentPlayer{}).Where("r_number = ?", "R20CS043").
		Update("status", models.StatusApproved).Error)

	w := doJSON(t, router, http.MethodGet, "/api/players", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Players    []PlayerResponse `json:"players"`
		Pagination struct {
			TotalItems int64 `json:"total_items"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Players, 1)
	assert.Equal(t, "R20CS043", body.Players[0].RNumber)
	assert.Equal(t, int64(1), body.Pagination.TotalItems)
}
