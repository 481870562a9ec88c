package match

import (
	"log"
	"net/http"
	"strconv"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/catalog"
	"github.com/apexarena/backend/internal/team"
	"github.com/apexarena/backend/pkg/responses"
	"github.com/apexarena/backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type MatchController struct {
	repo   MatchRepository
	teams  team.TeamRepository
	config *config.Config
}

func NewMatchController(repo MatchRepository, teams team.TeamRepository, cfg *config.Config) *MatchController {
	return &MatchController{repo: repo, teams: teams, config: cfg}
}

// @Summary      Create a match
// @Description  Schedule a fixture between two existing teams. Admin only.
// @Tags         Matches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        match  body  CreateMatchRequest  true  "Match details"
// @Success      201  {object}  map[string]interface{} "Created match"
// @Failure      400  {object}  map[string]string "Validation error or unknown team"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /matches [post]
func (ctl *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	if !catalog.IsSport(req.Sport) {
		responses.Error(c, http.StatusBadRequest, "Unknown sport: "+req.Sport)
		return
	}
	if req.TeamAID == req.TeamBID {
		responses.Error(c, http.StatusBadRequest, "A match needs two different teams")
		return
	}

	for _, id := range []uint{req.TeamAID, req.TeamBID} {
		t, err := ctl.teams.GetTeamByID(id)
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if t == nil {
			responses.Error(c, http.StatusBadRequest, "Team "+strconv.FormatUint(uint64(id), 10)+" not found")
			return
		}
	}

	m := &Match{
		Date:    req.Date,
		TeamAID: req.TeamAID,
		TeamBID: req.TeamBID,
		Sport:   req.Sport,
		Venue:   req.Venue,
		Status:  StatusScheduled,
	}

	if err := ctl.repo.Create(m); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Match creation failed: "+err.Error())
		return
	}
	responses.Created(c, "Match scheduled", "match", FilterMatchRecord(m))
}

// @Summary      List matches
// @Tags         Matches
// @Produce      json
// @Param        sport   query  string  false  "Sport filter"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  map[string]interface{} "Matches"
// @Router       /matches [get]
func (ctl *MatchController) ListMatches(c *gin.Context) {
	matches, err := ctl.repo.List(c.Query("sport"), c.Query("status"))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list matches: "+err.Error())
		return
	}
	responses.OK(c, "", "matches", FilterMatchRecords(matches))
}

// @Summary      Get a match
// @Tags         Matches
// @Produce      json
// @Param        id  path  int  true  "Match ID"
// @Success      200  {object}  map[string]interface{} "Match"
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{id} [get]
func (ctl *MatchController) GetMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid match id")
		return
	}

	m, err := ctl.repo.GetByID(uint(id))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.OK(c, "", "match", FilterMatchRecord(m))
}

// @Summary      Update a match
// @Description  Update fixture fields. Status writes must follow the transition table (scheduled→live, scheduled→completed, live→completed).
// @Tags         Matches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Match ID"
// @Param        match  body  UpdateMatchRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{} "Updated match"
// @Failure      400  {object}  map[string]string "Invalid input or status transition"
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{id} [put]
func (ctl *MatchController) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid match id")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	m, err := ctl.repo.GetByID(uint(id))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.Sport != nil {
		if !catalog.IsSport(*req.Sport) {
			responses.Error(c, http.StatusBadRequest, "Unknown sport: "+*req.Sport)
			return
		}
		m.Sport = *req.Sport
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			responses.Error(c, http.StatusBadRequest, "Unknown status: "+string(*req.Status))
			return
		}
		if !AllowedTransition(m.Status, *req.Status) {
			responses.Error(c, http.StatusBadRequest,
				"Invalid status transition: "+string(m.Status)+" -> "+string(*req.Status))
			return
		}
		m.Status = *req.Status
	}

	if err := ctl.repo.Update(m); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to update match: "+err.Error())
		return
	}
	responses.OK(c, "Match updated", "match", FilterMatchRecord(m))
}

// @Summary      Update the score
// @Description  Write scores and (optionally) a status, defaulting to completed. The first transition into completed settles the match: the winner gains a win, the loser a loss, a tie changes nothing. Corrections while already completed update scores only.
// @Tags         Matches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Match ID"
// @Param        score  body  UpdateScoreRequest  true  "Scores and optional status"
// @Success      200  {object}  map[string]interface{} "Updated match"
// @Failure      400  {object}  map[string]string "Invalid input or status transition"
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{id}/score [put]
func (ctl *MatchController) UpdateScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid match id")
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	m, err := ctl.repo.GetByID(uint(id))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	next := req.Status
	if next == "" {
		next = StatusCompleted
	}
	if !next.Valid() {
		responses.Error(c, http.StatusBadRequest, "Unknown status: "+string(next))
		return
	}
	if !AllowedTransition(m.Status, next) {
		responses.Error(c, http.StatusBadRequest,
			"Invalid status transition: "+string(m.Status)+" -> "+string(next))
		return
	}

	prev := m.Status
	m.ScoreA = req.ScoreA
	m.ScoreB = req.ScoreB
	m.Status = next

	if err := ctl.repo.Update(m); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to update score: "+err.Error())
		return
	}

	switch ResultOutcome(prev, next, m.ScoreA, m.ScoreB) {
	case OutcomeTeamA:
		if err := ctl.teams.ApplyResult(m.TeamAID, m.TeamBID); err != nil {
			log.Printf("match %d: failed to apply result to teams: %v", m.ID, err)
		}
	case OutcomeTeamB:
		if err := ctl.teams.ApplyResult(m.TeamBID, m.TeamAID); err != nil {
			log.Printf("match %d: failed to apply result to teams: %v", m.ID, err)
		}
	}

	updated, err := ctl.repo.GetByID(m.ID)
	if err != nil || updated == nil {
		responses.OK(c, "Score updated", "match", FilterMatchRecord(m))
		return
	}
	responses.OK(c, "Score updated", "match", FilterMatchRecord(updated))
}

// @Summary      Delete a match
// @Tags         Matches
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Match ID"
// @Success      200  {object}  map[string]string "Match deleted"
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{id} [delete]
func (ctl *MatchController) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid match id")
		return
	}

	m, err := ctl.repo.GetByID(uint(id))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := ctl.repo.Delete(m.ID); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to delete match: "+err.Error())
		return
	}
	responses.OK(c, "Match deleted", "", nil)
}
