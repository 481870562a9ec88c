package team

import (
	"net/http"
	"strconv"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/catalog"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/pkg/responses"
	"github.com/apexarena/backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TeamController struct {
	repo   TeamRepository
	config *config.Config
}

func NewTeamController(repo TeamRepository, cfg *config.Config) *TeamController {
	return &TeamController{repo: repo, config: cfg}
}

// @Summary      Create a team
// @Description  Create the calling captain's team for one sport. Candidate player ids that are not the captain's own approved department players are silently dropped.
// @Tags         Teams
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        team  body  CreateTeamRequest  true  "Team details"
// @Success      201  {object}  map[string]interface{} "Created team"
// @Failure      400  {object}  map[string]string "Validation error, duplicate sport, or roster over cap"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /captain-teams [post]
func (ctl *TeamController) CreateTeam(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	if !catalog.IsSport(req.Sport) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sport: " + req.Sport})
		return
	}

	existing, err := ctl.repo.GetTeamByCaptainAndSport(claims.UserID, req.Sport)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A team already exists for this sport"})
		return
	}

	players, err := ctl.repo.EligiblePlayers(req.PlayerIDs, claims.UserID, claims.Department)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve players: " + err.Error()})
		return
	}
	if len(players) > MaxTeamPlayers {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A team cannot have more than 15 players"})
		return
	}

	newTeam := &Team{
		Name:       req.Name,
		Sport:      req.Sport,
		Department: claims.Department,
		CaptainID:  claims.UserID,
		Players:    players,
	}

	if err := ctl.repo.CreateTeam(newTeam); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Team creation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team created",
		"team":    FilterTeamRecord(newTeam),
	})
}

// @Summary      My teams
// @Description  All teams owned by the calling captain, players and captain populated.
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Teams"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /captain-teams/my [get]
func (ctl *TeamController) MyTeams(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	teams, err := ctl.repo.GetTeamsByCaptain(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": FilterTeamRecords(teams)})
}

// @Summary      Add a player to a team
// @Description  Append one of the captain's approved department players to an owned team.
// @Tags         Teams
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path  int                   true  "Team ID"
// @Param        player  body  AddTeamPlayerRequest  true  "Player to add"
// @Success      200  {object}  map[string]interface{} "Updated team"
// @Failure      400  {object}  map[string]string "Already a member or roster full"
// @Failure      404  {object}  map[string]string "Team or player not found"
// @Router       /captain-teams/{id}/players [post]
func (ctl *TeamController) AddPlayer(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	var req AddTeamPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	t, err := ctl.repo.GetOwnedTeam(uint(teamID), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found or no permission"})
		return
	}

	candidates, err := ctl.repo.EligiblePlayers([]uint{req.PlayerID}, claims.UserID, claims.Department)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if len(candidates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found in your department"})
		return
	}

	for _, member := range t.Players {
		if member.ID == req.PlayerID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player is already on this team"})
			return
		}
	}
	if len(t.Players) >= MaxTeamPlayers {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A team cannot have more than 15 players"})
		return
	}

	if err := ctl.repo.AddPlayer(t, &candidates[0]); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add player: " + err.Error()})
		return
	}

	updated, err := ctl.repo.GetTeamByID(t.ID)
	if err != nil || updated == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Player added"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player added", "team": FilterTeamRecord(updated)})
}

// @Summary      Remove a player from a team
// @Description  Remove a player id from an owned team. Removing a non-member is a no-op success.
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Param        id        path  int  true  "Team ID"
// @Param        playerId  path  int  true  "Player ID"
// @Success      200  {object}  map[string]interface{} "Updated team"
// @Failure      404  {object}  map[string]string "Team not found or no permission"
// @Router       /captain-teams/{id}/players/{playerId} [delete]
func (ctl *TeamController) RemovePlayer(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	playerID, err := strconv.ParseUint(c.Param("playerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	t, err := ctl.repo.GetOwnedTeam(uint(teamID), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found or no permission"})
		return
	}

	// Idempotent: deleting a non-member association is a no-op.
	if err := ctl.repo.RemovePlayer(t, uint(playerID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove player: " + err.Error()})
		return
	}

	updated, err := ctl.repo.GetTeamByID(t.ID)
	if err != nil || updated == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Player removed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player removed", "team": FilterTeamRecord(updated)})
}

// @Summary      Delete my team
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Team ID"
// @Success      200  {object}  map[string]string "Team deleted"
// @Failure      404  {object}  map[string]string "Team not found or no permission"
// @Router       /captain-teams/{id} [delete]
func (ctl *TeamController) DeleteMyTeam(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	rows, err := ctl.repo.DeleteOwnedTeam(uint(teamID), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team: " + err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found or no permission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}

// @Summary      List teams
// @Description  Public team list, optionally filtered by sport, ordered by wins.
// @Tags         Teams
// @Produce      json
// @Param        sport  query  string  false  "Sport filter"
// @Success      200  {object}  map[string]interface{} "Teams"
// @Router       /teams [get]
func (ctl *TeamController) ListTeams(c *gin.Context) {
	teams, err := ctl.repo.GetAllTeams(c.Query("sport"))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list teams: "+err.Error())
		return
	}
	responses.OK(c, "", "teams", FilterTeamRecords(teams))
}

// @Summary      Get a team
// @Tags         Teams
// @Produce      json
// @Param        id  path  int  true  "Team ID"
// @Success      200  {object}  map[string]interface{} "Team"
// @Failure      404  {object}  map[string]string "Team not found"
// @Router       /teams/{id} [get]
func (ctl *TeamController) GetTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid team id")
		return
	}

	t, err := ctl.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.OK(c, "", "team", FilterTeamRecord(t))
}

// @Summary      Delete any team (admin)
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Team ID"
// @Success      200  {object}  map[string]string "Team deleted"
// @Failure      404  {object}  map[string]string "Team not found"
// @Router       /teams/{id} [delete]
func (ctl *TeamController) AdminDeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid team id")
		return
	}

	t, err := ctl.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := ctl.repo.DeleteTeam(t.ID); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to delete team: "+err.Error())
		return
	}
	responses.OK(c, "Team deleted", "", nil)
}
