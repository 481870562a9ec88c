package roster

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/catalog"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/internal/models"
	"github.com/apexarena/backend/pkg/responses"
	"github.com/apexarena/backend/pkg/utils"
	"github.com/apexarena/backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	repo     Repository
	captains captain.Repository
	config   *config.Config
}

func NewController(repo Repository, captains captain.Repository, cfg *config.Config) *Controller {
	return &Controller{repo: repo, captains: captains, config: cfg}
}

// @Summary      Add a department player
// @Description  Register a player for one sport under the calling captain's department. A roll number may hold at most two sport registrations and never the same sport twice.
// @Tags         Roster
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        player  body  AddPlayerRequest  true  "Player details"
// @Success      201  {object}  map[string]interface{} "Player registered, pending approval"
// @Failure      400  {object}  map[string]string "Validation error or registration limit hit"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /captain-auth/players [post]
func (ctl *Controller) AddPlayer(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	if !catalog.IsSport(req.Sport) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sport: " + req.Sport})
		return
	}

	owner, err := ctl.captains.GetByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Captain account not found"})
		return
	}

	player := &DepartmentPlayer{
		Name:       req.Name,
		RNumber:    req.RNumber,
		UniqueID:   utils.PlayerUniqueID(owner.Name),
		Phone:      req.Phone,
		Email:      req.Email,
		Sport:      req.Sport,
		Department: owner.Department,
		CaptainID:  owner.ID,
		Status:     models.StatusPending,
	}

	if err := ctl.repo.CreateWithLimits(player); err != nil {
		switch {
		case errors.Is(err, ErrSportTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This roll number is already registered for " + req.Sport})
		case errors.Is(err, ErrSportLimit):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This roll number is already registered for two sports"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Player registration failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Player registered and awaiting approval",
		"player":  FilterPlayerRecord(player),
	})
}

// @Summary      List my players
// @Description  All department players registered by the calling captain.
// @Tags         Roster
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Players"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /captain-auth/players [get]
func (ctl *Controller) MyPlayers(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	players, err := ctl.repo.ListByCaptain(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list players: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": FilterPlayerRecords(players)})
}

// @Summary      Update a department player
// @Description  Update name/phone/email/sport of a player owned by the calling captain. Missing and not-owned are reported identically.
// @Tags         Roster
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path  int                  true  "Player ID"
// @Param        player  body  UpdatePlayerRequest  true  "Fields to update"
// @Success      200  {object}  map[string]string "Player updated"
// @Failure      400  {object}  map[string]string "Invalid input"
// @Failure      404  {object}  map[string]string "Player not found or no permission"
// @Router       /captain-auth/players/{id} [put]
func (ctl *Controller) UpdatePlayer(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Sport != nil {
		if !catalog.IsSport(*req.Sport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sport: " + *req.Sport})
			return
		}
		updates["sport"] = *req.Sport
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	rows, err := ctl.repo.UpdateOwned(uint(id), claims.UserID, updates)
	if err != nil {
		if errors.Is(err, ErrSportTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This roll number is already registered for " + *req.Sport})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player: " + err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found or no permission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player updated"})
}

// @Summary      Delete a department player
// @Description  Remove a player owned by the calling captain. Missing and not-owned are reported identically.
// @Tags         Roster
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Player ID"
// @Success      200  {object}  map[string]string "Player deleted"
// @Failure      404  {object}  map[string]string "Player not found or no permission"
// @Router       /captain-auth/players/{id} [delete]
func (ctl *Controller) DeletePlayer(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	rows, err := ctl.repo.DeleteOwned(uint(id), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player: " + err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found or no permission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
}

// @Summary      List approved players
// @Description  Public paginated list of approved department players.
// @Tags         Roster
// @Produce      json
// @Param        page   query  int  false  "Page"       default(1)
// @Param        limit  query  int  false  "Page size"  default(20)
// @Success      200  {object}  map[string]interface{} "Players with pagination"
// @Router       /players [get]
func (ctl *Controller) ListApproved(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	players, total, err := ctl.repo.List(string(models.StatusApproved), page, limit)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list players: "+err.Error())
		return
	}
	responses.Paginated(c, "players", FilterPlayerRecords(players), total, page, limit)
}
