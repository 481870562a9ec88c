package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/internal/models"
	"github.com/apexarena/backend/internal/roster"
	"github.com/apexarena/backend/pkg/token"
	"github.com/apexarena/backend/pkg/utils"
	"github.com/apexarena/backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Controller struct {
	repo     Repository
	captains captain.Repository
	players  roster.Repository
	config   *config.Config
}

func NewController(repo Repository, captains captain.Repository, players roster.Repository, cfg *config.Config) *Controller {
	return &Controller{repo: repo, captains: captains, players: players, config: cfg}
}

// @Summary      Admin signup
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        admin  body  SignupRequest  true  "Admin details"
// @Success      201  {object}  map[string]interface{} "Admin created"
// @Failure      400  {object}  map[string]string "Validation error or email already used"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /admin/signup [post]
func (ctl *Controller) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	if _, err := ctl.repo.GetByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin with this email already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	newAdmin := &Admin{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
	}
	if err := ctl.repo.Create(newAdmin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin creation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created",
		"admin":   FilterAdminRecord(newAdmin),
	})
}

// @Summary      Admin login
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  map[string]interface{} "Token and admin profile"
// @Failure      400  {object}  map[string]string "Invalid input"
// @Failure      401  {object}  map[string]string "Invalid credentials"
// @Router       /admin/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	found, err := ctl.repo.GetByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	if !utils.CheckPassword(found.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ttl := time.Duration(ctl.config.JWT.ExpiryDays) * 24 * time.Hour
	signed, err := token.Generate(found.ID, found.Email, "", token.RoleAdmin, ctl.config.JWT.Secret, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   signed,
		"admin":   FilterAdminRecord(found),
	})
}

// @Summary      Admin profile
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Admin profile"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Admin not found"
// @Router       /admin/profile [get]
func (ctl *Controller) Profile(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	current, err := ctl.repo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": FilterAdminRecord(current)})
}

// @Summary      List captains
// @Description  All captain registrations, optionally filtered by status.
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  map[string]interface{} "Captains"
// @Router       /admin/captains [get]
func (ctl *Controller) ListCaptains(c *gin.Context) {
	captains, err := ctl.captains.List(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list captains: " + err.Error()})
		return
	}

	out := make([]captain.CaptainResponse, 0, len(captains))
	for i := range captains {
		out = append(out, captain.FilterCaptainRecord(&captains[i]))
	}
	c.JSON(http.StatusOK, gin.H{"captains": out})
}

// @Summary      Set captain status
// @Description  Approve, reject, activate or deactivate a captain registration.
// @Tags         Admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path  int               true  "Captain ID"
// @Param        status  body  SetStatusRequest  true  "New status"
// @Success      200  {object}  map[string]string "Status updated"
// @Failure      400  {object}  map[string]string "Unknown status"
// @Failure      404  {object}  map[string]string "Captain not found"
// @Router       /admin/captains/{id}/status [put]
func (ctl *Controller) SetCaptainStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid captain id"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	status := models.Status(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + req.Status})
		return
	}

	rows, err := ctl.captains.SetStatus(uint(id), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status: " + err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Captain not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Captain status updated"})
}

// @Summary      List department players
// @Description  Paginated roster entries across all departments, optionally filtered by status.
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page"       default(1)
// @Param        limit   query  int     false  "Page size"  default(20)
// @Success      200  {object}  map[string]interface{} "Players"
// @Router       /admin/players [get]
func (ctl *Controller) ListPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	players, total, err := ctl.players.List(c.Query("status"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list players: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"players": roster.FilterPlayerRecords(players),
		"total":   total,
	})
}

// @Summary      Set department player status
// @Tags         Admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path  int               true  "Player ID"
// @Param        status  body  SetStatusRequest  true  "New status"
// @Success      200  {object}  map[string]string "Status updated"
// @Failure      400  {object}  map[string]string "Unknown status"
// @Failure      404  {object}  map[string]string "Player not found"
// @Router       /admin/players/{id}/status [put]
func (ctl *Controller) SetPlayerStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	status := models.Status(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + req.Status})
		return
	}

	rows, err := ctl.players.SetStatus(uint(id), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status: " + err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player status updated"})
}
