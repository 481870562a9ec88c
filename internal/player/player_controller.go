package player

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/apexarena/backend/config"
	"github.com/apexarena/backend/internal/catalog"
	"github.com/apexarena/backend/internal/middleware"
	"github.com/apexarena/backend/internal/models"
	"github.com/apexarena/backend/pkg/token"
	"github.com/apexarena/backend/pkg/utils"
	"github.com/apexarena/backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Controller struct {
	repo   Repository
	config *config.Config
}

func NewController(repo Repository, cfg *config.Config) *Controller {
	return &Controller{repo: repo, config: cfg}
}

// @Summary      Register a player account
// @Description  Create a player portal account. The account stays pending until an admin approves it.
// @Tags         PlayerAuth
// @Accept       json
// @Produce      json
// @Param        player  body  RegisterRequest  true  "Player registration details"
// @Success      201  {object}  map[string]interface{} "Player registered"
// @Failure      400  {object}  map[string]string "Validation error or email/roll number already used"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /player-auth/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	if !catalog.IsDepartment(req.Department) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown department: " + req.Department})
		return
	}

	if _, err := ctl.repo.GetByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player with this email already exists"})
		return
	}
	if _, err := ctl.repo.GetByRNumber(req.RNumber); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player with this roll number already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	newPlayer := &Player{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Password:   hashedPassword,
		RNumber:    req.RNumber,
		Phone:      req.Phone,
		Department: req.Department,
		Status:     models.StatusPending,
	}

	if err := ctl.repo.Create(newPlayer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Player registration failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration received. Your account is awaiting approval.",
		"player":  FilterPlayerRecord(newPlayer),
	})
}

// @Summary      Player login
// @Description  Authenticate with email or roll number plus password. Only approved/active accounts may log in.
// @Tags         PlayerAuth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  map[string]interface{} "Token and player profile"
// @Failure      400  {object}  map[string]string "Invalid input"
// @Failure      401  {object}  map[string]string "Invalid credentials"
// @Failure      403  {object}  map[string]string "Account pending, rejected or inactive"
// @Router       /player-auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	found, err := ctl.repo.GetByIdentifier(req.Identifier)
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

	if !found.Status.CanLogin() {
		switch found.Status {
		case models.StatusPending:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account awaiting approval"})
		case models.StatusRejected:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account has been rejected"})
		default:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		}
		return
	}

	ttl := time.Duration(ctl.config.JWT.ExpiryDays) * 24 * time.Hour
	signed, err := token.Generate(found.ID, found.Email, found.Department, token.RolePlayer, ctl.config.JWT.Secret, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   signed,
		"player":  FilterPlayerRecord(found),
	})
}

// @Summary      Player profile
// @Tags         PlayerAuth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Player profile"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Player not found"
// @Router       /player-auth/profile [get]
func (ctl *Controller) Profile(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	current, err := ctl.repo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": FilterPlayerRecord(current)})
}
