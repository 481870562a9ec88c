package captain

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

// @Summary      Register a new captain
// @Description  Create a captain account. The account stays pending until an admin approves it, so no token is issued here.
// @Tags         CaptainAuth
// @Accept       json
// @Produce      json
// @Param        captain  body  RegisterRequest  true  "Captain registration details"
// @Success      201  {object}  map[string]interface{} "Captain registered, returns profile with unique id"
// @Failure      400  {object}  map[string]string "Validation error or email/roll number already used"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /captain-auth/register [post]
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
	if !catalog.IsBloodGroup(req.BloodGroup) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown blood group: " + req.BloodGroup})
		return
	}

	if _, err := ctl.repo.GetByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Captain with this email already exists"})
		return
	}
	if _, err := ctl.repo.GetByRNumber(req.RNumber); !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Captain with this roll number already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	newCaptain := &Captain{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Password:   hashedPassword,
		RNumber:    req.RNumber,
		UniqueID:   utils.CaptainUniqueID(req.RNumber),
		Phone:      req.Phone,
		Department: req.Department,
		BloodGroup: req.BloodGroup,
		Status:     models.StatusPending,
	}

	if err := ctl.repo.Create(newCaptain); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Captain registration failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration received. Your account is awaiting approval.",
		"captain": FilterCaptainRecord(newCaptain),
	})
}

// @Summary      Captain login
// @Description  Authenticate with email, roll number or unique id plus password. Only approved/active accounts may log in.
// @Tags         CaptainAuth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  map[string]interface{} "Token and captain profile"
// @Failure      400  {object}  map[string]string "Invalid input"
// @Failure      401  {object}  map[string]string "Invalid credentials"
// @Failure      403  {object}  map[string]string "Account pending, rejected or inactive"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /captain-auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.Message(err)})
		return
	}

	found, err := ctl.repo.GetByIdentifier(req.Identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Same body as a wrong password so the two cases are
		// indistinguishable to the caller.
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
	signed, err := token.Generate(found.ID, found.Email, found.Department, token.RoleCaptain, ctl.config.JWT.Secret, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   signed,
		"captain": FilterCaptainRecord(found),
	})
}

// @Summary      Captain profile
// @Description  Profile of the currently authenticated captain.
// @Tags         CaptainAuth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Captain profile"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Captain not found"
// @Router       /captain-auth/profile [get]
func (ctl *Controller) Profile(c *gin.Context) {
	claims, err := middleware.CurrentPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	current, err := ctl.repo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Captain not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"captain": FilterCaptainRecord(current)})
}

// @Summary      List sports
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Fixed sport list"
// @Router       /captain-auth/sports [get]
func (ctl *Controller) Sports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sports": catalog.Sports})
}

// @Summary      List departments
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Fixed department list"
// @Router       /captain-auth/departments [get]
func (ctl *Controller) Departments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"departments": catalog.Departments})
}

// @Summary      List blood groups
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Fixed blood group list"
// @Router       /captain-auth/blood-groups [get]
func (ctl *Controller) BloodGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"blood_groups": catalog.BloodGroups})
}
