package content

import (
	"net/http"
	"strconv"

	"github.com/apexarena/backend/internal/catalog"
	"github.com/apexarena/backend/pkg/responses"
	"github.com/apexarena/backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	repo Repository
}

func NewController(repo Repository) *Controller {
	return &Controller{repo: repo}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// @Summary      List announcements
// @Tags         Content
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Announcements, newest first"
// @Router       /announcements [get]
func (ctl *Controller) ListAnnouncements(c *gin.Context) {
	items, err := ctl.repo.ListAnnouncements()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list announcements: "+err.Error())
		return
	}
	responses.OK(c, "", "announcements", items)
}

// @Summary      Create an announcement
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        announcement  body  AnnouncementRequest  true  "Announcement"
// @Success      201  {object}  map[string]interface{} "Created announcement"
// @Failure      400  {object}  map[string]string "Validation error"
// @Router       /announcements [post]
func (ctl *Controller) CreateAnnouncement(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	a := &Announcement{Title: req.Title, Body: req.Body}
	if err := ctl.repo.CreateAnnouncement(a); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to create announcement: "+err.Error())
		return
	}
	responses.Created(c, "Announcement published", "announcement", a)
}

// @Summary      Update an announcement
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id            path  int                  true  "Announcement ID"
// @Param        announcement  body  AnnouncementRequest  true  "Announcement"
// @Success      200  {object}  map[string]string "Announcement updated"
// @Failure      404  {object}  map[string]string "Announcement not found"
// @Router       /announcements/{id} [put]
func (ctl *Controller) UpdateAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	rows, err := ctl.repo.UpdateAnnouncement(id, &Announcement{Title: req.Title, Body: req.Body})
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to update announcement: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Announcement")
		return
	}
	responses.OK(c, "Announcement updated", "", nil)
}

// @Summary      Delete an announcement
// @Tags         Content
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Announcement ID"
// @Success      200  {object}  map[string]string "Announcement deleted"
// @Failure      404  {object}  map[string]string "Announcement not found"
// @Router       /announcements/{id} [delete]
func (ctl *Controller) DeleteAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := ctl.repo.DeleteAnnouncement(id)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to delete announcement: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Announcement")
		return
	}
	responses.OK(c, "Announcement deleted", "", nil)
}

// @Summary      List gallery items
// @Tags         Content
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Gallery items, newest first"
// @Router       /gallery [get]
func (ctl *Controller) ListGallery(c *gin.Context) {
	items, err := ctl.repo.ListGalleryItems()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list gallery: "+err.Error())
		return
	}
	responses.OK(c, "", "gallery", items)
}

// @Summary      Add a gallery item
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        item  body  GalleryItemRequest  true  "Gallery item"
// @Success      201  {object}  map[string]interface{} "Created gallery item"
// @Failure      400  {object}  map[string]string "Validation error"
// @Router       /gallery [post]
func (ctl *Controller) CreateGalleryItem(c *gin.Context) {
	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	g := &GalleryItem{Title: req.Title, ImageURL: req.ImageURL, Caption: req.Caption}
	if err := ctl.repo.CreateGalleryItem(g); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to add gallery item: "+err.Error())
		return
	}
	responses.Created(c, "Gallery item added", "item", g)
}

// @Summary      Update a gallery item
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Gallery item ID"
// @Param        item  body  GalleryItemRequest  true  "Gallery item"
// @Success      200  {object}  map[string]string "Gallery item updated"
// @Failure      404  {object}  map[string]string "Gallery item not found"
// @Router       /gallery/{id} [put]
func (ctl *Controller) UpdateGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	rows, err := ctl.repo.UpdateGalleryItem(id, &GalleryItem{Title: req.Title, ImageURL: req.ImageURL, Caption: req.Caption})
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to update gallery item: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Gallery item")
		return
	}
	responses.OK(c, "Gallery item updated", "", nil)
}

// @Summary      Delete a gallery item
// @Tags         Content
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Gallery item ID"
// @Success      200  {object}  map[string]string "Gallery item deleted"
// @Failure      404  {object}  map[string]string "Gallery item not found"
// @Router       /gallery/{id} [delete]
func (ctl *Controller) DeleteGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := ctl.repo.DeleteGalleryItem(id)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to delete gallery item: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Gallery item")
		return
	}
	responses.OK(c, "Gallery item deleted", "", nil)
}

// @Summary      List schedule entries
// @Tags         Content
// @Produce      json
// @Param        sport  query  string  false  "Sport filter"
// @Success      200  {object}  map[string]interface{} "Schedules, soonest first"
// @Router       /schedules [get]
func (ctl *Controller) ListSchedules(c *gin.Context) {
	items, err := ctl.repo.ListSchedules(c.Query("sport"))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list schedules: "+err.Error())
		return
	}
	responses.OK(c, "", "schedules", items)
}

// @Summary      Create a schedule entry
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        schedule  body  ScheduleRequest  true  "Schedule entry"
// @Success      201  {object}  map[string]interface{} "Created schedule entry"
// @Failure      400  {object}  map[string]string "Validation error or unknown sport"
// @Router       /schedules [post]
func (ctl *Controller) CreateSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}
	if req.Sport != "" && !catalog.IsSport(req.Sport) {
		responses.Error(c, http.StatusBadRequest, "Unknown sport: "+req.Sport)
		return
	}

	s := &Schedule{
		Title:       req.Title,
		Sport:       req.Sport,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
	}
	if err := ctl.repo.CreateSchedule(s); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to create schedule: "+err.Error())
		return
	}
	responses.Created(c, "Schedule entry created", "schedule", s)
}

// @Summary      Update a schedule entry
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id        path  int              true  "Schedule ID"
// @Param        schedule  body  ScheduleRequest  true  "Schedule entry"
// @Success      200  {object}  map[string]string "Schedule updated"
// @Failure      404  {object}  map[string]string "Schedule not found"
// @Router       /schedules/{id} [put]
func (ctl *Controller) UpdateSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}
	if req.Sport != "" && !catalog.IsSport(req.Sport) {
		responses.Error(c, http.StatusBadRequest, "Unknown sport: "+req.Sport)
		return
	}

	rows, err := ctl.repo.UpdateSchedule(id, &Schedule{
		Title:       req.Title,
		Sport:       req.Sport,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to update schedule: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Schedule")
		return
	}
	responses.OK(c, "Schedule updated", "", nil)
}

// @Summary      Delete a schedule entry
// @Tags         Content
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Schedule ID"
// @Success      200  {object}  map[string]string "Schedule deleted"
// @Failure      404  {object}  map[string]string "Schedule not found"
// @Router       /schedules/{id} [delete]
func (ctl *Controller) DeleteSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := ctl.repo.DeleteSchedule(id)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to delete schedule: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Schedule")
		return
	}
	responses.OK(c, "Schedule deleted", "", nil)
}

// @Summary      List rules
// @Tags         Content
// @Produce      json
// @Param        sport  query  string  false  "Sport filter"
// @Success      200  {object}  map[string]interface{} "Rules grouped by sport"
// @Router       /rules [get]
func (ctl *Controller) ListRules(c *gin.Context) {
	items, err := ctl.repo.ListRules(c.Query("sport"))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list rules: "+err.Error())
		return
	}
	responses.OK(c, "", "rules", items)
}

// @Summary      Create a rule
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        rule  body  RuleRequest  true  "Rule"
// @Success      201  {object}  map[string]interface{} "Created rule"
// @Failure      400  {object}  map[string]string "Validation error or unknown sport"
// @Router       /rules [post]
func (ctl *Controller) CreateRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}
	if !catalog.IsSport(req.Sport) {
		responses.Error(c, http.StatusBadRequest, "Unknown sport: "+req.Sport)
		return
	}

	r := &Rule{Sport: req.Sport, Title: req.Title, Content: req.Content}
	if err := ctl.repo.CreateRule(r); err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to create rule: "+err.Error())
		return
	}
	responses.Created(c, "Rule created", "rule", r)
}

// @Summary      Update a rule
// @Tags         Content
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Rule ID"
// @Param        rule  body  RuleRequest  true  "Rule"
// @Success      200  {object}  map[string]string "Rule updated"
// @Failure      404  {object}  map[string]string "Rule not found"
// @Router       /rules/{id} [put]
func (ctl *Controller) UpdateRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, validator.Message(err))
		return
	}
	if !catalog.IsSport(req.Sport) {
		responses.Error(c, http.StatusBadRequest, "Unknown sport: "+req.Sport)
		return
	}

	rows, err := ctl.repo.UpdateRule(id, &Rule{Sport: req.Sport, Title: req.Title, Content: req.Content})
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to update rule: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Rule")
		return
	}
	responses.OK(c, "Rule updated", "", nil)
}

// @Summary      Delete a rule
// @Tags         Content
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Rule ID"
// @Success      200  {object}  map[string]string "Rule deleted"
// @Failure      404  {object}  map[string]string "Rule not found"
// @Router       /rules/{id} [delete]
func (ctl *Controller) DeleteRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := ctl.repo.DeleteRule(id)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to delete rule: "+err.Error())
		return
	}
	if rows == 0 {
		responses.NotFound(c, "Rule")
		return
	}
	responses.OK(c, "Rule deleted", "", nil)
}
