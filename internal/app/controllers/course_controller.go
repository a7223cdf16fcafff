package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/middleware"
	"github.com/kaan/campora/internal/pkg/helpers"
	"github.com/kaan/campora/internal/upstream"
)

// CourseController handles the course catalog screens. The catalog is
// flat; programs reference courses through link rows, never by owning
// them.
type CourseController struct{}

// NewCourseController creates a new CourseController.
func NewCourseController() *CourseController {
	return &CourseController{}
}

// List returns the course catalog.
func (ctl *CourseController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	items, err := ws.Courses.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds a catalog course.
func (ctl *CourseController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	created, err := ws.Courses.Create(c.Request.Context(), models.Course{
		Name:        req.Name,
		CourseCode:  req.CourseCode,
		Description: req.Description,
		CreditHours: req.CreditHours,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces a catalog course in place.
func (ctl *CourseController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	updated, err := ws.Courses.Update(c.Request.Context(), id, models.Course{
		ID:          id,
		Name:        req.Name,
		CourseCode:  req.CourseCode,
		Description: req.Description,
		CreditHours: req.CreditHours,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes a catalog course.
func (ctl *CourseController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if _, err := ws.Courses.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted"))
}
