package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/middleware"
	"github.com/kaan/campora/internal/pkg/helpers"
)

// AssignmentController drives the program-course dual-pane screen.
type AssignmentController struct{}

// NewAssignmentController creates a new AssignmentController.
func NewAssignmentController() *AssignmentController {
	return &AssignmentController{}
}

// Select switches the assignment manager to the program in the route and
// loads the catalog plus the program's link list.
func (ctl *AssignmentController) Select(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	programID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if err := ws.Assignment.SelectProgram(c.Request.Context(), programID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondPanes(c, "", "")
}

// Panes returns both panes filtered by their independent queries.
func (ctl *AssignmentController) Panes(c *gin.Context) {
	ctl.respondPanes(c, c.Query("available_q"), c.Query("assigned_q"))
}

// Add links a course to the selected program and returns the refreshed
// panes.
func (ctl *AssignmentController) Add(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.AssignCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	if _, err := ws.Assignment.Add(c.Request.Context(), req.CourseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondPanes(c, "", "")
}

// Remove unlinks a course from the selected program and returns the
// refreshed panes.
func (ctl *AssignmentController) Remove(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	courseID, ok := helpers.ParseIDParam(c, "courseId")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if err := ws.Assignment.Remove(c.Request.Context(), courseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondPanes(c, "", "")
}

func (ctl *AssignmentController) respondPanes(c *gin.Context, availableQuery, assignedQuery string) {
	ws, _ := middleware.GetWorkspace(c)
	panes, err := ws.Assignment.Panes(availableQuery, assignedQuery)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(panes))
}
