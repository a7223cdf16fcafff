package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/attendance"
	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/middleware"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/pkg/helpers"
	"github.com/kaan/campora/internal/upstream"
)

// ClassController handles class session scheduling: single-date classes
// and recurring series from a weekday time matrix.
type ClassController struct {
	client *upstream.Client
}

// NewClassController creates a new ClassController.
func NewClassController(client *upstream.Client) *ClassController {
	return &ClassController{client: client}
}

// classResponse carries the created/updated class plus the duration
// label shown next to the single-date time fields.
type classResponse struct {
	Class    interface{} `json:"class"`
	Duration string      `json:"duration,omitempty"`
}

// Get returns one class session.
func (ctl *ClassController) Get(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	class, err := ctl.client.GetClass(c.Request.Context(), ws.Token, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(class))
}

// TeacherCourses returns the courses the authenticated teacher runs,
// used to populate the class form's course select.
func (ctl *ClassController) TeacherCourses(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	courses, err := ctl.client.GetTeacherCourses(c.Request.Context(), ws.Token, ws.User.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// Create schedules a class, single or recurring depending on the form.
func (ctl *ClassController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	form, duration, err := ctl.bindForm(c)
	if err != nil {
		return // response already written
	}
	req, err := form.BuildRequest()
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	class, err := ctl.client.CreateClass(c.Request.Context(), ws.Token, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(classResponse{Class: class, Duration: duration}))
}

// Update reschedules a class in place.
func (ctl *ClassController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	form, duration, err := ctl.bindForm(c)
	if err != nil {
		return
	}
	req, err := form.BuildRequest()
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	class, err := ctl.client.UpdateClass(c.Request.Context(), ws.Token, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(classResponse{Class: class, Duration: duration}))
}

// Delete removes a class session and drops any open attendance workflow
// for it.
func (ctl *ClassController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if err := ctl.client.DeleteClass(c.Request.Context(), ws.Token, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ws.DropAttendanceSession(id)
	c.JSON(http.StatusOK, dto.NewMessageResponse("Class deleted"))
}

// Preview validates the form without submitting and returns the duration
// label for the single-date time pair.
func (ctl *ClassController) Preview(c *gin.Context) {
	form, duration, err := ctl.bindForm(c)
	if err != nil {
		return
	}
	if err := form.Validate(); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(classResponse{Duration: duration}))
}

// bindForm translates the request body into the schedule form. On a
// binding failure the error response has already been written.
func (ctl *ClassController) bindForm(c *gin.Context) (*attendance.ScheduleForm, string, error) {
	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return nil, "", err
	}

	form := attendance.NewScheduleForm()
	form.CourseID = req.CourseID
	form.CourseSectionID = req.CourseSectionID
	form.Room = req.Room
	form.Topic = req.Topic
	form.AttendanceType = req.AttendanceType

	if req.Recurring {
		form.SetMode(attendance.ModeRecurring)
		form.RangeFrom = req.RangeFrom
		form.RangeTo = req.RangeTo
		for name, times := range req.Days {
			day, ok := attendance.WeekdayFromName(name)
			if !ok {
				err := fmt.Errorf("%w: unknown weekday %q", apperrors.ErrValidationFailed, name)
				middleware.HandleAPIError(c, err)
				return nil, "", err
			}
			form.SetDay(day, attendance.DayTimes{Start: times.StartTime, End: times.EndTime})
		}
	} else {
		form.ClassDate = req.ClassDate
		form.StartTime = req.StartTime
		form.EndTime = req.EndTime
	}
	return form, form.DurationLabel(), nil
}
