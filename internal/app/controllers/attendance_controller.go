package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/attendance"
	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/app/workspace"
	"github.com/kaan/campora/internal/export"
	"github.com/kaan/campora/internal/middleware"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/pkg/helpers"
)

// AttendanceController runs the per-class attendance workflow: load the
// roster, mark students in memory, submit once, export the sheet.
type AttendanceController struct {
	exportDir string
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(exportDir string) *AttendanceController {
	return &AttendanceController{exportDir: exportDir}
}

func (ctl *AttendanceController) session(c *gin.Context) (*workspace.Workspace, int64, bool) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return nil, 0, false
	}
	return ws, id, true
}

// Load fetches the class, its roster, and any existing marks, and
// establishes whether the upstream already holds attendance.
func (ctl *AttendanceController) Load(c *gin.Context) {
	ws, id, ok := ctl.session(c)
	if !ok {
		return
	}
	session := ws.AttendanceSession(id)
	if err := session.Load(c.Request.Context()); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondState(c, id)
}

// State returns the loaded session view.
func (ctl *AttendanceController) State(c *gin.Context) {
	_, id, ok := ctl.session(c)
	if !ok {
		return
	}
	ctl.respondState(c, id)
}

// Mark sets one student's status in the loaded session. No network call
// happens until submit.
func (ctl *AttendanceController) Mark(c *gin.Context) {
	ws, id, ok := ctl.session(c)
	if !ok {
		return
	}
	var req dto.MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	status, valid := models.ParseAttendanceStatus(req.Status)
	if !valid {
		middleware.HandleAPIError(c, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, req.Status))
		return
	}
	if err := ws.AttendanceSession(id).Mark(req.StudentID, status); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondState(c, id)
}

// MarkAll overwrites the whole roster with one status.
func (ctl *AttendanceController) MarkAll(c *gin.Context) {
	ws, id, ok := ctl.session(c)
	if !ok {
		return
	}
	var req dto.MarkAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	status, valid := models.ParseAttendanceStatus(req.Status)
	if !valid {
		middleware.HandleAPIError(c, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, req.Status))
		return
	}
	if err := ws.AttendanceSession(id).MarkAll(status); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondState(c, id)
}

// Submit sends the marks upstream along the branch the record state
// dictates.
func (ctl *AttendanceController) Submit(c *gin.Context) {
	ws, id, ok := ctl.session(c)
	if !ok {
		return
	}
	if err := ws.AttendanceSession(id).Submit(c.Request.Context()); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	ctl.respondState(c, id)
}

// Sheet renders the attendance workbook for a loaded session and sends
// it as a download.
func (ctl *AttendanceController) Sheet(c *gin.Context) {
	ws, id, ok := ctl.session(c)
	if !ok {
		return
	}
	session := ws.AttendanceSession(id)
	if session.State() == attendance.RecordUnknown {
		middleware.HandleAPIError(c, apperrors.ErrAttendanceNotLoaded)
		return
	}

	workbook, err := export.AttendanceWorkbook(session.Class(), session.Rows(), session.Counts())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	path, err := export.SaveTemp(workbook, ctl.exportDir, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.FileAttachment(path, fmt.Sprintf("attendance_%d.xlsx", id))
}

func (ctl *AttendanceController) respondState(c *gin.Context, classID int64) {
	ws, _ := middleware.GetWorkspace(c)
	session := ws.AttendanceSession(classID)
	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.AttendanceStateResponse{
		ClassID:       classID,
		RecordState:   session.State().String(),
		HasAttendance: session.HasAttendance(),
		Rows:          session.Rows(),
		Counts:        session.Counts(),
	}))
}
