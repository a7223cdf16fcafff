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

// StudentController handles the student record screens.
type StudentController struct{}

// NewStudentController creates a new StudentController.
func NewStudentController() *StudentController {
	return &StudentController{}
}

// List returns students, optionally scoped to a department via the
// department_id query parameter.
func (ctl *StudentController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	ws.Students.SetParent(scopeQuery(c, "department_id"))
	items, err := ws.Students.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds a student record. The department comes from the body
// rather than the route because the student form carries its own
// department select.
func (ctl *StudentController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Students.SetParent(req.DepartmentID)
	created, err := ws.Students.Create(c.Request.Context(), models.Student{
		StudentID:      req.StudentID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		DepartmentID:   req.DepartmentID,
		Status:         models.StudentStatus(req.Status),
		EnrollmentDate: req.EnrollmentDate,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces a student record in place.
func (ctl *StudentController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Students.SetParent(req.DepartmentID)
	updated, err := ws.Students.Update(c.Request.Context(), id, models.Student{
		ID:             id,
		StudentID:      req.StudentID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		DepartmentID:   req.DepartmentID,
		Status:         models.StudentStatus(req.Status),
		EnrollmentDate: req.EnrollmentDate,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes a student record.
func (ctl *StudentController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if ws.Students.Parent() == 0 {
		for _, s := range ws.Students.Data() {
			if s.ID == id {
				ws.Students.SetParent(s.DepartmentID)
				break
			}
		}
	}
	if _, err := ws.Students.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted"))
}
