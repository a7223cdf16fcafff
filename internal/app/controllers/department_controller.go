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

// DepartmentController handles the department screens.
type DepartmentController struct{}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController() *DepartmentController {
	return &DepartmentController{}
}

// List returns departments, optionally scoped to a faculty via the
// faculty_id query parameter. The unscoped rows carry the denormalized
// institution columns for the management table.
func (ctl *DepartmentController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	ws.Departments.SetParent(scopeQuery(c, "faculty_id"))
	items, err := ws.Departments.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// ListByFaculty returns the departments of the faculty named in the route.
func (ctl *DepartmentController) ListByFaculty(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	facultyID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	ws.Departments.SetParent(facultyID)
	items, err := ws.Departments.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds a department under the faculty named in the route.
func (ctl *DepartmentController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	facultyID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Departments.SetParent(facultyID)
	created, err := ws.Departments.Create(c.Request.Context(), models.Department{
		FacultyID:   facultyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces a department in place.
func (ctl *DepartmentController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Departments.SetParent(req.FacultyID)
	updated, err := ws.Departments.Update(c.Request.Context(), id, models.Department{
		ID:          id,
		FacultyID:   req.FacultyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes a department.
func (ctl *DepartmentController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if ws.Departments.Parent() == 0 {
		for _, d := range ws.Departments.Data() {
			if d.ID == id {
				ws.Departments.SetParent(d.FacultyID)
				break
			}
		}
	}
	if _, err := ws.Departments.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted"))
}
