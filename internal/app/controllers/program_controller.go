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

// ProgramController handles the degree-program screens.
type ProgramController struct{}

// NewProgramController creates a new ProgramController.
func NewProgramController() *ProgramController {
	return &ProgramController{}
}

// List returns programs, optionally scoped to a department via the
// department_id query parameter.
func (ctl *ProgramController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	ws.Programs.SetParent(scopeQuery(c, "department_id"))
	items, err := ws.Programs.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// ListByDepartment returns the programs of the department named in the
// route.
func (ctl *ProgramController) ListByDepartment(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	departmentID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	ws.Programs.SetParent(departmentID)
	items, err := ws.Programs.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds a program under the department named in the route.
func (ctl *ProgramController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	departmentID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Programs.SetParent(departmentID)
	created, err := ws.Programs.Create(c.Request.Context(), models.Program{
		DepartmentID: departmentID,
		Title:        req.Title,
		Description:  req.Description,
		ProgramLevel: models.ProgramLevel(req.ProgramLevel),
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces a program in place.
func (ctl *ProgramController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Programs.SetParent(req.DepartmentID)
	updated, err := ws.Programs.Update(c.Request.Context(), id, models.Program{
		ID:           id,
		DepartmentID: req.DepartmentID,
		Title:        req.Title,
		Description:  req.Description,
		ProgramLevel: models.ProgramLevel(req.ProgramLevel),
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes a program.
func (ctl *ProgramController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if ws.Programs.Parent() == 0 {
		for _, p := range ws.Programs.Data() {
			if p.ID == id {
				ws.Programs.SetParent(p.DepartmentID)
				break
			}
		}
	}
	if _, err := ws.Programs.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Program deleted"))
}
