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

// FacultyController handles the faculty screens. Faculties live under an
// institution; list and create are scoped by the institution route, the
// management list falls back to all faculties when no scope is given.
type FacultyController struct{}

// NewFacultyController creates a new FacultyController.
func NewFacultyController() *FacultyController {
	return &FacultyController{}
}

// List returns faculties for the current scope. An institution_id query
// parameter narrows the store to that institution; without it the store
// serves the unscoped list.
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param institution_id query int false "Institution scope"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculties [get]
func (ctl *FacultyController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	ws.Faculties.SetParent(scopeQuery(c, "institution_id"))
	items, err := ws.Faculties.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// ListByInstitution returns the faculties of the institution named in the
// route.
func (ctl *FacultyController) ListByInstitution(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	institutionID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	ws.Faculties.SetParent(institutionID)
	items, err := ws.Faculties.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds a faculty under the institution named in the route.
func (ctl *FacultyController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	institutionID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Faculties.SetParent(institutionID)
	created, err := ws.Faculties.Create(c.Request.Context(), models.Faculty{
		InstitutionID: institutionID,
		Name:          req.Name,
		Description:   req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces a faculty in place.
func (ctl *FacultyController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	ws.Faculties.SetParent(req.InstitutionID)
	updated, err := ws.Faculties.Update(c.Request.Context(), id, models.Faculty{
		ID:            id,
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		Description:   req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes a faculty.
func (ctl *FacultyController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	current := ws.Faculties.Parent()
	if current == 0 {
		// Deleting from the unscoped management list: resolve the row's
		// institution so the scoped store accepts the mutation.
		for _, f := range ws.Faculties.Data() {
			if f.ID == id {
				current = f.InstitutionID
				break
			}
		}
		ws.Faculties.SetParent(current)
	}
	if _, err := ws.Faculties.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Faculty deleted"))
}

// scopeQuery reads an optional positive-integer scope id from the query.
func scopeQuery(c *gin.Context, name string) int64 {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	id, err := parsePositive(v)
	if err != nil {
		return 0
	}
	return id
}
