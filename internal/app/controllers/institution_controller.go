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

// InstitutionController handles the institution screens.
type InstitutionController struct{}

// NewInstitutionController creates a new InstitutionController.
func NewInstitutionController() *InstitutionController {
	return &InstitutionController{}
}

// List returns the institution list from the caller's store.
// @Summary List institutions
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param offset query int false "List offset"
// @Param limit query int false "Page size"
// @Param filter query string false "Server-side filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Institution}
// @Router /institutions [get]
func (ctl *InstitutionController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	params := helpers.GetListParams(c)
	items, err := ws.Institutions.Fetch(c.Request.Context(), upstream.ListParams(params))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds an institution and appends it to the store list.
func (ctl *InstitutionController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	created, err := ws.Institutions.Create(c.Request.Context(), models.Institution{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces an institution in place.
func (ctl *InstitutionController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	updated, err := ws.Institutions.Update(c.Request.Context(), id, models.Institution{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes an institution. Deleting cascades meaning to its
// faculties upstream; the gateway only relays the confirmation.
func (ctl *InstitutionController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if _, err := ws.Institutions.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Institution deleted"))
}
