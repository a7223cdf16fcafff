package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/middleware"
)

// PickerController exposes the cascading hierarchy picker used by the
// student and program forms.
type PickerController struct{}

// NewPickerController creates a new PickerController.
func NewPickerController() *PickerController {
	return &PickerController{}
}

// Load fetches the root level's candidates and resets the chain.
func (ctl *PickerController) Load(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	if err := ws.Hierarchy.Load(c.Request.Context()); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Picker loaded"))
}

// Query filters a level's loaded candidates. Loaded false in the
// response means the level is still disabled; loaded true with no
// options means "no results found".
func (ctl *PickerController) Query(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.PickerQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	options, loaded, err := ws.Hierarchy.SetQuery(req.Level, req.Query)
	if err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.PickerOptionsResponse{
		Level:   req.Level,
		Loaded:  loaded,
		Options: options,
	}))
}

// Select picks an option at a level; every downstream level is cleared
// and the next one reloads scoped to the selection.
func (ctl *PickerController) Select(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.PickerSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	if err := ws.Hierarchy.Select(c.Request.Context(), req.Level, req.ID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Selection applied"))
}

// Options returns a level's current matches.
func (ctl *PickerController) Options(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	level := c.Param("level")
	options, loaded := ws.Hierarchy.Options(level)
	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.PickerOptionsResponse{
		Level:   level,
		Loaded:  loaded,
		Options: options,
	}))
}

// Clear wipes a level's query and selection along with everything below.
func (ctl *PickerController) Clear(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	if err := ws.Hierarchy.Clear(c.Param("level")); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Level cleared"))
}
