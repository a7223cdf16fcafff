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

// UserController handles account and role management. Role rows are
// proxied straight through to the upstream; a role change only takes
// effect on the target user's next login, when their capabilities are
// re-resolved.
type UserController struct {
	client *upstream.Client
}

// NewUserController creates a new UserController.
func NewUserController(client *upstream.Client) *UserController {
	return &UserController{client: client}
}

// List returns platform accounts.
func (ctl *UserController) List(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	items, err := ws.Users.Fetch(c.Request.Context(), upstream.ListParams(helpers.GetListParams(c)))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Create adds a platform account.
func (ctl *UserController) Create(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	created, err := ws.Users.Create(c.Request.Context(), models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces an account in place.
func (ctl *UserController) Update(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	updated, err := ws.Users.Update(c.Request.Context(), id, models.User{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes an account.
func (ctl *UserController) Delete(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if _, err := ws.Users.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("User deleted"))
}

// ListRoles returns the role rows attached to an account.
func (ctl *UserController) ListRoles(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	roles, err := ctl.client.ListUserRoles(c.Request.Context(), ws.Token, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(roles))
}

// AssignRole attaches a role to an account.
func (ctl *UserController) AssignRole(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	role, err := ctl.client.AssignRole(c.Request.Context(), ws.Token, models.UserRole{
		UserID: id,
		Role:   models.Role(req.Role),
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(role))
}

// RevokeRole detaches a role row from an account.
func (ctl *UserController) RevokeRole(c *gin.Context) {
	ws, _ := middleware.GetWorkspace(c)
	userID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	roleID, ok := helpers.ParseIDParam(c, "roleId")
	if !ok {
		middleware.HandleBindingError(c, errInvalidID)
		return
	}
	if err := ctl.client.RevokeRole(c.Request.Context(), ws.Token, userID, roleID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Role revoked"))
}
