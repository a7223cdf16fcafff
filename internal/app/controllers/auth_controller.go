package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/app/workspace"
	"github.com/kaan/campora/internal/middleware"
	"github.com/kaan/campora/internal/pkg/auth"
	"github.com/kaan/campora/internal/upstream"
)

// AuthController proxies login to the upstream and manages workspaces.
type AuthController struct {
	client   *upstream.Client
	registry *workspace.Registry
}

// NewAuthController creates a new AuthController.
func NewAuthController(client *upstream.Client, registry *workspace.Registry) *AuthController {
	return &AuthController{client: client, registry: registry}
}

// Login forwards credentials upstream and, on success, builds the
// caller's workspace with capabilities resolved from the role list.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	resp, err := ctl.client.Login(c.Request.Context(), upstream.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	ws := ctl.registry.Create(resp.Token, resp.User, resp.Roles)
	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{
		Token:        resp.Token,
		User:         ws.User,
		Capabilities: ws.Capabilities,
	}))
}

// Logout tears the caller's workspace down. The upstream token itself
// simply expires; there is nothing to revoke remotely.
func (ctl *AuthController) Logout(c *gin.Context) {
	token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err == nil {
		ctl.registry.Remove(token)
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Me returns the authenticated session view.
func (ctl *AuthController) Me(c *gin.Context) {
	ws, ok := middleware.GetWorkspace(c)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{
		Token:        ws.Token,
		User:         ws.User,
		Capabilities: ws.Capabilities,
	}))
}
