package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/app/workspace"
	"github.com/kaan/campora/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextWorkspace = "workspace"
	ContextClaims    = "claims"
)

// AuthMiddleware validates bearer tokens and resolves the caller's
// workspace. Authorization is capability-based: handlers never inspect
// role strings, only the flags resolved at login.
type AuthMiddleware struct {
	parser   *auth.TokenParser
	registry *workspace.Registry
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(parser *auth.TokenParser, registry *workspace.Registry) *AuthMiddleware {
	return &AuthMiddleware{parser: parser, registry: registry}
}

// Auth validates the bearer token and attaches the workspace and claims
// to the request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").WithDetails("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		claims, err := m.parser.Parse(token)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
			}
			detail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		ws, err := m.registry.Get(token)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found, log in again")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextWorkspace, ws)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// capability gate, shared by the Require* middlewares
func (m *AuthMiddleware) require(check func(models.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, ok := GetWorkspace(c)
		if !ok || !check(ws.Capabilities) {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}
		c.Next()
	}
}

// RequireEntityAdmin gates hierarchy mutations.
func (m *AuthMiddleware) RequireEntityAdmin() gin.HandlerFunc {
	return m.require(models.Capabilities.CanManageEntities)
}

// RequireAttendance gates the attendance workflow.
func (m *AuthMiddleware) RequireAttendance() gin.HandlerFunc {
	return m.require(models.Capabilities.CanTakeAttendance)
}

// RequireUserAdmin gates account and role management.
func (m *AuthMiddleware) RequireUserAdmin() gin.HandlerFunc {
	return m.require(models.Capabilities.CanManageUsers)
}

// GetWorkspace pulls the resolved workspace off the request context.
func GetWorkspace(c *gin.Context) (*workspace.Workspace, bool) {
	value, exists := c.Get(ContextWorkspace)
	if !exists {
		return nil, false
	}
	ws, ok := value.(*workspace.Workspace)
	return ws, ok
}
