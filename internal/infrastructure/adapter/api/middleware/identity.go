package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/dto"
)

const (
	// HeaderUserID carries the authenticated user's numeric identifier.
	// Upstream auth infrastructure terminates the token and sets it.
	HeaderUserID = "X-User-ID"
	// HeaderUserRole carries the caller's role, set by the same upstream
	HeaderUserRole = "X-User-Role"

	// RoleStaff marks operators allowed on the admin surface
	RoleStaff = "staff"

	userIDKey   = "identity.userID"
	userRoleKey = "identity.role"
)

// Identity extracts the caller identity from headers and aborts requests
// that carry no usable user ID
func Identity(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			logger.Warn("Request with missing or invalid user header", map[string]any{
				"path":   c.Request.URL.Path,
				"header": raw,
			})
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
				Message: "Missing or invalid X-User-ID header",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userRoleKey, c.GetHeader(HeaderUserRole))
		c.Next()
	}
}

// RequireStaff aborts requests whose caller is not a staff operator
func RequireStaff(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != RoleStaff {
			logger.Warn("Non-staff access to admin surface rejected", map[string]any{
				"path":    c.Request.URL.Path,
				"user_id": CurrentUserID(c),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Staff role required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID set by Identity
func CurrentUserID(c *gin.Context) uint64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the caller role set by Identity
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(userRoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
