package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/response"
)

// RoleMiddleware loads the authenticated user's profile and evaluates it
// against a required role set. Runs after AuthMiddleware.Authenticate.
type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

func (m *RoleMiddleware) Require(required ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok || uid == "" {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, "NOT_FOUND") {
					return response.Error(c, errors.NotFound("User profile", nil))
				}
				return response.Error(c, err)
			}

			if !user.Role.In(required...) {
				return response.Error(c, errors.Forbidden("Requires one of roles: "+joinRoles(required), nil))
			}

			c.Set("role", user.Role)
			c.Set("user", user)

			return next(c)
		}
	}
}

func joinRoles(roles []entity.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
