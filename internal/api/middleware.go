package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nikmy/timekeeper/internal/auth"
)

const (
	headerRequestID = "X-Request-Id"
	localRequestID  = "requestId"
)

func requestID(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	c.Locals(localRequestID, id)
	c.Set(headerRequestID, id)

	return c.Next()
}

func getRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}

func (s *server) authorize(c *fiber.Ctx) error {
	p, ok := s.auth.Authorize(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return s.sendError(c, http.StatusUnauthorized, "unauthorized")
	}

	c.SetUserContext(auth.WithPrincipal(c.UserContext(), p))
	return c.Next()
}

func (s *server) requireRole(roles ...auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.FromContext(c.UserContext())
		if err != nil || !p.HasAnyRole(roles...) {
			return s.sendError(c, http.StatusForbidden, "forbidden")
		}

		return c.Next()
	}
}
