package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
	"github.com/nikmy/timekeeper/internal/repo"
	"github.com/nikmy/timekeeper/pkg/errors"
	"github.com/nikmy/timekeeper/pkg/logger"
)

func NewServer(
	cfg Config,
	log logger.Logger,
	authorizer authorizer,
	engine checker,
	client repo.Client,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: len(cfg.Proxy.Trusted) > 0,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(errorBody(fe.Message))
		}

		serveLog.Warn(errors.WrapFailf(err, "handle http request %s", getRequestID(c)))
		return c.Status(http.StatusInternalServerError).JSON(errorBody("internal error"))
	}

	s := &server{
		auth:   authorizer,
		engine: engine,
		client: client,
		http:   fiber.New(fiberCfg),
		addr:   cfg.HTTP.Addr,
		strict: cfg.StrictErrors,
		log:    serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	auth   authorizer
	engine checker
	client repo.Client
	http   *fiber.App
	addr   string
	strict bool
	log    logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	err = s.client.Close(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close repo"))
	}

	return errors.Join(errs)
}

func (s *server) setupRoutes() {
	api := s.http.Group("/api", requestID, s.authorize)

	anyone := s.requireRole(auth.RoleUser, auth.RoleAdmin)
	admin := s.requireRole(auth.RoleAdmin)

	api.Get("/availabilities", anyone, s.handleAvailabilities)

	api.Get("/users", anyone, s.handleListUsers)
	api.Post("/users", admin, s.handleUpsertUser)

	api.Get("/user-events", anyone, s.handleListEvents)
	api.Post("/user-events", anyone, s.handleCreateEvent)
	api.Delete("/user-events", admin, s.handleDeleteEvent)
}

func (s *server) handleAvailabilities(c *fiber.Ctx) error {
	start, end := c.Query("startDateTime"), c.Query("endDateTime")

	res, err := s.engine.CheckRaw(c.UserContext(), start, end)
	if err != nil {
		return s.sendAvailabilityError(c, err)
	}

	return c.Status(http.StatusOK).JSON(newAvailabilityResponse(res))
}

func (s *server) sendAvailabilityError(c *fiber.Ctx, err error) error {
	kind := availability.KindOf(err)

	if kind == availability.KindCollaboratorUnavailable {
		s.log.Error(errors.WrapFailf(err, "check availability for request %s", getRequestID(c)))
	} else {
		s.log.Debug(errors.WrapFailf(err, "check availability for request %s", getRequestID(c)))
	}

	if !s.strict {
		return s.sendError(c, http.StatusNotFound, "not found")
	}

	switch kind {
	case availability.KindInvalidTimeWindow:
		return s.sendError(c, http.StatusBadRequest, err.Error())
	case availability.KindCollaboratorUnavailable:
		return s.sendError(c, http.StatusServiceUnavailable, "storage unavailable")
	default:
		return err
	}
}

func (s *server) handleListUsers(c *fiber.Ctx) error {
	p, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}

	users, err := s.client.Users().ListByOrganization(c.UserContext(), p.OrganizationID)
	if err != nil {
		return errors.WrapFail(err, "list users")
	}

	return c.Status(http.StatusOK).JSON(newUserResponses(users))
}

func (s *server) handleUpsertUser(c *fiber.Ctx) error {
	p, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}

	var req userRequest
	err = c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal user payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	user := req.model(p.OrganizationID)
	err = user.Validate()
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	err = s.client.Users().Upsert(c.UserContext(), user)
	if err != nil {
		return errors.WrapFail(err, "upsert user")
	}

	return c.Status(http.StatusOK).JSON(map[string]string{"id": user.ID})
}

func (s *server) handleListEvents(c *fiber.Ctx) error {
	p, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}

	events, err := s.client.Events().ListByOrganization(c.UserContext(), p.OrganizationID)
	if err != nil {
		return errors.WrapFail(err, "list user events")
	}

	return c.Status(http.StatusOK).JSON(newEventResponses(events))
}

func (s *server) handleCreateEvent(c *fiber.Ctx) error {
	p, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}

	var req eventRequest
	err = c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal user event payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	event, err := req.model(p.OrganizationID)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	id, err := s.client.Events().Create(c.UserContext(), event)
	if err != nil {
		return errors.WrapFail(err, "create user event")
	}

	return c.Status(http.StatusCreated).JSON(map[string]string{"id": id})
}

func (s *server) handleDeleteEvent(c *fiber.Ctx) error {
	p, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}

	id, err := s.getIDOrErr(c)
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	deleted, err := s.client.Events().Delete(c.UserContext(), p.OrganizationID, id)
	if err != nil {
		return errors.WrapFail(err, "delete user event")
	}

	if !deleted {
		return s.sendError(c, http.StatusNotFound, "not found")
	}

	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody(msg))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"status": "ERROR", "message": msg}
}

func (s *server) getIDOrErr(c *fiber.Ctx) (string, error) {
	id := c.Query("id", "")
	if id == "" {
		return "", errors.Error("got empty \"id\" param")
	}

	return id, nil
}
