package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okravchuk/matoblik/internal/domain"
	"github.com/okravchuk/matoblik/internal/export"
	"github.com/okravchuk/matoblik/internal/present/rest/middleware"
	"github.com/okravchuk/matoblik/internal/service"
	"github.com/okravchuk/matoblik/internal/usecase"
)

type Handler struct {
	identity *usecase.IdentityUsecase
	ledger   *usecase.LedgerUsecase
	auth     *service.AuthService
}

func NewHandler(
	identity *usecase.IdentityUsecase,
	ledger *usecase.LedgerUsecase,
	auth *service.AuthService,
) *Handler {
	return &Handler{
		identity: identity,
		ledger:   ledger,
		auth:     auth,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	e.GET("/api/v1/positions", h.handlePositions)
	e.POST("/api/v1/register", h.handleRegister)
	e.POST("/api/v1/login", h.handleLogin)
	e.POST("/api/v1/logout", h.handleLogout)

	protected := e.Group("/api/v1", auth.RequireIdentity)
	protected.GET("/profile", h.handleProfile)
	protected.PUT("/profile", h.handleUpdateProfile)
	protected.GET("/users", h.handleUsers)
	protected.POST("/operations", h.handleRecordOperation)
	protected.GET("/operations", h.handleListOperations)
	protected.GET("/export", h.handleExport)
}

func (h *Handler) handlePositions(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"positions": domain.Positions()})
}

type registerRequest struct {
	Username string `json:"username" form:"username"`
	Name     string `json:"name" form:"name"`
	Surname  string `json:"surname" form:"surname"`
	Password string `json:"password" form:"password"`
	Position string `json:"position" form:"position"`
}

func (h *Handler) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	identity, err := h.identity.Register(ctx, usecase.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Surname:  req.Surname,
		Password: req.Password,
		Position: req.Position,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrMissingField), errors.Is(err, domain.ErrInvalidPosition):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "id": identity.ID})
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	session, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
	})
}

func (h *Handler) handleLogout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.auth.Logout(ctx, middleware.Token(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) handleProfile(c echo.Context) error {
	identity, ok := requester(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	return c.JSON(http.StatusOK, identity)
}

type updateProfileRequest struct {
	Name    string `json:"name" form:"name"`
	Surname string `json:"surname" form:"surname"`
}

func (h *Handler) handleUpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requester(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.identity.UpdateProfile(ctx, identity.ID, req.Name, req.Surname); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) handleUsers(c echo.Context) error {
	ctx := c.Request().Context()

	identities, err := h.identity.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": identities})
}

type recordOperationRequest struct {
	Subject  string      `json:"subject" form:"subject"`
	Quantity json.Number `json:"quantity" form:"quantity"`
	Sender   string      `json:"sender" form:"sender"`
	Receiver string      `json:"receiver" form:"receiver"`
	Action   string      `json:"action" form:"action"`
}

func (h *Handler) handleRecordOperation(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requester(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	var req recordOperationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	op, err := h.ledger.Record(ctx, identity, usecase.RecordInput{
		Subject:  req.Subject,
		Quantity: quantity,
		Sender:   req.Sender,
		Receiver: req.Receiver,
		Action:   req.Action,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrMissingField):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": fmt.Sprintf("material operation (%s) recorded successfully", op.Action),
		"record":  op,
	})
}

func (h *Handler) handleListOperations(c echo.Context) error {
	ctx := c.Request().Context()

	operations, err := h.ledger.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"operations": operations})
}

func (h *Handler) handleExport(c echo.Context) error {
	ctx := c.Request().Context()

	operations, err := h.ledger.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	data, err := export.Operations(operations)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, data)
}

// requester returns the identity the auth middleware resolved for this
// request.
func requester(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Request().Context().Value(domain.RequesterIdentityKey).(domain.Identity)
	return identity, ok
}

// parseQuantity rejects anything that is not a positive integer, including
// fractional or non-numeric form values.
func parseQuantity(raw json.Number) (int, error) {
	if raw.String() == "" {
		return 0, domain.MissingFieldError{Field: "quantity"}
	}
	quantity, err := raw.Int64()
	if err != nil || quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	return int(quantity), nil
}
