package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/okravchuk/matoblik/internal/domain"
	"github.com/okravchuk/matoblik/internal/service"
)

var tracer = otel.Tracer("auth")

// SessionCookie is the cookie carrying the session token for browser clients.
// API clients may instead send "Authorization: Bearer <token>".
const SessionCookie = "session"

// LoginPath is where unauthenticated requests are pointed to.
const LoginPath = "/api/v1/login"

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Token extracts the session token from the Authorization header or the
// session cookie. Empty when the request carries neither.
func Token(c echo.Context) string {
	authHeader := c.Request().Header.Get("authorization")
	if authHeader != "" {
		split := strings.Split(authHeader, " ")
		if len(split) == 2 && split[0] == "Bearer" {
			return split[1]
		}
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

// RequireIdentity guards protected routes. It resolves the session token to
// an identity and stores both on the request context; requests without a
// live session are rejected and pointed at the login entry point.
func (m *AuthMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireIdentity")
		defer span.End()

		token := Token(c)

		identity, err := m.auth.Current(ctx, token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "unauthenticated",
					"login": LoginPath,
				})
			}
			span.RecordError(pkgerrors.Wrap(err, "AuthMiddleware.RequireIdentity: auth.Current failed"))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, identity.ID)
		ctx = context.WithValue(ctx, domain.SessionTokenCtxKey, token)
		ctx = context.WithValue(ctx, domain.RequesterIdentityKey, identity)
		span.SetAttributes(attribute.String("RequesterUsername", identity.Username))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
