package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/okravchuk/matoblik/internal/domain"
	"github.com/okravchuk/matoblik/internal/usecase"
)

var tracer = otel.Tracer("auth")

// SessionStore keeps the ephemeral token → identity bindings. Implementations
// must be safe for concurrent use of the same token.
type SessionStore interface {
	Create(ctx context.Context, token string, identityID uint, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (uint, error)
	Destroy(ctx context.Context, token string) error
}

type AuthService struct {
	identities *usecase.IdentityUsecase
	sessions   SessionStore
	ttl        time.Duration
}

func NewAuthService(
	identities *usecase.IdentityUsecase,
	sessions SessionStore,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		identities: identities,
		sessions:   sessions,
		ttl:        ttl,
	}
}

// Login verifies the credential and establishes a session. The error never
// discloses whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (domain.Session, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	identity, ok := s.identities.VerifyCredential(ctx, username, rawPassword)
	if !ok {
		span.RecordError(domain.ErrInvalidCredentials)
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Create(ctx, token, identity.ID, s.ttl); err != nil {
		span.RecordError(pkgerrors.Wrap(err, "session create failed"))
		return domain.Session{}, err
	}

	return domain.Session{
		Token:      token,
		IdentityID: identity.ID,
		ExpiresAt:  time.Now().UTC().Add(s.ttl),
	}, nil
}

// Logout destroys the session. Destroying an unknown or already-destroyed
// token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "Auth.Service.Logout")
	defer span.End()

	err := s.sessions.Destroy(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(pkgerrors.Wrap(err, "session destroy failed"))
		return err
	}
	return nil
}

// Current resolves the session token to its authenticated identity.
func (s *AuthService) Current(ctx context.Context, token string) (domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Current")
	defer span.End()

	if token == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	identityID, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		span.RecordError(pkgerrors.Wrap(err, "session lookup failed"))
		return domain.Identity{}, err
	}

	identity, err := s.identities.Get(ctx, identityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		span.RecordError(pkgerrors.Wrap(err, "identity lookup failed"))
		return domain.Identity{}, err
	}

	return identity, nil
}
