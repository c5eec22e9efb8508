package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/okravchuk/matoblik/internal/domain"
)

// IdentityRepository defines persistence/lookup for identities.
type IdentityRepository interface {
	Create(ctx context.Context, identity domain.Identity) (domain.Identity, error)
	GetByUsername(ctx context.Context, username string) (domain.Identity, error)
	GetByID(ctx context.Context, id uint) (domain.Identity, error)
	UpdateProfile(ctx context.Context, id uint, name, surname string) error
	List(ctx context.Context) ([]domain.Identity, error)
}

// RegisterInput is the validated input for creating an identity.
type RegisterInput struct {
	Username string
	Name     string
	Surname  string
	Password string
	Position string
}

type IdentityUsecase struct {
	repo IdentityRepository
}

func NewIdentityUsecase(repo IdentityRepository) *IdentityUsecase {
	return &IdentityUsecase{repo: repo}
}

// Register hashes the raw password and persists a new identity. The raw
// password never reaches the repository.
func (uc *IdentityUsecase) Register(ctx context.Context, input RegisterInput) (domain.Identity, error) {
	required := map[string]string{
		"username": input.Username,
		"name":     input.Name,
		"surname":  input.Surname,
		"password": input.Password,
		"position": input.Position,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return domain.Identity{}, domain.MissingFieldError{Field: field}
		}
	}

	if !domain.IsValidPosition(input.Position) {
		return domain.Identity{}, domain.ErrInvalidPosition
	}

	_, err := uc.repo.GetByUsername(ctx, input.Username)
	if err == nil {
		return domain.Identity{}, domain.ErrDuplicateUsername
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Identity{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Identity{}, err
	}

	identity := domain.Identity{
		Username:     input.Username,
		Name:         input.Name,
		Surname:      input.Surname,
		PasswordHash: string(hash),
		Position:     input.Position,
	}

	return uc.repo.Create(ctx, identity)
}

func (uc *IdentityUsecase) FindByUsername(ctx context.Context, username string) (domain.Identity, error) {
	return uc.repo.GetByUsername(ctx, username)
}

func (uc *IdentityUsecase) Get(ctx context.Context, id uint) (domain.Identity, error) {
	return uc.repo.GetByID(ctx, id)
}

// UpdateProfile mutates name and surname only. Username, password and
// position are untouchable through this path.
func (uc *IdentityUsecase) UpdateProfile(ctx context.Context, id uint, name, surname string) error {
	if strings.TrimSpace(name) == "" {
		return domain.MissingFieldError{Field: "name"}
	}
	if strings.TrimSpace(surname) == "" {
		return domain.MissingFieldError{Field: "surname"}
	}
	return uc.repo.UpdateProfile(ctx, id, name, surname)
}

// VerifyCredential compares the raw password against the stored hash. The
// returned identity is only valid when ok is true.
func (uc *IdentityUsecase) VerifyCredential(ctx context.Context, username, rawPassword string) (domain.Identity, bool) {
	identity, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Identity{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(rawPassword)) != nil {
		return domain.Identity{}, false
	}
	return identity, true
}

func (uc *IdentityUsecase) List(ctx context.Context) ([]domain.Identity, error) {
	return uc.repo.List(ctx)
}
