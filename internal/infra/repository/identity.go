package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/okravchuk/matoblik/internal/domain"
	"github.com/okravchuk/matoblik/internal/infra/database/models"
)

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) Create(ctx context.Context, identity domain.Identity) (domain.Identity, error) {
	model := models.Identity{
		Username: identity.Username,
		Name:     identity.Name,
		Surname:  identity.Surname,
		Password: identity.PasswordHash,
		Position: identity.Position,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Identity{}, domain.ErrDuplicateUsername
		}
		return domain.Identity{}, err
	}

	identity.ID = model.ID
	return identity, nil
}

func (r *IdentityRepository) GetByUsername(ctx context.Context, username string) (domain.Identity, error) {
	var model models.Identity
	err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, domain.NotFoundError{Resource: "identity"}
		}
		return domain.Identity{}, err
	}
	return toDomainIdentity(model), nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id uint) (domain.Identity, error) {
	var model models.Identity
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, domain.NotFoundError{Resource: "identity"}
		}
		return domain.Identity{}, err
	}
	return toDomainIdentity(model), nil
}

// UpdateProfile mutates name and surname only.
func (r *IdentityRepository) UpdateProfile(ctx context.Context, id uint, name, surname string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Identity{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "surname": surname})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "identity"}
	}
	return nil
}

func (r *IdentityRepository) List(ctx context.Context) ([]domain.Identity, error) {
	var rows []models.Identity
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	identities := make([]domain.Identity, 0, len(rows))
	for _, row := range rows {
		identities = append(identities, toDomainIdentity(row))
	}
	return identities, nil
}

func toDomainIdentity(model models.Identity) domain.Identity {
	return domain.Identity{
		ID:           model.ID,
		Username:     model.Username,
		Name:         model.Name,
		Surname:      model.Surname,
		PasswordHash: model.Password,
		Position:     model.Position,
	}
}
