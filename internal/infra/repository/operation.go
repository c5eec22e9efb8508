package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/okravchuk/matoblik/internal/domain"
	"github.com/okravchuk/matoblik/internal/infra/database/models"
)

type OperationRepository struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// Append commits one ledger entry. The id is taken from the auto-increment
// key and the timestamp is assigned here, so two concurrent appends never
// collide; a failed transaction leaves nothing behind.
func (r *OperationRepository) Append(ctx context.Context, op domain.MaterialOperation) (domain.MaterialOperation, error) {
	model := models.MaterialOperation{
		IdentityID: op.IdentityID,
		Username:   op.Username,
		Position:   op.Position,
		Subject:    op.Subject,
		Quantity:   op.Quantity,
		Sender:     op.Sender,
		Receiver:   op.Receiver,
		Action:     op.Action,
		Timestamp:  time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model).Error
	})
	if err != nil {
		return domain.MaterialOperation{}, err
	}

	op.ID = model.ID
	op.Timestamp = model.Timestamp
	return op, nil
}

// List returns every operation in insertion order.
func (r *OperationRepository) List(ctx context.Context) ([]domain.MaterialOperation, error) {
	var rows []models.MaterialOperation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	operations := make([]domain.MaterialOperation, 0, len(rows))
	for _, row := range rows {
		operations = append(operations, domain.MaterialOperation{
			ID:         row.ID,
			IdentityID: row.IdentityID,
			Username:   row.Username,
			Position:   row.Position,
			Subject:    row.Subject,
			Quantity:   row.Quantity,
			Sender:     row.Sender,
			Receiver:   row.Receiver,
			Action:     row.Action,
			Timestamp:  row.Timestamp,
		})
	}
	return operations, nil
}
