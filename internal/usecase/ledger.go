package usecase

import (
	"context"
	"strings"

	"github.com/okravchuk/matoblik/internal/domain"
)

// OperationRepository defines storage operations for the material ledger.
// Append must assign the id and timestamp and commit atomically.
type OperationRepository interface {
	Append(ctx context.Context, op domain.MaterialOperation) (domain.MaterialOperation, error)
	List(ctx context.Context) ([]domain.MaterialOperation, error)
}

// RecordInput is the validated input for recording a material operation.
type RecordInput struct {
	Subject  string
	Quantity int
	Sender   string
	Receiver string
	Action   string
}

type LedgerUsecase struct {
	repo OperationRepository
}

func NewLedgerUsecase(repo OperationRepository) *LedgerUsecase {
	return &LedgerUsecase{repo: repo}
}

// Record appends a material operation performed by actor. The actor's
// username and position are snapshotted into the record so the ledger stays
// a faithful historical log even when the profile changes later.
func (uc *LedgerUsecase) Record(ctx context.Context, actor domain.Identity, input RecordInput) (domain.MaterialOperation, error) {
	if actor.ID == 0 {
		return domain.MaterialOperation{}, domain.ErrUnauthenticated
	}
	if input.Quantity <= 0 {
		return domain.MaterialOperation{}, domain.ErrInvalidQuantity
	}
	required := map[string]string{
		"subject":  input.Subject,
		"sender":   input.Sender,
		"receiver": input.Receiver,
		"action":   input.Action,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return domain.MaterialOperation{}, domain.MissingFieldError{Field: field}
		}
	}

	op := domain.MaterialOperation{
		IdentityID: actor.ID,
		Username:   actor.Username,
		Position:   actor.Position,
		Subject:    input.Subject,
		Quantity:   input.Quantity,
		Sender:     input.Sender,
		Receiver:   input.Receiver,
		Action:     input.Action,
	}

	return uc.repo.Append(ctx, op)
}

// List returns all recorded operations in insertion order.
func (uc *LedgerUsecase) List(ctx context.Context) ([]domain.MaterialOperation, error) {
	return uc.repo.List(ctx)
}
