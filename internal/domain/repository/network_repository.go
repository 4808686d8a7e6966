package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type NetworkRepository interface {
	SaveTransfer(ctx context.Context, transfer *entity.Transfer) error
	// FindTransfer returns nil, nil when the id is unknown.
	FindTransfer(ctx context.Context, id string) (*entity.Transfer, error)
	FindTransfers(ctx context.Context) ([]entity.Transfer, error)
	SaveMessage(ctx context.Context, message *entity.Message) error
	FindMessages(ctx context.Context) ([]entity.Message, error)
}
