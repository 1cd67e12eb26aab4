package port

import (
	"context"

	"github.com/nikolayk812/boutique/internal/domain"
)

type AccountRepository interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// GetSession reports false when no session is persisted.
	GetSession(ctx context.Context) (domain.Session, bool, error)
	SaveSession(ctx context.Context, session domain.Session) error
	DeleteSession(ctx context.Context) error
}
