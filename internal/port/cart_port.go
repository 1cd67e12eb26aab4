package port

import (
	"context"

	"github.com/nikolayk812/boutique/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	DeleteCart(ctx context.Context) error
}
