// Package cart owns the shopper's cart: one line per product, quantities,
// derived totals, and persistence after every change.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/port"
	"github.com/sirupsen/logrus"
)

type Manager struct {
	repo   port.CartRepository
	logger logrus.FieldLogger

	mu        sync.Mutex
	cart      domain.Cart
	observers map[int]func(domain.Cart)
	nextID    int
}

// NewManager restores the cart from the repository. This is the only read of
// durable storage; afterwards the manager writes through on every mutation.
func NewManager(ctx context.Context, repo port.CartRepository, logger logrus.FieldLogger) (*Manager, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	cart, err := repo.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetCart: %w", err)
	}

	return &Manager{
		repo:      repo,
		logger:    logger,
		cart:      cart,
		observers: make(map[int]func(domain.Cart)),
	}, nil
}

// AddItem appends a line with quantity 1, or increments the quantity when
// the product is already in the cart. The existing line keeps the snapshot
// taken when it was first added.
func (m *Manager) AddItem(ctx context.Context, product domain.Product) error {
	if product.ID == "" {
		return fmt.Errorf("productID is empty")
	}
	if product.Price <= 0 {
		return fmt.Errorf("price[%d] is not positive", product.Price)
	}

	err := m.mutate(ctx, func(cart *domain.Cart) bool {
		for i := range cart.Lines {
			if cart.Lines[i].ProductID == product.ID {
				cart.Lines[i].Quantity++
				return true
			}
		}
		cart.Lines = append(cart.Lines, domain.NewCartLine(product))
		return true
	})
	if err != nil {
		return err
	}

	m.logger.WithField("product_id", product.ID).Debug("item added to cart")
	return nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1
// are ignored: removing a line is RemoveItem's job. Unknown products are
// ignored as well.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	return m.mutate(ctx, func(cart *domain.Cart) bool {
		for i := range cart.Lines {
			if cart.Lines[i].ProductID == productID {
				if cart.Lines[i].Quantity == quantity {
					return false
				}
				cart.Lines[i].Quantity = quantity
				return true
			}
		}
		return false
	})
}

// RemoveItem deletes the line for productID if there is one.
func (m *Manager) RemoveItem(ctx context.Context, productID string) error {
	return m.mutate(ctx, func(cart *domain.Cart) bool {
		for i := range cart.Lines {
			if cart.Lines[i].ProductID == productID {
				cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
				return true
			}
		}
		return false
	})
}

// Clear empties the cart and drops it from storage.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.mutate(ctx, func(cart *domain.Cart) bool {
		cart.Lines = nil
		return true
	}); err != nil {
		return err
	}

	m.logger.Debug("cart cleared")
	return nil
}

// Snapshot returns a copy of the current lines. Totals are derived from it on
// demand, so they always agree with the lines.
func (m *Manager) Snapshot() domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cart.Clone()
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned func unregisters it.
func (m *Manager) Subscribe(fn func(domain.Cart)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, id)
	}
}

// mutate applies fn to a copy of the cart, persists the copy and only then
// makes it current. A failed write leaves the in-memory cart untouched.
func (m *Manager) mutate(ctx context.Context, fn func(cart *domain.Cart) bool) error {
	m.mu.Lock()

	next := m.cart.Clone()
	if !fn(&next) {
		m.mu.Unlock()
		return nil
	}

	if err := m.repo.SaveCart(ctx, next); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("repo.SaveCart: %w", err)
	}
	m.cart = next

	observers := make([]func(domain.Cart), 0, len(m.observers))
	for _, fn := range m.observers {
		observers = append(observers, fn)
	}
	m.mu.Unlock()

	for _, notify := range observers {
		notify(next.Clone())
	}

	return nil
}
