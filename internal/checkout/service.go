// Package checkout turns a cart and the customer's details into an order
// message and hands it off to the merchant's chat.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/forms"
	"github.com/sirupsen/logrus"
)

var ErrEmptyCart = errors.New("cart is empty")

// Cart is the part of the cart manager checkout needs.
type Cart interface {
	Snapshot() domain.Cart
	Clear(ctx context.Context) error
}

type Order struct {
	Message string
	Link    string
	Total   int64
}

type Service struct {
	merchant Merchant
	cart     Cart
	logger   logrus.FieldLogger
}

func NewService(merchant Merchant, cart Cart, logger logrus.FieldLogger) (*Service, error) {
	if merchant.WhatsAppNumber == "" {
		return nil, fmt.Errorf("merchant number is empty")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &Service{
		merchant: merchant,
		cart:     cart,
		logger:   logger,
	}, nil
}

// PlaceOrder validates the details, renders the order for the current cart
// and clears the cart. Invalid details come back as forms.FieldErrors and
// leave the cart alone.
func (s *Service) PlaceOrder(ctx context.Context, details forms.Checkout) (Order, error) {
	if err := details.Validate(); err != nil {
		return Order{}, err
	}

	cart := s.cart.Snapshot()
	if cart.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	message := RenderMessage(s.merchant, details, cart)
	order := Order{
		Message: message,
		Link:    Link(s.merchant.WhatsAppNumber, message),
		Total:   cart.TotalPrice(),
	}

	if err := s.cart.Clear(ctx); err != nil {
		return Order{}, fmt.Errorf("cart.Clear: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"items": cart.TotalItems(),
		"total": order.Total,
	}).Info("order handed off")

	return order, nil
}
