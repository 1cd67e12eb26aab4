package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/port"
	"github.com/sirupsen/logrus"
)

type cartLineRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type cartRepository struct {
	kv     port.KeyValueStore
	logger logrus.FieldLogger
}

func NewCart(kv port.KeyValueStore, logger logrus.FieldLogger) port.CartRepository {
	return &cartRepository{
		kv:     kv,
		logger: logger,
	}
}

// GetCart treats a payload that does not decode into cart lines as an empty
// cart.
func (r *cartRepository) GetCart(ctx context.Context) (domain.Cart, error) {
	raw, found, err := r.kv.Get(ctx, CartKey)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("kv.Get: %w", err)
	}
	if !found {
		return domain.Cart{}, nil
	}

	var records []cartLineRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.discard(err)
		return domain.Cart{}, nil
	}

	cart, err := mapCartRecordsToDomain(records)
	if err != nil {
		r.discard(err)
		return domain.Cart{}, nil
	}

	return cart, nil
}

// SaveCart replaces the stored cart wholesale; an empty cart removes the key.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.IsEmpty() {
		return r.DeleteCart(ctx)
	}

	raw, err := json.Marshal(mapDomainToCartRecords(cart))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.kv.Set(ctx, CartKey, string(raw)); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context) error {
	if err := r.kv.Remove(ctx, CartKey); err != nil {
		return fmt.Errorf("kv.Remove: %w", err)
	}

	return nil
}

func (r *cartRepository) discard(err error) {
	r.logger.WithFields(logrus.Fields{
		"key":   CartKey,
		"error": err,
	}).Warn("discarding unreadable payload")
}

func mapCartRecordsToDomain(records []cartLineRecord) (domain.Cart, error) {
	var cart domain.Cart
	seen := make(map[string]struct{}, len(records))

	for i, rec := range records {
		if rec.ID == "" {
			return domain.Cart{}, fmt.Errorf("line[%d]: id is empty", i)
		}
		if rec.Quantity < 1 {
			return domain.Cart{}, fmt.Errorf("line[%d]: quantity[%d] is not positive", i, rec.Quantity)
		}
		if _, dup := seen[rec.ID]; dup {
			return domain.Cart{}, fmt.Errorf("line[%d]: duplicate id[%s]", i, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: rec.ID,
			Name:      rec.Name,
			UnitPrice: rec.Price,
			ImageRef:  rec.Image,
			Category:  rec.Category,
			Quantity:  rec.Quantity,
		})
	}

	return cart, nil
}

func mapDomainToCartRecords(cart domain.Cart) []cartLineRecord {
	records := make([]cartLineRecord, 0, len(cart.Lines))

	for _, line := range cart.Lines {
		records = append(records, cartLineRecord{
			ID:       line.ProductID,
			Name:     line.Name,
			Price:    line.UnitPrice,
			Image:    line.ImageRef,
			Category: line.Category,
			Quantity: line.Quantity,
		})
	}

	return records
}
