package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/boutique/internal/account"
	"github.com/nikolayk812/boutique/internal/cart"
	"github.com/nikolayk812/boutique/internal/checkout"
	"github.com/nikolayk812/boutique/internal/config"
	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/logging"
	"github.com/nikolayk812/boutique/internal/port"
	"github.com/nikolayk812/boutique/internal/repository"
	"github.com/nikolayk812/boutique/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// app is the composition root: one store, the repositories over it, and the
// managers built on the repositories.
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	merchant checkout.Merchant
	cart     *cart.Manager
	accounts *account.Manager
	checkout *checkout.Service
	closers  []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (_ *app, err error) {
	a := &app{
		cfg:    cfg,
		logger: logging.New(cfg.Logging, logOut),
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, a.close())
		}
	}()

	a.merchant, err = newMerchant(cfg.Merchant)
	if err != nil {
		return nil, err
	}

	kv, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	a.cart, err = cart.NewManager(ctx, repository.NewCart(kv, a.logger), a.logger)
	if err != nil {
		return nil, fmt.Errorf("cart.NewManager: %w", err)
	}

	a.accounts, err = account.NewManager(ctx, repository.NewAccount(kv, a.logger), a.logger)
	if err != nil {
		return nil, fmt.Errorf("account.NewManager: %w", err)
	}

	a.checkout, err = checkout.NewService(a.merchant, a.cart, a.logger)
	if err != nil {
		return nil, fmt.Errorf("checkout.NewService: %w", err)
	}

	a.cart.Subscribe(func(c domain.Cart) {
		a.logger.WithFields(logrus.Fields{
			"items": c.TotalItems(),
			"total": c.TotalPrice(),
		}).Debug("cart changed")
	})
	a.accounts.Subscribe(func(s domain.AuthState) {
		a.logger.WithField("authenticated", s.IsAuthenticated()).Debug("auth state changed")
	})

	return a, nil
}

func newMerchant(cfg config.MerchantConfig) (checkout.Merchant, error) {
	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return checkout.Merchant{}, err
	}

	tag, err := cfg.LocaleTag()
	if err != nil {
		return checkout.Merchant{}, err
	}

	return checkout.Merchant{
		ShopName:       cfg.ShopName,
		WhatsAppNumber: cfg.WhatsAppNumber,
		Currency:       unit,
		Locale:         tag,
	}, nil
}

func (a *app) openStore(ctx context.Context) (port.KeyValueStore, error) {
	sc := a.cfg.Store

	switch sc.Driver {
	case config.DriverMemory:
		return store.NewMemory(), nil

	case config.DriverSQLite:
		db, err := store.OpenSQLite(ctx, sc.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("store.OpenSQLite: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		kv, err := store.NewSQLite(db, sc.Namespace)
		if err != nil {
			return nil, fmt.Errorf("store.NewSQLite: %w", err)
		}
		return kv, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPassword,
			DB:       sc.RedisDB,
		})
		a.closers = append(a.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("client.Ping: %w", err)
		}

		kv, err := store.NewRedis(client, sc.Namespace)
		if err != nil {
			return nil, fmt.Errorf("store.NewRedis: %w", err)
		}
		return kv, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, sc.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		a.closers = append(a.closers, func() error {
			pool.Close()
			return nil
		})

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("pool.Ping: %w", err)
		}

		kv, err := store.NewPostgres(pool, sc.Namespace)
		if err != nil {
			return nil, fmt.Errorf("store.NewPostgres: %w", err)
		}
		return kv, nil
	}

	return nil, fmt.Errorf("driver[%s] is not supported", sc.Driver)
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
