package repository_test

import (
	"context"
	"errors"
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errStoreDown = errors.New("store is down")

// failingStore fails every call.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errStoreDown
}

func (failingStore) Set(context.Context, string, string) error {
	return errStoreDown
}

func (failingStore) Remove(context.Context, string) error {
	return errStoreDown
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetOutput(io.Discard)
	return logger, hook
}

func randomCartLine() domain.CartLine {
	return domain.CartLine{
		ProductID: gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		UnitPrice: int64(gofakeit.IntRange(1, 1000)),
		ImageRef:  "/" + gofakeit.Word() + ".jpeg",
		Category:  gofakeit.ProductCategory(),
		Quantity:  gofakeit.IntRange(1, 5),
	}
}

func randomAccount() domain.Account {
	return domain.Account{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 10),
	}
}
