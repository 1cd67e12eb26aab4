package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/port"
	"github.com/sirupsen/logrus"
)

type accountRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type accountRepository struct {
	kv     port.KeyValueStore
	logger logrus.FieldLogger
}

func NewAccount(kv port.KeyValueStore, logger logrus.FieldLogger) port.AccountRepository {
	return &accountRepository{
		kv:     kv,
		logger: logger,
	}
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	raw, found, err := r.kv.Get(ctx, AccountsKey)
	if err != nil {
		return nil, fmt.Errorf("kv.Get: %w", err)
	}
	if !found {
		return nil, nil
	}

	var records []accountRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.discard(AccountsKey, err)
		return nil, nil
	}

	accounts := make([]domain.Account, 0, len(records))
	for _, rec := range records {
		accounts = append(accounts, domain.Account{
			ID:       rec.ID,
			Name:     rec.Name,
			Email:    rec.Email,
			Password: rec.Password,
		})
	}

	return accounts, nil
}

func (r *accountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	records := make([]accountRecord, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, accountRecord{
			ID:       a.ID,
			Name:     a.Name,
			Email:    a.Email,
			Password: a.Password,
		})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.kv.Set(ctx, AccountsKey, string(raw)); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

// GetSession reports no session for a payload that is not a session object,
// including a literal "null".
func (r *accountRepository) GetSession(ctx context.Context) (domain.Session, bool, error) {
	raw, found, err := r.kv.Get(ctx, SessionKey)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("kv.Get: %w", err)
	}
	if !found {
		return domain.Session{}, false, nil
	}

	var rec *sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		r.discard(SessionKey, err)
		return domain.Session{}, false, nil
	}
	if rec == nil || rec.ID == "" {
		r.discard(SessionKey, fmt.Errorf("session id is empty"))
		return domain.Session{}, false, nil
	}

	return domain.Session{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
	}, true, nil
}

func (r *accountRepository) SaveSession(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(sessionRecord{
		ID:    session.ID,
		Name:  session.Name,
		Email: session.Email,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.kv.Set(ctx, SessionKey, string(raw)); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

func (r *accountRepository) DeleteSession(ctx context.Context) error {
	if err := r.kv.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("kv.Remove: %w", err)
	}

	return nil
}

func (r *accountRepository) discard(key string, err error) {
	r.logger.WithFields(logrus.Fields{
		"key":   key,
		"error": err,
	}).Warn("discarding unreadable payload")
}
