package account_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/boutique/internal/account"
	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/port"
	"github.com/nikolayk812/boutique/internal/repository"
	"github.com/nikolayk812/boutique/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, kv port.KeyValueStore, opts ...account.Option) *account.Manager {
	t.Helper()

	logger, _ := test.NewNullLogger()
	m, err := account.NewManager(t.Context(), repository.NewAccount(kv, logger), logger, opts...)
	require.NoError(t, err)

	return m
}

func sequentialIDs() account.Option {
	var n int
	return account.WithIDGenerator(func() (string, error) {
		n++
		return fmt.Sprintf("%d", 1718000000000+n), nil
	})
}

func TestManager_Register(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()
	m := newManager(t, kv, sequentialIDs())

	session, err := m.Register(ctx, "Priya Bhavan", "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.Session{ID: "1718000000001", Name: "Priya Bhavan", Email: "a@x.com"}, session)
	assert.Equal(t, 1, m.AccountCount())

	current, ok := m.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, session, current)
	assert.True(t, m.State().IsAuthenticated())

	raw, found, err := kv.Get(ctx, repository.SessionKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, raw, "secret")
}

func TestManager_RegisterDuplicateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{
			name:    "same email: error",
			email:   "a@x.com",
			wantErr: account.ErrEmailTaken,
		},
		{
			name:  "different case: ok",
			email: "A@x.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			m := newManager(t, store.NewMemory())

			first, err := m.Register(ctx, "Priya", "a@x.com", "secret")
			require.NoError(t, err)

			_, err = m.Register(ctx, "Harini", tt.email, "other-secret")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, m.AccountCount())

				current, ok := m.CurrentSession()
				require.True(t, ok)
				assert.Equal(t, first, current)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, m.AccountCount())
		})
	}
}

func TestManager_RegisterReplacesSession(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, store.NewMemory())

	_, err := m.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret1")
	require.NoError(t, err)

	second, err := m.Register(ctx, "Ishu", "ishu@example.com", "secret2")
	require.NoError(t, err)

	current, ok := m.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, second, current)
}

func TestManager_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "matching credentials: ok",
			email:    "a@x.com",
			password: "secret",
		},
		{
			name:     "wrong password: error",
			email:    "a@x.com",
			password: "Secret",
			wantErr:  account.ErrInvalidCredentials,
		},
		{
			name:     "unknown email: error",
			email:    "b@x.com",
			password: "secret",
			wantErr:  account.ErrInvalidCredentials,
		},
		{
			name:     "email differs in case: error",
			email:    "A@X.COM",
			password: "secret",
			wantErr:  account.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			m := newManager(t, store.NewMemory())

			registered, err := m.Register(ctx, "Priya", "a@x.com", "secret")
			require.NoError(t, err)
			require.NoError(t, m.Logout(ctx))

			session, err := m.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, ok := m.CurrentSession()
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered, session)
		})
	}
}

func TestManager_FailedLoginKeepsSession(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, store.NewMemory())

	session, err := m.Register(ctx, "Priya", "a@x.com", "secret")
	require.NoError(t, err)

	_, err = m.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, account.ErrInvalidCredentials)

	current, ok := m.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, session, current)
}

func TestManager_Logout(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()
	m := newManager(t, kv)

	_, err := m.Register(ctx, "Priya", "a@x.com", "secret")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	_, ok := m.CurrentSession()
	assert.False(t, ok)
	assert.False(t, m.State().IsAuthenticated())

	_, found, err := kv.Get(ctx, repository.SessionKey)
	require.NoError(t, err)
	assert.False(t, found)

	// second logout is a no-op
	require.NoError(t, m.Logout(ctx))
}

func TestManager_RestoresSession(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()

	first := newManager(t, kv)
	session, err := first.Register(ctx, "Priya", "a@x.com", "secret")
	require.NoError(t, err)

	second := newManager(t, kv)
	current, ok := second.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, session, current)
	assert.Equal(t, 1, second.AccountCount())

	require.NoError(t, second.Logout(ctx))
	third := newManager(t, kv)
	_, ok = third.CurrentSession()
	assert.False(t, ok)

	_, err = third.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)
}

func TestManager_CorruptSessionStartsAnonymous(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, repository.SessionKey, "{broken"))

	m := newManager(t, kv)
	_, ok := m.CurrentSession()
	assert.False(t, ok)
}

func TestManager_DefaultIDs(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, store.NewMemory())

	a, err := m.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err)
	b, err := m.Register(ctx, "B", "b@x.com", "secret")
	require.NoError(t, err)

	ida, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	idb, err := uuid.Parse(b.ID)
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), ida.Version())
	assert.NotEqual(t, ida, idb)
}

func TestManager_IDGeneratorError(t *testing.T) {
	ctx := t.Context()
	errNoEntropy := errors.New("no entropy")
	m := newManager(t, store.NewMemory(), account.WithIDGenerator(func() (string, error) {
		return "", errNoEntropy
	}))

	_, err := m.Register(ctx, "A", "a@x.com", "secret")
	require.ErrorIs(t, err, errNoEntropy)
	assert.Zero(t, m.AccountCount())
}

// flakyRepo fails every write while failing is set.
type flakyRepo struct {
	port.AccountRepository
	failing bool
}

var errDiskFull = errors.New("disk full")

func (r *flakyRepo) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	if r.failing {
		return errDiskFull
	}
	return r.AccountRepository.SaveAccounts(ctx, accounts)
}

func (r *flakyRepo) SaveSession(ctx context.Context, session domain.Session) error {
	if r.failing {
		return errDiskFull
	}
	return r.AccountRepository.SaveSession(ctx, session)
}

func (r *flakyRepo) DeleteSession(ctx context.Context) error {
	if r.failing {
		return errDiskFull
	}
	return r.AccountRepository.DeleteSession(ctx)
}

func TestManager_FailedWrites(t *testing.T) {
	ctx := t.Context()
	logger, _ := test.NewNullLogger()
	repo := &flakyRepo{AccountRepository: repository.NewAccount(store.NewMemory(), logger)}

	m, err := account.NewManager(ctx, repo, logger)
	require.NoError(t, err)
	session, err := m.Register(ctx, "Priya", "a@x.com", "secret")
	require.NoError(t, err)

	repo.failing = true

	_, err = m.Register(ctx, "Harini", "h@x.com", "secret")
	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, m.AccountCount())

	_, err = m.Login(ctx, "a@x.com", "secret")
	require.ErrorIs(t, err, errDiskFull)

	require.ErrorIs(t, m.Logout(ctx), errDiskFull)

	current, ok := m.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, session, current)
}

// sessionDownStore fails writes of the session key while down is set.
type sessionDownStore struct {
	*store.Memory
	down bool
}

func (s *sessionDownStore) Set(ctx context.Context, key, value string) error {
	if s.down && key == repository.SessionKey {
		return errDiskFull
	}
	return s.Memory.Set(ctx, key, value)
}

func TestManager_RegisterSessionWriteFails(t *testing.T) {
	ctx := t.Context()
	kv := &sessionDownStore{Memory: store.NewMemory(), down: true}
	m := newManager(t, kv)

	_, err := m.Register(ctx, "A", "a@x.com", "secret")
	require.ErrorIs(t, err, errDiskFull)
	assert.Zero(t, m.AccountCount())
	assert.False(t, m.State().IsAuthenticated())

	reloaded := newManager(t, kv)
	assert.Zero(t, reloaded.AccountCount())

	kv.down = false

	session, err := m.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, 1, m.AccountCount())

	reloaded = newManager(t, kv)
	assert.Equal(t, 1, reloaded.AccountCount())
	current, ok := reloaded.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, session, current)
}

func TestManager_Subscribe(t *testing.T) {
	ctx := t.Context()
	m := newManager(t, store.NewMemory())

	var seen []bool
	unsubscribe := m.Subscribe(func(s domain.AuthState) {
		seen = append(seen, s.IsAuthenticated())
	})

	_, err := m.Register(ctx, "Priya", "a@x.com", "secret")
	require.NoError(t, err)
	_, err = m.Login(ctx, "a@x.com", "bad")
	require.Error(t, err)
	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))

	unsubscribe()
	_, err = m.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, seen)
}

func TestNewManager(t *testing.T) {
	logger, _ := test.NewNullLogger()

	tests := []struct {
		name      string
		repo      port.AccountRepository
		logger    logrus.FieldLogger
		wantError string
	}{
		{
			name:   "repo and logger: ok",
			repo:   repository.NewAccount(store.NewMemory(), logger),
			logger: logger,
		},
		{
			name:      "nil repo: error",
			logger:    logger,
			wantError: "repo is nil",
		},
		{
			name:      "nil logger: error",
			repo:      repository.NewAccount(store.NewMemory(), logger),
			wantError: "logger is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := account.NewManager(t.Context(), tt.repo, tt.logger)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}
