// Package account keeps the local account directory and the signed-in
// session. Credentials are compared verbatim; this is a convenience login
// for the storefront, not a security boundary.
package account

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/nikolayk812/boutique/internal/port"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Option func(*Manager)

// WithIDGenerator replaces the default time-ordered UUID account ids.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

type Manager struct {
	repo   port.AccountRepository
	logger logrus.FieldLogger
	newID  func() (string, error)

	mu        sync.Mutex
	accounts  []domain.Account
	session   *domain.Session
	observers map[int]func(domain.AuthState)
	nextID    int
}

// NewManager loads the directory and any persisted session. An unreadable
// session starts the manager anonymous.
func NewManager(ctx context.Context, repo port.AccountRepository, logger logrus.FieldLogger, opts ...Option) (*Manager, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	accounts, err := repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListAccounts: %w", err)
	}

	m := &Manager{
		repo:      repo,
		logger:    logger,
		newID:     newUUID,
		accounts:  accounts,
		observers: make(map[int]func(domain.AuthState)),
	}
	for _, opt := range opts {
		opt(m)
	}

	session, found, err := repo.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetSession: %w", err)
	}
	if found {
		m.session = &session
	}

	return m, nil
}

// Register appends a new account and signs it in, replacing any current
// session. A taken email returns ErrEmailTaken and changes nothing.
func (m *Manager) Register(ctx context.Context, name, email, password string) (domain.Session, error) {
	m.mu.Lock()

	for _, a := range m.accounts {
		if a.Email == email {
			m.mu.Unlock()
			return domain.Session{}, ErrEmailTaken
		}
	}

	id, err := m.newID()
	if err != nil {
		m.mu.Unlock()
		return domain.Session{}, fmt.Errorf("newID: %w", err)
	}

	account := domain.Account{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: password,
	}

	accounts := make([]domain.Account, 0, len(m.accounts)+1)
	accounts = append(accounts, m.accounts...)
	accounts = append(accounts, account)

	if err := m.repo.SaveAccounts(ctx, accounts); err != nil {
		m.mu.Unlock()
		return domain.Session{}, fmt.Errorf("repo.SaveAccounts: %w", err)
	}

	// The directory and the session are two keys: put the old directory back
	// when the session cannot be written.
	session := account.Session()
	if err := m.repo.SaveSession(ctx, session); err != nil {
		err = fmt.Errorf("repo.SaveSession: %w", err)
		if rerr := m.repo.SaveAccounts(ctx, m.accounts); rerr != nil {
			err = errors.Join(err, fmt.Errorf("repo.SaveAccounts: %w", rerr))
		}
		m.mu.Unlock()
		return domain.Session{}, err
	}
	m.accounts = accounts

	m.logger.WithField("email", email).Info("account registered")
	m.setSessionAndUnlock(&session)

	return session, nil
}

// Login signs in the account whose email and password both match exactly.
// On ErrInvalidCredentials the current session, if any, is kept.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	m.mu.Lock()

	var (
		match domain.Account
		found bool
	)
	for _, a := range m.accounts {
		if a.Email == email && a.Password == password {
			match, found = a, true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		m.logger.WithField("email", email).Debug("login rejected")
		return domain.Session{}, ErrInvalidCredentials
	}

	session := match.Session()
	if err := m.repo.SaveSession(ctx, session); err != nil {
		m.mu.Unlock()
		return domain.Session{}, fmt.Errorf("repo.SaveSession: %w", err)
	}

	m.logger.WithField("email", email).Debug("logged in")
	m.setSessionAndUnlock(&session)

	return session, nil
}

// Logout ends the session. It is a no-op when nobody is signed in.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()

	if m.session == nil {
		m.mu.Unlock()
		return nil
	}

	if err := m.repo.DeleteSession(ctx); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("repo.DeleteSession: %w", err)
	}

	m.logger.WithField("email", m.session.Email).Debug("logged out")
	m.setSessionAndUnlock(nil)

	return nil
}

func (m *Manager) CurrentSession() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return domain.Session{}, false
	}
	return *m.session, true
}

func (m *Manager) State() domain.AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stateLocked()
}

// AccountCount reports the size of the directory.
func (m *Manager) AccountCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.accounts)
}

// Subscribe registers fn to receive the auth state after every sign-in or
// sign-out. The returned func unregisters it.
func (m *Manager) Subscribe(fn func(domain.AuthState)) func() {
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

// setSessionAndUnlock must be called with m.mu held. Observers run after
// the lock is released.
func (m *Manager) setSessionAndUnlock(session *domain.Session) {
	m.session = session
	state := m.stateLocked()

	observers := make([]func(domain.AuthState), 0, len(m.observers))
	for _, fn := range m.observers {
		observers = append(observers, fn)
	}
	m.mu.Unlock()

	for _, notify := range observers {
		notify(state)
	}
}

func (m *Manager) stateLocked() domain.AuthState {
	if m.session == nil {
		return domain.AuthState{}
	}
	session := *m.session
	return domain.AuthState{Session: &session}
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
