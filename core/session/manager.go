package session

import (
	"context"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/pathshala/admin/core"
)

type (
	// Authenticator exchanges Credentials for a LoginResult.
	Authenticator interface {
		Login(ctx context.Context, creds Credentials) (LoginResult, error)
	}

	// AuthenticatorFunc adapts a func to an Authenticator.
	AuthenticatorFunc func(ctx context.Context, creds Credentials) (LoginResult, error)

	// Listener is notified synchronously after every state transition.
	Listener func(Session)

	Manager struct {
		store      core.KVStore
		logger     core.Logger
		validate   *validator.Validate
		translator ut.Translator

		mu        sync.RWMutex
		current   Session
		listeners map[int]Listener
		nextID    int
		initOnce  sync.Once
		initErr   error
	}
)

func (fn AuthenticatorFunc) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	return fn(ctx, creds)
}

func NewManager(store core.KVStore, logger core.Logger, validate *validator.Validate, translator ut.Translator) *Manager {
	return &Manager{
		store:      store,
		logger:     logger,
		validate:   validate,
		translator: translator,
		listeners:  make(map[int]Listener),
	}
}

// Init rehydrates the session from durable storage. Only the first call reads the store.
func (m *Manager) Init(ctx context.Context) error {
	m.initOnce.Do(func() {
		m.initErr = m.rehydrate(ctx)
	})
	return m.initErr
}

func (m *Manager) rehydrate(ctx context.Context) error {
	token, err := m.get(ctx, core.KeyToken)
	if err != nil {
		return err
	}
	if token == "" {
		if token, err = m.get(ctx, core.KeyLegacyToken); err != nil {
			return err
		}
	}
	rawRole, err := m.get(ctx, core.KeyRole)
	if err != nil {
		return err
	}
	if token == "" || rawRole == "" {
		return nil
	}

	role, err := ParseRole(rawRole)
	if err != nil {
		m.logger.Warn("ignoring stored session", err)
		return nil
	}

	m.mu.Lock()
	m.current = Session{Token: token, Role: role}
	m.mu.Unlock()
	return nil
}

func (m *Manager) get(ctx context.Context, key string) (string, error) {
	val, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Cause(err) == core.ErrKeyNotFound {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading %q", key)
	}
	return val, nil
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) IsAuthenticated() bool {
	return m.Current().IsAuthenticated()
}

// Login persists the token and role, then notifies listeners.
func (m *Manager) Login(ctx context.Context, token string, role Role) error {
	token = core.CleanString(token)
	if token == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "token", Error: "token cannot be blank"})
	}
	if !role.Valid() {
		return core.NewValidationError(nil, core.FieldError{Field: "role", Error: "invalid role"})
	}

	if err := m.store.Set(ctx, core.KeyToken, token); err != nil {
		return errors.Wrap(err, "storing token")
	}
	if err := m.store.Set(ctx, core.KeyRole, string(role)); err != nil {
		if dErr := m.store.Delete(ctx, core.KeyToken); dErr != nil {
			m.logger.Error("removing token after failed login", dErr)
		}
		return errors.Wrap(err, "storing role")
	}

	m.transition(Session{Token: token, Role: role})
	return nil
}

// Logout clears durable storage, then notifies listeners.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, core.KeyToken, core.KeyLegacyToken, core.KeyRole); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	m.transition(Session{})
	return nil
}

// Authenticate validates creds, logs in through auth and stores the result.
// On failure the session is left untouched and auth's error is returned as is.
func (m *Manager) Authenticate(ctx context.Context, auth Authenticator, creds Credentials) (LoginResult, error) {
	creds.Clean()
	if err := m.validate.Struct(creds); err != nil {
		return LoginResult{}, core.TranslateValidationErrors(err, m.translator)
	}

	res, err := auth.Login(ctx, creds)
	if err != nil {
		return LoginResult{}, err
	}
	if res.Role == "" {
		res.Role = creds.Role
	}
	if err := m.Login(ctx, res.Token, res.Role); err != nil {
		return LoginResult{}, err
	}
	m.logger.Info("logged in", m.Current())
	return res, nil
}

// Subscribe registers fn and returns a func removing it.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) transition(s Session) {
	m.mu.Lock()
	m.current = s
	listeners := make([]Listener, 0, len(m.listeners))
	for i := 0; i < m.nextID; i++ {
		if fn, ok := m.listeners[i]; ok {
			listeners = append(listeners, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
