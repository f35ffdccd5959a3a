package vsphere

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/soap"
)

// SessionManager owns the single authenticated session to the vCenter/ESXi
// endpoint. The session is opened once and closed exactly once; Close is
// safe to call on every exit path.
type SessionManager struct {
	mu       sync.Mutex
	client   *govmomi.Client
	host     string
	endpoint string
	username string
	password string
	insecure bool
	logger   *slog.Logger
}

func NewSessionManager(host, username, password string, insecure bool, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		host:     host,
		username: username,
		password: password,
		insecure: insecure,
		logger:   logger,
	}
}

// Connect opens and authenticates the session. Certificate verification is
// skipped when the manager was built with insecure set. There is no retry;
// dial and authentication errors propagate to the caller.
func (m *SessionManager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectLocked(ctx)
}

// Client returns the live endpoint client, connecting first if needed.
func (m *SessionManager) Client(ctx context.Context) (*vim25.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		if err := m.connectLocked(ctx); err != nil {
			return nil, err
		}
	}
	return m.client.Client, nil
}

// Endpoint is the host:port the session was opened against, without
// credentials. Falls back to the configured host before Connect.
func (m *SessionManager) Endpoint() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.endpoint != "" {
		return m.endpoint
	}
	return m.host
}

// Healthy reports whether the authenticated session is still active.
func (m *SessionManager) Healthy(ctx context.Context) error {
	m.mu.Lock()
	c := m.client
	m.mu.Unlock()
	if c == nil {
		return errors.New("session not established")
	}
	s, err := c.SessionManager.UserSession(ctx)
	if err != nil {
		return fmt.Errorf("session check failed: %w", err)
	}
	if s == nil {
		return errors.New("session expired")
	}
	return nil
}

// Close logs out and drops the client. Subsequent calls are no-ops.
func (m *SessionManager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Logout(ctx)
	m.client = nil
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (m *SessionManager) connectLocked(ctx context.Context) error {
	if m.client != nil {
		return nil
	}

	u, err := soap.ParseURL(m.host)
	if err != nil {
		return fmt.Errorf("parse endpoint %q: %w", m.host, err)
	}
	u.User = url.UserPassword(m.username, m.password)

	c, err := govmomi.NewClient(ctx, u, m.insecure)
	if err != nil {
		return fmt.Errorf("connect %s: %w", u.Host, err)
	}
	m.client = c
	m.endpoint = u.Host
	m.logger.Info("session established", "host", u.Host, "user", m.username)
	return nil
}
