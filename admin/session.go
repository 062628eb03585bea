package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/ukeeper/ukadmin"
)

// DefaultLogoutTimeout bounds the blocking logout call.
const DefaultLogoutTimeout = 5 * time.Second

// logoutCredentials is a pair the service never accepts. Sending it replaces
// whatever authorization the service associated with this client.
var logoutCredentials = ukadmin.Credentials{Login: "logout", Password: "logout"}

// SessionManager logs the operator in and out.
type SessionManager struct {
	Session   *ukadmin.Session
	Auth      ukadmin.Authenticator
	View      ukadmin.LoginView
	Navigator ukadmin.Navigator
	Logger    *slog.Logger

	// LogoutTimeout defaults to DefaultLogoutTimeout.
	LogoutTimeout time.Duration
}

// Login checks the pair with the service. On success it persists the pair
// and navigates to back, or to the root page when back is empty. On failure
// the login view shows its error and the session is left as it was.
func (m *SessionManager) Login(ctx context.Context, login, password, back string) error {
	logger := loggerOrDiscard(m.Logger)
	m.View.HideError()

	creds := ukadmin.Credentials{Login: login, Password: password}
	if creds.Empty() {
		m.View.ShowError()
		return ukadmin.Errorf(ukadmin.EINVALID, "login and password required")
	}

	if err := m.Auth.Authenticate(ctx, creds); err != nil {
		logger.Warn("login rejected", "login", login, "err", err)
		m.View.ShowError()
		return err
	}

	if err := m.Session.Store(ctx, creds); err != nil {
		logger.Error("error while storing credentials", "err", err)
		m.View.ShowError()
		return err
	}

	if back == "" {
		back = ukadmin.LocationRoot
	}
	m.Navigator.Navigate(back)
	return nil
}

// Logout makes a blocking call that clears the service-side authorization,
// then forgets the stored credentials and navigates to the login page. The
// last two steps always run, whatever happens to the call.
func (m *SessionManager) Logout(ctx context.Context) {
	logger := loggerOrDiscard(m.Logger)

	defer func() {
		if err := m.Session.Invalidate(context.WithoutCancel(ctx)); err != nil {
			logger.Error("error while clearing credentials", "err", err)
		}
		m.Navigator.Navigate(ukadmin.LocationLogin)
	}()

	m.deauthenticate(ctx, logger)
}

func (m *SessionManager) deauthenticate(ctx context.Context, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("logout call failed", "panic", r)
		}
	}()

	timeout := m.LogoutTimeout
	if timeout <= 0 {
		timeout = DefaultLogoutTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// The service is expected to reject the pair.
	if err := m.Auth.Authenticate(ctx, logoutCredentials); err != nil {
		logger.Debug("logout call finished", "err", err)
	}
}
