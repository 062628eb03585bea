package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/mock"
)

func newSession(t *testing.T, creds ukadmin.Credentials) (*ukadmin.Session, *mock.MemoryCredentialStore) {
	t.Helper()

	store := mock.NewMemoryCredentialStore()
	require.NoError(t, store.SaveCredentials(context.Background(), creds))
	session, err := ukadmin.NewSession(context.Background(), store)
	require.NoError(t, err)
	return session, store
}

func TestSessionManager_Login(t *testing.T) {
	t.Parallel()

	t.Run("stores credentials and navigates to back location", func(t *testing.T) {
		t.Parallel()

		session, store := newSession(t, ukadmin.Credentials{})
		var sent ukadmin.Credentials
		nav := &mock.Navigator{}
		view := &mock.LoginView{ErrorVisible: true}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, creds ukadmin.Credentials) error {
					sent = creds
					return nil
				},
			},
			View:      view,
			Navigator: nav,
		}

		err := m.Login(context.Background(), "admin", "secret", "/edit/?id=abc")

		require.NoError(t, err)
		assert.Equal(t, ukadmin.Credentials{Login: "admin", Password: "secret"}, sent)
		assert.False(t, view.ErrorVisible)
		assert.Equal(t, []string{"/edit/?id=abc"}, nav.Locations)
		stored, err := store.LoadCredentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ukadmin.Credentials{Login: "admin", Password: "secret"}, stored)
		assert.True(t, session.Authenticated())
	})

	t.Run("navigates to root without back location", func(t *testing.T) {
		t.Parallel()

		session, _ := newSession(t, ukadmin.Credentials{})
		nav := &mock.Navigator{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error { return nil },
			},
			View:      &mock.LoginView{},
			Navigator: nav,
		}

		require.NoError(t, m.Login(context.Background(), "admin", "secret", ""))

		assert.Equal(t, []string{"/"}, nav.Locations)
	})

	t.Run("rejected credentials show error and keep prior session", func(t *testing.T) {
		t.Parallel()

		prior := ukadmin.Credentials{Login: "old", Password: "pass"}
		session, store := newSession(t, prior)
		nav := &mock.Navigator{}
		view := &mock.LoginView{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error {
					return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "unauthorized")
				},
			},
			View:      view,
			Navigator: nav,
		}

		err := m.Login(context.Background(), "admin", "wrong", "")

		require.Error(t, err)
		assert.Equal(t, ukadmin.EUNAUTHORIZED, ukadmin.ErrorCode(err))
		assert.True(t, view.ErrorVisible)
		assert.Empty(t, nav.Locations)
		assert.Equal(t, prior, session.Credentials())
		stored, err := store.LoadCredentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, prior, stored)
	})

	t.Run("empty password makes no request", func(t *testing.T) {
		t.Parallel()

		session, _ := newSession(t, ukadmin.Credentials{})
		called := false
		view := &mock.LoginView{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error {
					called = true
					return nil
				},
			},
			View:      view,
			Navigator: &mock.Navigator{},
		}

		err := m.Login(context.Background(), "admin", "", "")

		require.Error(t, err)
		assert.Equal(t, ukadmin.EINVALID, ukadmin.ErrorCode(err))
		assert.False(t, called)
		assert.True(t, view.ErrorVisible)
	})
}

func TestSessionManager_Logout(t *testing.T) {
	t.Parallel()

	t.Run("clears credentials and navigates to login", func(t *testing.T) {
		t.Parallel()

		session, store := newSession(t, ukadmin.Credentials{Login: "admin", Password: "secret"})
		var sent ukadmin.Credentials
		nav := &mock.Navigator{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, creds ukadmin.Credentials) error {
					sent = creds
					return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "unauthorized")
				},
			},
			View:      &mock.LoginView{},
			Navigator: nav,
		}

		m.Logout(context.Background())

		assert.NotEqual(t, ukadmin.Credentials{Login: "admin", Password: "secret"}, sent)
		assert.False(t, session.Authenticated())
		stored, err := store.LoadCredentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ukadmin.Credentials{}, stored)
		assert.Equal(t, []string{"/login/"}, nav.Locations)
	})

	t.Run("clears and navigates when the call panics", func(t *testing.T) {
		t.Parallel()

		session, store := newSession(t, ukadmin.Credentials{Login: "admin", Password: "secret"})
		nav := &mock.Navigator{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error {
					panic("network stack exploded")
				},
			},
			View:      &mock.LoginView{},
			Navigator: nav,
		}

		assert.NotPanics(t, func() { m.Logout(context.Background()) })

		stored, err := store.LoadCredentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ukadmin.Credentials{}, stored)
		assert.Equal(t, []string{"/login/"}, nav.Locations)
	})

	t.Run("clears and navigates when the call times out", func(t *testing.T) {
		t.Parallel()

		session, _ := newSession(t, ukadmin.Credentials{Login: "admin", Password: "secret"})
		nav := &mock.Navigator{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(ctx context.Context, _ ukadmin.Credentials) error {
					<-ctx.Done()
					return ctx.Err()
				},
			},
			View:          &mock.LoginView{},
			Navigator:     nav,
			LogoutTimeout: 10 * time.Millisecond,
		}

		m.Logout(context.Background())

		assert.False(t, session.Authenticated())
		assert.Equal(t, []string{"/login/"}, nav.Locations)
	})

	t.Run("navigates even when the store fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.CredentialStore{
			LoadCredentialsFn: func(_ context.Context) (ukadmin.Credentials, error) {
				return ukadmin.Credentials{Login: "admin", Password: "secret"}, nil
			},
			ClearCredentialsFn: func(_ context.Context) error {
				return errors.New("disk error")
			},
		}
		session, err := ukadmin.NewSession(context.Background(), store)
		require.NoError(t, err)
		nav := &mock.Navigator{}
		m := &admin.SessionManager{
			Session: session,
			Auth: &mock.Authenticator{
				AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error { return nil },
			},
			View:      &mock.LoginView{},
			Navigator: nav,
		}

		m.Logout(context.Background())

		assert.False(t, session.Authenticated())
		assert.Equal(t, []string{"/login/"}, nav.Locations)
	})
}

func TestQueryParam(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", admin.QueryParam("id=abc", "id"))
	assert.Equal(t, "/edit/?id=1", admin.QueryParam("back=%2Fedit%2F%3Fid%3D1", "back"))
	assert.Equal(t, "a b", admin.QueryParam("id=a+b", "id"))
	assert.Equal(t, "", admin.QueryParam("other=1", "id"))
	assert.Equal(t, "", admin.QueryParam("id=%zz", "id"))
}
