package main_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukeeper/ukadmin"
	main "github.com/ukeeper/ukadmin/cmd/ukadmin"
	"github.com/ukeeper/ukadmin/mock"
	"github.com/ukeeper/ukadmin/term"
)

func TestLoginCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores accepted credentials", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		anonymous(t, deps)
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, creds ukadmin.Credentials) error {
				return nil
			},
		}

		err := (&main.LoginCmd{Login: "admin", Password: "secret"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, ukadmin.Credentials{Login: "admin", Password: "secret"}, deps.Session.Credentials())
		assert.Contains(t, stdout.String(), "Logged in as admin. Continue at /")
	})

	t.Run("continues at back location", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error { return nil },
		}

		err := (&main.LoginCmd{Login: "admin", Password: "secret", Back: "/edit/?id=r1"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Continue at /edit/?id=r1")
	})

	t.Run("reads password from stdin", func(t *testing.T) {
		t.Parallel()

		var got ukadmin.Credentials
		deps, _, stderr := newDeps(t)
		deps.Stdin = strings.NewReader("from-stdin\n")
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, creds ukadmin.Credentials) error {
				got = creds
				return nil
			},
		}

		err := (&main.LoginCmd{Login: "admin"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "from-stdin", got.Password)
		assert.Contains(t, stderr.String(), "Password:")
	})

	t.Run("rejected credentials show the login error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t)
		before := deps.Session.Credentials()
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error {
				return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "unauthorized")
			},
		}

		err := (&main.LoginCmd{Login: "admin", Password: "wrong"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), term.LoginErrorMessage)
		assert.Empty(t, stdout.String())
		assert.Equal(t, before, deps.Session.Credentials())
	})

	t.Run("empty password makes no request", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t)
		deps.Stdin = strings.NewReader("")
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error {
				t.Error("unexpected authenticate call")
				return nil
			},
		}

		err := (&main.LoginCmd{Login: "admin"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ukadmin.EINVALID, ukadmin.ErrorCode(err))
		assert.Contains(t, stderr.String(), term.LoginErrorMessage)
	})
}

func TestLogoutCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("clears credentials and sends the logout pair", func(t *testing.T) {
		t.Parallel()

		var sent ukadmin.Credentials
		deps, stdout, _ := newDeps(t)
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, creds ukadmin.Credentials) error {
				sent = creds
				return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "unauthorized")
			},
		}

		err := (&main.LogoutCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "logout", sent.Login)
		assert.False(t, deps.Session.Authenticated())
		assert.Contains(t, stdout.String(), "Continue at /login/")
	})

	t.Run("clears credentials even when the call panics", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Auth = &mock.Authenticator{
			AuthenticateFn: func(_ context.Context, _ ukadmin.Credentials) error {
				panic("transport exploded")
			},
		}

		err := (&main.LogoutCmd{}).Run(deps)

		require.NoError(t, err)
		assert.False(t, deps.Session.Authenticated())
		assert.Contains(t, stdout.String(), "Logged out")
	})
}
