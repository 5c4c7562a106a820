package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/messmate/internal/common"
)

func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()
	origText, origPwd := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPwd })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestSignIn_Success(t *testing.T) {
	session := &fakeSession{}
	app, out := newTestApp(t, session, nil, "")
	stubInputs(t, []string{"me@mess.local"}, "pw123")

	require.NoError(t, app.SignIn(context.Background()))
	assert.Equal(t, "me@mess.local", session.lastEmail)
	assert.Equal(t, "pw123", session.lastPwd)
	assert.Contains(t, out.String(), "Welcome, Tester!")
}

func TestSignIn_RefusedWhileValidating(t *testing.T) {
	session := &fakeSession{loading: true}
	app, out := newTestApp(t, session, nil, "")

	require.NoError(t, app.SignIn(context.Background()))
	assert.Empty(t, session.lastEmail, "no prompt should run while validating")
	assert.Contains(t, out.String(), "still being validated")
}

func TestSignIn_BadCredentials(t *testing.T) {
	session := &fakeSession{signInErr: common.ErrUnauthorized}
	app, out := newTestApp(t, session, nil, "")
	stubInputs(t, []string{"me@mess.local"}, "wrong")

	err := app.SignIn(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Contains(t, out.String(), "Invalid email or password")
}

func TestSignIn_ServerDown(t *testing.T) {
	session := &fakeSession{signInErr: common.ErrUnavailable}
	app, out := newTestApp(t, session, nil, "")
	stubInputs(t, []string{"me@mess.local"}, "pw")

	err := app.SignIn(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
	assert.Contains(t, out.String(), "Server unavailable")
}

func TestSignUp_Success(t *testing.T) {
	session := &fakeSession{}
	app, out := newTestApp(t, session, nil, "")
	stubInputs(t, []string{"new@mess.local", "New Member"}, "pw")

	require.NoError(t, app.SignUp(context.Background()))
	assert.True(t, session.signUpMode)
	assert.Equal(t, "New Member", session.lastName)
	assert.Contains(t, out.String(), "Welcome, New Member!")
}

func TestSignOut(t *testing.T) {
	session := &fakeSession{}
	app, out := newTestApp(t, session, nil, "")
	stubInputs(t, []string{"me@mess.local"}, "pw")
	require.NoError(t, app.SignIn(context.Background()))

	require.NoError(t, app.SignOut(context.Background()))
	assert.True(t, session.signedOut)
	assert.Contains(t, out.String(), "Signed out")
}

func TestWhoAmI(t *testing.T) {
	session := &fakeSession{}
	app, out := newTestApp(t, session, nil, "")

	app.WhoAmI()
	assert.Contains(t, out.String(), "Not signed in")

	stubInputs(t, []string{"me@mess.local"}, "pw")
	require.NoError(t, app.SignIn(context.Background()))
	app.WhoAmI()
	assert.Contains(t, out.String(), "me@mess.local")
}
