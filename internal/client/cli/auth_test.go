package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/authapi/internal/client/client"
)

type fakeAPI struct {
	registerErr error
	loginToken  string
	loginErr    error
	pingErr     error

	gotUser string
	gotPass string
}

func (f *fakeAPI) Register(ctx context.Context, username string, password []byte) error {
	f.gotUser, f.gotPass = username, string(password)
	return f.registerErr
}

func (f *fakeAPI) Login(ctx context.Context, username string, password []byte) (string, error) {
	f.gotUser, f.gotPass = username, string(password)
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Ping(ctx context.Context) error { return f.pingErr }

// stubInput redirects the interactive seams for the duration of a test.
func stubInput(t *testing.T, username, password string) *[]string {
	t.Helper()

	oldText, oldPass, oldPrintln := getSimpleText, getPassword, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, printlnFn = oldText, oldPass, oldPrintln
	})

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(password), nil
	}

	var printed []string
	printlnFn = func(args ...any) (int, error) {
		printed = append(printed, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	return &printed
}

func TestApp_Register(t *testing.T) {
	api := &fakeAPI{}
	printed := stubInput(t, "alice", "pass123")

	a := &App{api: api}
	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, "alice", api.gotUser)
	assert.Equal(t, "pass123", api.gotPass)
	assert.Contains(t, *printed, "Success!")
}

func TestApp_Register_UsernameTaken(t *testing.T) {
	api := &fakeAPI{registerErr: client.ErrUsernameTaken}
	printed := stubInput(t, "alice", "pass123")

	a := &App{api: api}
	err := a.Register(context.Background())

	assert.ErrorIs(t, err, client.ErrUsernameTaken)
	assert.Contains(t, *printed, "Username already exists, pick another one")
}

func TestApp_Login(t *testing.T) {
	api := &fakeAPI{loginToken: "signed-token"}
	stubInput(t, "alice", "pass123")

	a := &App{api: api}
	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "signed-token", a.token)
	assert.Equal(t, "alice", a.userName)
}

func TestApp_Login_InvalidCredentials(t *testing.T) {
	api := &fakeAPI{loginErr: client.ErrInvalidCredentials}
	printed := stubInput(t, "alice", "wrong")

	a := &App{api: api}
	err := a.Login(context.Background())

	assert.ErrorIs(t, err, client.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, *printed, "Invalid username or password")
}

func TestApp_Logout(t *testing.T) {
	stubInput(t, "", "")

	a := &App{api: &fakeAPI{}, token: "signed-token", userName: "alice"}
	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.userName)
}

func TestApp_ShowToken(t *testing.T) {
	printed := stubInput(t, "", "")

	a := &App{api: &fakeAPI{}}
	require.NoError(t, a.ShowToken(context.Background()))
	assert.Contains(t, *printed, "Not logged in")

	a.token = "signed-token"
	require.NoError(t, a.ShowToken(context.Background()))
	assert.Contains(t, *printed, "signed-token")
}
