package session

import (
	"context"
	"errors"
	"testing"

	"github.com/deathrjj/userhub-tui/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestSignInAndOut(t *testing.T) {
	auth := new(mockAuthenticator)
	auth.On("Login", mock.Anything, "eve.holt@reqres.in", "cityslicka").Return("QpwL5tke4Pnpja7X4", nil).Once()
	s := New(auth)

	assert.False(t, s.Authenticated())

	require.NoError(t, s.SignIn(context.Background(), Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "eve.holt@reqres.in", s.Email())

	s.SignOut()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Email())
	auth.AssertExpectations(t)
}

func TestSignInValidation(t *testing.T) {
	auth := new(mockAuthenticator)
	s := New(auth)

	err := s.SignIn(context.Background(), Credentials{Email: "eve"})
	var ve *forms.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid email address", ve.Message("email"))
	assert.Equal(t, "Password is required", ve.Message("password"))
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignInFailure(t *testing.T) {
	auth := new(mockAuthenticator)
	boom := errors.New("user not found")
	auth.On("Login", mock.Anything, "nobody@example.com", "x").Return("", boom).Once()
	s := New(auth)

	assert.ErrorIs(t, s.SignIn(context.Background(), Credentials{Email: "nobody@example.com", Password: "x"}), boom)
	assert.False(t, s.Authenticated())
}
