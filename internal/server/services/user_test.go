package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/server/auth"
	"github.com/reflecta-app/reflecta/internal/server/config"
)

func newUserService(m *fakeManager) *UserService {
	cfg := &config.Config{SecretKey: "test-secret", TokenValidityDuration: time.Hour}
	return NewUserService(nil, m, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newUserService(m)
	ctx := context.Background()

	regToken, err := s.Register(ctx, "Alice@Example.com", "pa55word")
	require.NoError(t, err)
	require.NotEmpty(t, regToken)

	// Login is case-insensitive on the email.
	loginToken, err := s.Login(ctx, "alice@example.com", "pa55word")
	require.NoError(t, err)

	regID, err := auth.GetUserIDFromToken(regToken, []byte("test-secret"))
	require.NoError(t, err)
	loginID, err := auth.GetUserIDFromToken(loginToken, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, regID, loginID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newUserService(m)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice@example.com", "pa55word")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice@example.com", "other")
	assert.ErrorIs(t, err, common.ErrEmailAlreadyTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newUserService(m)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice@example.com", "pa55word")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newUserService(m)

	_, err := s.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}
