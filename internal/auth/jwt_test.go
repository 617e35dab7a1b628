package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return NewService(nil, []byte("access-secret"), []byte("refresh-secret"), false)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	s := testService()

	tok, err := s.IssueAccessToken("alice")
	require.NoError(t, err)

	username, err := s.VerifyToken(tok, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestIssueAndVerifyRefreshToken(t *testing.T) {
	s := testService()

	tok, err := s.IssueRefreshToken("alice")
	require.NoError(t, err)

	username, err := s.VerifyToken(tok, RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestWrongKindIsInvalid(t *testing.T) {
	s := testService()

	access, err := s.IssueAccessToken("alice")
	require.NoError(t, err)

	_, err = s.VerifyToken(access, RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	refresh, err := s.IssueRefreshToken("alice")
	require.NoError(t, err)

	_, err = s.VerifyToken(refresh, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	s := testService()

	tok, err := s.signToken("alice", AccessToken, -time.Minute)
	require.NoError(t, err)

	_, err = s.VerifyToken(tok, AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestMalformedToken(t *testing.T) {
	s := testService()

	_, err := s.VerifyToken("not.a.token", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestForeignSignatureIsInvalid(t *testing.T) {
	other := NewService(nil, []byte("other-secret"), []byte("other-refresh"), false)
	tok, err := other.IssueAccessToken("alice")
	require.NoError(t, err)

	_, err = testService().VerifyToken(tok, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, VerifyPassword("pw1", hash))
	assert.False(t, VerifyPassword("pw2", hash))
}
