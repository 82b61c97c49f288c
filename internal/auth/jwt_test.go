package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Issue(5, false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.False(t, claims.Staff)
}

func TestManager_StaffClaim(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Issue(9, true)
	assert.NoError(t, err)

	claims, err := manager.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.True(t, claims.Staff)
}

func TestManager_Parse_InvalidToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	claims, err := manager.Parse("not-a-token")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(5, false)
	assert.NoError(t, err)

	claims, err := verifier.Parse(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.Issue(5, false)
	assert.NoError(t, err)

	claims, err := manager.Parse(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
