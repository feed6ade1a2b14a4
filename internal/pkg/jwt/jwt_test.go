package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken("dev-admin", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "dev-admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken("dev-admin", "admin")
	assert.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	token, err := New("test-secret", -time.Minute).GenerateToken("dev-admin", "admin")
	assert.NoError(t, err)

	_, err = New("test-secret", -time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}
