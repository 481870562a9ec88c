package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := Generate(42, "asha@college.edu", "CSE", RoleCaptain, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Validate(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "asha@college.edu", claims.Email)
	assert.Equal(t, "CSE", claims.Department)
	assert.Equal(t, RoleCaptain, claims.Role)
	assert.Equal(t, "apex-backend", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	signed, err := Generate(7, "x@y.z", "", RolePlayer, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Validate(signed, testSecret)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	signed, err := Generate(7, "x@y.z", "", RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Validate(signed, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateGarbageInput(t *testing.T) {
	_, err := Validate("", testSecret)
	assert.Error(t, err)

	_, err = Validate("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestValidateRejectsZeroUserID(t *testing.T) {
	signed, err := Generate(0, "x@y.z", "", RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Validate(signed, testSecret)
	assert.Error(t, err)
}
