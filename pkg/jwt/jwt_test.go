package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secret", "ana", "admin", "inventario-stock", 5)
	require.NoError(t, err)

	sub, role, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "ana", sub)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secret", "ana", "admin", "", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := Generate("secret", "ana", "admin", "", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "ana", "admin", "", 5)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, _, err = Parse("", "x")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
