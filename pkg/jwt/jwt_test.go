package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "u1", "admin", "comparador-api", 5)
	require.NoError(t, err)

	uid, role, err := jwt.Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "u1", "admin", "x", 5)
	require.NoError(t, err)
	_, _, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "u1", "staff", "x", -1)
	require.NoError(t, err)
	_, _, err = jwt.Parse("s3cret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "admin", "x", 5)
	assert.Error(t, err)
}
