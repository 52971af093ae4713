package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormToken_SignAndParse(t *testing.T) {
	ft := NewFormToken("secret")
	sessionID := uuid.New()

	signed, err := ft.Sign(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := ft.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestFormToken_Parse_WrongKey(t *testing.T) {
	signed, err := NewFormToken("secret").Sign(uuid.New())
	require.NoError(t, err)

	_, err = NewFormToken("other").Parse(signed)
	require.Error(t, err)
}

func TestFormToken_Parse_Garbage(t *testing.T) {
	_, err := NewFormToken("secret").Parse("not-a-token")
	require.Error(t, err)
}

func TestFormToken_Parse_MissingSessionID(t *testing.T) {
	// token signed with the right key but no sid claim
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	signed, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewFormToken("secret").Parse(signed)
	require.Error(t, err)
}
