package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserNameFromEmail(t *testing.T) {
	assert.Equal(t, "dana.levi", UserNameFromEmail("dana.levi@example.com"))
	assert.Equal(t, "plain", UserNameFromEmail("plain"))
}

func TestToday(t *testing.T) {
	assert.Equal(t, "2024-03-09", Today(time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)))
}

func TestTabTokenRoundTrip(t *testing.T) {
	token := GenerateTabToken()
	parsed, err := ParseTabToken(" " + token.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, token, parsed)

	_, err = ParseTabToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("12345678")
	require.NoError(t, err)
	assert.NotEqual(t, "12345678", hash)
	assert.True(t, CheckPasswordHash("12345678", hash))
	assert.False(t, CheckPasswordHash("87654321", hash))
}
