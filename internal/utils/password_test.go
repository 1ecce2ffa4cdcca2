package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("wolf-den-42")
	require.NoError(t, err)
	assert.NotEqual(t, "wolf-den-42", hash)

	assert.True(t, CheckPassword(hash, "wolf-den-42"))
	assert.False(t, CheckPassword(hash, "wolf-den-43"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
