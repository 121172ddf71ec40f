package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.True(t, ComparePassword(hash, "hunter2"))
	assert.False(t, ComparePassword(hash, "hunter3"))
	assert.False(t, ComparePassword("not-a-hash", "hunter2"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, ComparePassword(first, "same-password"))
	assert.True(t, ComparePassword(second, "same-password"))
}
