package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("password1")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", digest)
	assert.True(t, strings.HasPrefix(digest, "$2a$"))
	assert.True(t, h.Verify("password1", digest))
	assert.False(t, h.Verify("password2", digest))
	assert.False(t, h.Verify("password1", "not-a-digest"))
}

func TestBcrypt_SaltsEveryDigest(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("password1")
	require.NoError(t, err)
	second, err := h.Hash("password1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcrypt_Cost(t *testing.T) {
	assert.Equal(t, 12, NewBcrypt(12).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
}

func TestBcrypt_TooLong(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
