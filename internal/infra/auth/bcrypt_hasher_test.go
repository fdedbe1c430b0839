package auth

import (
	"strings"
	"testing"

	"hobbyexplorer/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "ultrasecure"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Verify(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("ultrasecure")
	assert.NoError(t, err)
	second, err := hasher.Hash("ultrasecure")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("ultrasecure", first))
	assert.True(t, hasher.Verify("ultrasecure", second))
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "ultrasecure"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Verify(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Verify("not-the-password", hash))

	// Test empty password
	assert.False(t, hasher.Verify("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Verify(password, "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("ultrasecure")
	assert.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected int
	}{
		{name: "configured cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, expected: 5},
		{name: "zero falls back to default", cfg: &config.Config{Auth: &config.AuthConfig{}}, expected: bcrypt.DefaultCost},
		{name: "too high falls back to default", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, expected: bcrypt.DefaultCost},
		{name: "missing auth section", cfg: &config.Config{}, expected: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, hasher.cost)
		})
	}
}

func TestBcryptHasher_PasswordAtLengthBounds(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// 8 and 40 characters are the accepted password lengths.
	for _, password := range []string{"12345678", "abcdefghijabcdefghijabcdefghijabcdefghij"} {
		hash, err := hasher.Hash(password)
		assert.NoError(t, err)
		assert.True(t, hasher.Verify(password, hash))
	}
}

func TestBcryptHasher_MultibytePasswordOverBcryptLimit(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// 40 characters, 80 bytes.
	password := strings.Repeat("é", 40)
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.True(t, hasher.Verify(password, hash))
	assert.False(t, hasher.Verify(strings.Repeat("é", 35), hash))

	// Only the first 72 bytes take part, as with the stored hashes of other bcrypt clients.
	assert.True(t, hasher.Verify(strings.Repeat("é", 36)+"tail", hash))
}
