package wppass_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/wppass"
)

func TestCheckPassword_KnownHashes(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			// Reference vector from the upstream phpass test program.
			name:     "portable hash, reference vector",
			password: "test12345",
			hash:     "$P$9IQRaTwmfeRo7ud9Fh4E2PdI0S3r.L0",
			want:     true,
		},
		{
			name:     "portable hash, generated",
			password: "Senha123",
			hash:     "$P$B12345678byVuKBCeYFG.3zA1DoORN.",
			want:     true,
		},
		{
			name:     "portable hash with $H$ magic",
			password: "abrigo2020",
			hash:     "$H$9saltsalttxoee4q8YVqNHt/ikX3EM1",
			want:     true,
		},
		{
			name:     "raw md5 hex",
			password: "Senha123",
			hash:     "10a9c136d796bab18d3e144092a4f20a",
			want:     true,
		},
		{
			name:     "raw md5 hex, uppercase stored",
			password: "test12345",
			hash:     "C06DB68E819BE6EC3D26C6038D8E8D1F",
			want:     true,
		},
		{
			name:     "portable hash, wrong password",
			password: "test12346",
			hash:     "$P$9IQRaTwmfeRo7ud9Fh4E2PdI0S3r.L0",
			want:     false,
		},
		{
			name:     "raw md5, wrong password",
			password: "senha123",
			hash:     "10a9c136d796bab18d3e144092a4f20a",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wppass.CheckPassword(tt.password, tt.hash))
		})
	}
}

// Any single-character mutation of a matching password must be rejected.
func TestCheckPassword_Mutations(t *testing.T) {
	const password = "Senha123"
	hash := wppass.HashPortable(password, "mvabsalt", 8)
	assert.True(t, wppass.CheckPassword(password, hash))

	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		assert.False(t, wppass.CheckPassword(string(mutated), hash),
			"mutation at index %d should not verify", i)
	}
}

func TestCheckPassword_MalformedHashes(t *testing.T) {
	malformed := []string{
		"",
		"x",
		"$P$",
		"$P$9tooshort",
		"$P$" + strings.Repeat("A", 64),
		// Iteration character below the accepted range.
		"$P$.IQRaTwmfeRo7ud9Fh4E2PdI0S3r.L0",
		// Unknown magic.
		"$S$9IQRaTwmfeRo7ud9Fh4E2PdI0S3r.L0",
		// 32 chars but not hex.
		"zz9c136d796bab18d3e144092a4f20zz",
		// bcrypt hashes are not a legacy format this package accepts.
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		string([]byte{0x00, 0xff, 0x10, 0x80}),
		strings.Repeat("\xff", 34),
	}

	for _, h := range malformed {
		assert.NotPanics(t, func() {
			assert.False(t, wppass.CheckPassword("whatever", h), "hash %q should not verify", h)
		})
	}
}

func TestHashPortable(t *testing.T) {
	hash := wppass.HashPortable("p@ssw0rd", "12345678", 8)
	assert.Len(t, hash, 34)
	assert.True(t, strings.HasPrefix(hash, "$P$612345678"))
	assert.True(t, wppass.CheckPassword("p@ssw0rd", hash))

	// Invalid parameters yield no hash rather than a bad one.
	assert.Empty(t, wppass.HashPortable("x", "short", 8))
	assert.Empty(t, wppass.HashPortable("x", "12345678", 31))
}
