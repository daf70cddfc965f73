package fairness

import (
	"bytes"
	"testing"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit(t *testing.T) {
	engine := NewEngine()

	hash, seed, err := engine.Commit()
	require.NoError(t, err)
	assert.Len(t, seed, 64)
	assert.Len(t, hash, 64)
	assert.Equal(t, HashSeed(seed), hash)
	assert.True(t, Verify(hash, seed))

	hash2, seed2, err := engine.Commit()
	require.NoError(t, err)
	assert.NotEqual(t, seed, seed2)
	assert.NotEqual(t, hash, hash2)
}

func TestCommitUsesInjectedSource(t *testing.T) {
	engine := &Engine{Rand: bytes.NewReader(bytes.Repeat([]byte{0xab}, 32))}

	_, seed, err := engine.Commit()
	require.NoError(t, err)
	assert.Equal(t, string(bytes.Repeat([]byte("ab"), 32)), seed)

	_, _, err = engine.Commit()
	assert.Error(t, err, "exhausted source must fail instead of returning a short seed")
}

func TestHashSeedKnownVector(t *testing.T) {
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		HashSeed("abc"))
}

func TestVerify(t *testing.T) {
	seed := "server-seed"
	hash := HashSeed(seed)

	tests := []struct {
		name string
		hash string
		seed string
		want bool
	}{
		{name: "matching_seed", hash: hash, seed: seed, want: true},
		{name: "upper_case_hash", hash: string(bytes.ToUpper([]byte(hash))), seed: seed, want: true},
		{name: "different_seed", hash: hash, seed: "server-seed2", want: false},
		{name: "empty_seed", hash: hash, seed: "", want: false},
		{name: "truncated_hash", hash: hash[:10], seed: seed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify(tt.hash, tt.seed))
		})
	}
}

func TestDeriveOutcomeDeterministic(t *testing.T) {
	for nonce := int64(0); nonce < 50; nonce++ {
		first, err := DeriveOutcome("s", "c", nonce, 3)
		require.NoError(t, err)
		second, err := DeriveOutcome("s", "c", nonce, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 3)
	}
}

func TestDeriveOutcomeMatchesLeadingBytes(t *testing.T) {
	digest := HashSeed("a:b:0")
	lead := digest[:8]

	var want uint64
	for _, ch := range lead {
		want <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			want |= uint64(ch - '0')
		default:
			want |= uint64(ch-'a') + 10
		}
	}

	got, err := DeriveOutcome("a", "b", 0, 1000003)
	require.NoError(t, err)
	assert.Equal(t, int(want%1000003), got)
}

func TestDeriveOutcomeSensitiveToInputs(t *testing.T) {
	seen := map[int]bool{}
	for nonce := int64(0); nonce < 200; nonce++ {
		v, err := DeriveOutcome("server", "client", nonce, 3)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "all three outcomes should appear over 200 nonces")
}

func TestDeriveOutcomeRejectsModulus(t *testing.T) {
	for _, m := range []int{0, -3} {
		_, err := DeriveOutcome("s", "c", 0, m)
		require.Error(t, err)
		assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
	}
}

func TestClientSeed(t *testing.T) {
	engine := NewEngine()

	generated, err := engine.ClientSeed("")
	require.NoError(t, err)
	assert.Len(t, generated, 32)

	supplied, err := engine.ClientSeed("  lucky  ")
	require.NoError(t, err)
	assert.Equal(t, "lucky", supplied)

	_, err = engine.ClientSeed("a:b")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
}
