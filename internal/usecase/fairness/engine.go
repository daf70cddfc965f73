// Package fairness implements commit-reveal seeds and deterministic outcome derivation.
package fairness

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
)

const (
	serverSeedBytes = 32
	clientSeedBytes = 16
	maxClientSeed   = 128
)

// Engine generates seeds from a random source. The zero value reads crypto/rand.
type Engine struct {
	Rand io.Reader
}

// NewEngine creates an engine backed by crypto/rand
func NewEngine() *Engine {
	return &Engine{Rand: rand.Reader}
}

func (e *Engine) random(n int) (string, error) {
	src := e.Rand
	if src == nil {
		src = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Commit returns the hash to publish and the seed to keep secret until reveal
func (e *Engine) Commit() (hash string, seed string, err error) {
	seed, err = e.random(serverSeedBytes)
	if err != nil {
		return "", "", err
	}
	return HashSeed(seed), seed, nil
}

// ClientSeed returns supplied, or a fresh random seed when supplied is empty
func (e *Engine) ClientSeed(supplied string) (string, error) {
	supplied = strings.TrimSpace(supplied)
	if supplied == "" {
		return e.random(clientSeedBytes)
	}
	if len(supplied) > maxClientSeed || strings.Contains(supplied, ":") {
		return "", domain.NewInvalidInputError("client_seed", "must be at most 128 characters without ':'")
	}
	return supplied, nil
}

// HashSeed returns the hex SHA-256 of a server seed
func HashSeed(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// DeriveOutcome maps (serverSeed, clientSeed, nonce) to [0, modulus). It hashes
// "serverSeed:clientSeed:nonce" and reduces the leading 4 bytes, so the result is
// reproducible by anyone holding the revealed seed.
func DeriveOutcome(serverSeed, clientSeed string, nonce int64, modulus int) (int, error) {
	if modulus <= 0 {
		return 0, domain.NewInvalidInputError("modulus", "must be positive")
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", serverSeed, clientSeed, nonce)))
	return int(binary.BigEndian.Uint32(sum[:4]) % uint32(modulus)), nil
}

// Verify reports whether seed hashes to hash
func Verify(hash, seed string) bool {
	computed := HashSeed(seed)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(strings.ToLower(hash))) == 1
}
