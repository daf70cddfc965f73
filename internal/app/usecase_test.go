package app

import (
	"testing"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCasinoConfig_HouseEdge(t *testing.T) {
	tests := []struct {
		name string
		bps  *int
		want int
	}{
		{"unset keeps default", nil, 500},
		{"zero disables the edge", intPtr(0), 0},
		{"explicit rate", intPtr(250), 250},
		{"negative falls back", intPtr(-1), 500},
		{"above 100% falls back", intPtr(10001), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := casinoConfig(&config.Config{Casino: config.CasinoConfig{HouseEdgeBps: tt.bps}})
			assert.Equal(t, tt.want, cfg.HouseEdgeBps)
		})
	}
}

func TestMatchConfig_Fee(t *testing.T) {
	tests := []struct {
		name string
		bps  *int
		want int
	}{
		{"unset keeps default", nil, 500},
		{"zero disables the fee", intPtr(0), 0},
		{"full pot", intPtr(10000), 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := matchConfig(&config.Config{Match: config.MatchConfig{FeeBps: tt.bps}})
			assert.Equal(t, tt.want, cfg.FeeBps)
		})
	}
}
