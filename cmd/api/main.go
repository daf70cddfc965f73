// Package main Pontiff Ledger API
//
// Pontiff is the off-chain ledger behind an on-chain casino. It owns player balances and
// settles every game against an append-only transaction log:
//
//  1. Single-player rock-paper-scissors against the house, resolved with commit-reveal seeds.
//
//  2. Best-of PvP matches with escrowed stakes, a house fee and ELO ratings.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	_ "github.com/AniekanabasiUmoh/pontiff-protocol-sub002/docs"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/app"
)

// @title Pontiff Ledger API
// @version 1.0
// @description Off-chain casino ledger with provably fair games, PvP matches and ELO ratings.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
