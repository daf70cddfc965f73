package dbtest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresDSNEnv names the keyword/value DSN of a scratch postgres server.
const PostgresDSNEnv = "PONTIFF_TEST_POSTGRES_DSN"

// NewPostgres returns a migrated postgres database living in a schema private to the test.
// Unlike New it uses a real connection pool, so concurrent transactions contend on row locks.
// The test is skipped when PostgresDSNEnv is unset.
func NewPostgres(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv(PostgresDSNEnv))
	if dsn == "" {
		t.Skipf("%s not set", PostgresDSNEnv)
	}

	admin, err := gorm.Open(postgres.Open(dsn), database.GormConfig())
	require.NoError(t, err)
	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	require.NoError(t, admin.Exec(fmt.Sprintf("CREATE SCHEMA %s", schema)).Error)

	db, err := gorm.Open(postgres.Open(fmt.Sprintf("%s search_path=%s", dsn, schema)), database.GormConfig())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = admin.Exec(fmt.Sprintf("DROP SCHEMA %s CASCADE", schema)).Error
		if sqlDB, err := admin.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
