// Package testkit provides the shared plumbing for Vanik's tests: an
// isolated in-memory database wired into the application's global
// connection, plus helpers for driving handlers with the url-encoded
// form requests a browser would send.
package testkit

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/vanik/pkg/cache"
	"github.com/shashiranjanraj/vanik/pkg/database"
)

// OpenDB opens a fresh in-memory SQLite database, migrates the given
// models into it and installs it as the application connection until the
// test ends. Every test gets its own database; nothing leaks between
// them.
func OpenDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("testkit: open sqlite: %v", err)
	}

	// An in-memory SQLite database lives and dies with its connection;
	// a second pooled connection would see an empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("testkit: sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("testkit: migrate: %v", err)
		}
	}

	// The cache outlives the per-test database; rows cached by an earlier
	// test must not be served against this one.
	_ = cache.Flush()

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})

	return db
}
