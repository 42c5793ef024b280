package mysql

import (
	"testing"
	"time"

	bookDomain "booklend/internal/domain/book"
	orderDomain "booklend/internal/domain/order"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly account schema only for tests (no ENUM) ---

type accountSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	AccountID string    `gorm:"column:account_id;size:32;uniqueIndex"`
	Name      string    `gorm:"column:name;size:64;uniqueIndex:ux_accounts_kind_name,priority:2"`
	Password  string    `gorm:"column:password;size:128"`
	Kind      string    `gorm:"column:kind;type:text;uniqueIndex:ux_accounts_kind_name,priority:1"` // ← no enum
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (accountSQLite) TableName() string { return "accounts" }

// openTestDB creates an in-memory sqlite DB. The account table is migrated
// from the sqlite-safe shadow model; books and orders have no MySQL-only
// column types and migrate from the domain models directly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&accountSQLite{}, &bookDomain.Book{}, &orderDomain.Order{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedBook(t *testing.T, db *gorm.DB, name, author string, available bool) *bookDomain.Book {
	t.Helper()
	b := &bookDomain.Book{Name: name, Author: author, Available: available}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed book: %v", err)
	}
	return b
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
