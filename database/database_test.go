package database

import (
	"testing"

	"vintagevault-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a per-test in-memory database. The named shared
// cache keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	m := db.Migrator()
	if !m.HasTable(&models.Item{}) {
		t.Error("expected items table")
	}
	if !m.HasTable(&models.CartLine{}) {
		t.Error("expected cart_lines table")
	}
	if !m.HasIndex(&models.CartLine{}, "idx_cart_session_item") {
		t.Error("expected unique (session_id, item_id) index")
	}
}

func TestCartLineUniqueIndexEnforced(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	item := models.Item{Name: "Fedora", Category: "Hats", Price: 40, SellingPrice: 40}
	if err := db.Create(&item).Error; err != nil {
		t.Fatal(err)
	}

	first := models.CartLine{SessionID: "s1", ItemID: item.ID, Quantity: 1}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first line should insert: %v", err)
	}

	dup := models.CartLine{SessionID: "s1", ItemID: item.ID, Quantity: 1}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatal("duplicate (session, item) line should violate the unique index")
	}
}
