package database

import (
	"os"
	"testing"

	"steakz-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	err = db.Exec(`CREATE TABLE IF NOT EXISTS "users" (
		"id" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"email" TEXT NOT NULL UNIQUE,
		"password" TEXT NOT NULL,
		"role" TEXT DEFAULT 'CUSTOMER',
		"created_by_id" TEXT,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME
	)`).Error
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestCreateDefaultAdminNew(t *testing.T) {
	db := setupTestDB(t)
	os.Setenv("ADMIN_EMAIL", "testadmin@test.com")
	os.Setenv("ADMIN_PASSWORD", "testpassword123")
	defer os.Unsetenv("ADMIN_EMAIL")
	defer os.Unsetenv("ADMIN_PASSWORD")

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatal(err)
	}

	var user models.User
	if err := db.Where("email = ?", "testadmin@test.com").First(&user).Error; err != nil {
		t.Fatal("admin user not created")
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role ADMIN, got '%s'", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpassword123")); err != nil {
		t.Error("admin password should be stored as a bcrypt hash of ADMIN_PASSWORD")
	}
}

func TestCreateDefaultAdminAlreadyExists(t *testing.T) {
	db := setupTestDB(t)
	os.Setenv("ADMIN_EMAIL", "existing@test.com")
	os.Setenv("ADMIN_PASSWORD", "password123")
	defer os.Unsetenv("ADMIN_EMAIL")
	defer os.Unsetenv("ADMIN_PASSWORD")

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatal(err)
	}

	// Second call should skip without error.
	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatal(err)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "existing@test.com").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 admin, got %d", count)
	}
}

func TestCreateDefaultAdminFallbackCredentials(t *testing.T) {
	db := setupTestDB(t)
	os.Unsetenv("ADMIN_EMAIL")
	os.Unsetenv("ADMIN_PASSWORD")

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatal(err)
	}

	var user models.User
	if err := db.Where("email = ?", "admin@steakz.com").First(&user).Error; err != nil {
		t.Fatal("admin not created with the built-in address")
	}
}
