package repo

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-micropost/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Follow{}, &domain.Post{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// 内存库单连接，避免 :memory: 在多连接下各自为政
	sqlDB.SetMaxOpenConns(1)
	return db
}

func seedUser(t *testing.T, r *UserRepo, id, email string) *domain.User {
	t.Helper()
	u := &domain.User{ID: id, Email: email, Name: "User " + id, PasswordDigest: "x"}
	if err := r.Create(u); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return u
}
