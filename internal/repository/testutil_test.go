package repository

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

// openTestDB 打开一个测试用的内存数据库并建表
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	// 内存库限制单连接，避免表锁问题
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.MovieFile{},
		&model.Category{},
		&model.Tag{},
		&model.MovieCategory{},
		&model.MovieTag{},
		&model.Comment{},
		&model.WatchHistory{},
		&model.Favorite{},
		&model.GossipPost{},
		&model.GossipMedia{},
		&model.UserGossipProgress{},
		&model.SubscriptionPlan{},
		&model.RedemptionCode{},
		&model.Transaction{},
		&model.Banner{},
		&model.AppSetting{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	return db
}
