// Package testutil 测试用的内存数据库与配置
package testutil

import (
	"assessment_backend/internal/config"
	"assessment_backend/pkg/database"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试独立的 SQLite 内存库，已完成表结构迁移
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库在最后一个连接关闭时销毁
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Location 测试统一使用的业务时区
func Location() *time.Location {
	return time.FixedZone("PKT", 5*60*60)
}

// NewConfig 测试用配置：本地存储写入临时目录，不启用 Redis 与追踪
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Server: config.ServerConfig{
			Port:         "0",
			Mode:         "test",
			Timezone:     "Asia/Karachi",
			LegacyRoutes: true,
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Analytics: config.AnalyticsConfig{
			CacheTTL: time.Minute,
		},
	}
}
