// assessmentctl 管理命令：迁移表结构、维护教师账号、写入演示数据。
//
// Usage:
//
//	assessmentctl migrate
//	assessmentctl teacher add --name "Ali" --email ali@example.com --password secret --hash
//	assessmentctl teacher hash-passwords
//	assessmentctl seed --confirm
package main

import (
	"assessment_backend/internal/config"
	"assessment_backend/pkg/database"
	"assessment_backend/pkg/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configDir string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assessmentctl",
		Short:         "Admin tasks for the assessment backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "configs", "config directory")

	root.AddCommand(newMigrateCmd(), newTeacherCmd(), newSeedCmd())
	return root
}

// openDB 加载配置并连接数据库，migrate 为 true 时同步表结构
func openDB(migrate bool) (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, migrate)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB(true)
			if err != nil {
				return err
			}
			defer closeDB(db)

			fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
			return nil
		},
	}
}
