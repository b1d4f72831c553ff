package setup

import (
	"fmt"

	"content-hub/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MigrateDB 根据领域模型创建或更新表结构。
// 外键约束来自模型上的 constraint 标签：
// 账户被文章或评论引用时禁止删除，删除文章时级联删除评论。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	// 顺序与外键依赖一致
	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.Post{},
		&domain.Comment{},
	); err != nil {
		logrus.Errorf("Failed to auto-migrate tables: %v", err)
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
