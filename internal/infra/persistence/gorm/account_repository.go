package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"content-hub/internal/domain"
	"content-hub/internal/repository"
)

// accountColumns 是账户对外投影所需的列，永远不包含 password
var accountColumns = []string{"id", "email", "name", "created_at", "updated_at"}

// GormAccountRepository 是 AccountRepository 接口的 GORM 实现
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository 创建 GormAccountRepository 实例
// db *gorm.DB 通过依赖注入传入
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	if db == nil {
		panic("database connection cannot be nil for GormAccountRepository")
	}
	return &GormAccountRepository{db: db}
}

// List 实现获取全部账户
func (r *GormAccountRepository) List(ctx context.Context) ([]domain.AccountSummary, error) {
	var accounts []domain.Account
	if err := r.db.WithContext(ctx).Select(accountColumns).Find(&accounts).Error; err != nil {
		return nil, translateError(err, "list accounts")
	}
	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for i := range accounts {
		summaries = append(summaries, accounts[i].Summary())
	}
	return summaries, nil
}

// FindByID 实现根据 ID 查找账户，并预加载其文章的简要信息
func (r *GormAccountRepository) FindByID(ctx context.Context, id int64) (*domain.AccountDetail, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Select(accountColumns).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			// author_id 是关联回填所必需的
			return db.Select("id", "title", "published", "created_at", "author_id")
		}).
		First(&account, id).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("find account by id %d", id))
	}
	detail := account.Detail()
	return &detail, nil
}

// Create 实现创建账户。ID 与时间戳由数据库/GORM 回填。
func (r *GormAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.AccountSummary, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(account).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("create account (email: %s)", account.Email))
	}
	summary := account.Summary()
	return &summary, nil
}

// Update 实现部分更新。存在性检查、写入和重新读取在同一个事务中完成。
func (r *GormAccountRepository) Update(ctx context.Context, id int64, changes repository.AccountChanges) (*domain.AccountSummary, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select(accountColumns).First(&account, id).Error; err != nil {
			return err
		}
		if changes.IsEmpty() {
			return nil
		}
		if err := tx.Model(&domain.Account{ID: id}).Updates(accountUpdates(changes)).Error; err != nil {
			return err
		}
		return tx.Select(accountColumns).First(&account, id).Error
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("update account %d", id))
	}
	summary := account.Summary()
	return &summary, nil
}

// Delete 实现删除账户
func (r *GormAccountRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Account{}, id)
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("delete account %d", id))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gorm: delete account %d: %w", id, repository.ErrAccountNotFound)
	}
	return nil
}

// accountUpdates 只包含请求中出现的字段，使用 map 以便零值也能写入
func accountUpdates(changes repository.AccountChanges) map[string]interface{} {
	updates := make(map[string]interface{}, 2)
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Email != nil {
		updates["email"] = *changes.Email
	}
	return updates
}
