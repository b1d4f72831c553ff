package repository

import (
	"context"

	"content-hub/internal/domain"
)

// AccountChanges 描述一次部分更新。nil 字段保持原值不变。
type AccountChanges struct {
	Name  *string
	Email *string
}

// IsEmpty 报告是否没有任何字段需要修改。
func (c AccountChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil
}

// AccountRepository 定义了账户数据的存储和检索操作。
// 每个方法对应一次逻辑上的存储调用，投影和关联加载由方法本身决定。
type AccountRepository interface {
	// List 返回所有账户的投影 (不含 secret)。
	List(ctx context.Context) ([]domain.AccountSummary, error)

	// FindByID 返回账户及其文章的简要投影。
	// 如果账户不存在，返回 ErrAccountNotFound。
	FindByID(ctx context.Context, id int64) (*domain.AccountDetail, error)

	// Create 插入新账户，ID 和时间戳由存储分配。
	// 邮箱重复时返回 ErrDuplicateEntry。
	Create(ctx context.Context, account *domain.Account) (*domain.AccountSummary, error)

	// Update 只修改 changes 中非 nil 的字段。
	// 如果账户不存在，返回 ErrAccountNotFound。
	Update(ctx context.Context, id int64, changes AccountChanges) (*domain.AccountSummary, error)

	// Delete 删除账户。账户不存在时返回 ErrAccountNotFound，
	// 仍拥有文章或评论时返回 ErrForeignKeyViolation。
	Delete(ctx context.Context, id int64) error
}
