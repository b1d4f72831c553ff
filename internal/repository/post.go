package repository

import (
	"context"

	"content-hub/internal/domain"
)

// PostChanges 描述一次部分更新。nil 字段保持原值不变。
type PostChanges struct {
	Title     *string
	Body      *string
	Published *bool
}

// IsEmpty 报告是否没有任何字段需要修改。
func (c PostChanges) IsEmpty() bool {
	return c.Title == nil && c.Body == nil && c.Published == nil
}

// PostRepository 定义了文章数据的存储和检索操作。
type PostRepository interface {
	// List 返回所有文章，附带作者投影 {id, name, email}。
	List(ctx context.Context) ([]domain.PostView, error)

	// FindByID 返回文章、作者投影以及评论 (每条评论附带作者 {id, name})。
	// 如果文章不存在，返回 ErrPostNotFound。
	FindByID(ctx context.Context, id int64) (*domain.PostDetail, error)

	// Create 插入新文章。AuthorID 不存在时返回 ErrForeignKeyViolation。
	Create(ctx context.Context, post *domain.Post) (*domain.PostView, error)

	// Update 只修改 changes 中非 nil 的字段。
	// 如果文章不存在，返回 ErrPostNotFound。
	Update(ctx context.Context, id int64, changes PostChanges) (*domain.PostView, error)

	// Delete 删除文章及其评论。文章不存在时返回 ErrPostNotFound。
	Delete(ctx context.Context, id int64) error
}
