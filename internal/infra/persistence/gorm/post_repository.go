package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"content-hub/internal/domain"
	"content-hub/internal/repository"
)

// GormPostRepository 是 PostRepository 接口的 GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository 创建 GormPostRepository 实例
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	if db == nil {
		panic("database connection cannot be nil for GormPostRepository")
	}
	return &GormPostRepository{db: db}
}

// 文章作者投影 {id, name, email}
func selectPostAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// 评论作者投影 {id, name}
func selectCommentAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// List 实现获取全部文章，附带作者
func (r *GormPostRepository) List(ctx context.Context) ([]domain.PostView, error) {
	var posts []domain.Post
	if err := r.db.WithContext(ctx).Preload("Author", selectPostAuthor).Find(&posts).Error; err != nil {
		return nil, translateError(err, "list posts")
	}
	views := make([]domain.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].View())
	}
	return views, nil
}

// FindByID 实现根据 ID 查找文章，附带作者与评论 (评论附带作者)
func (r *GormPostRepository) FindByID(ctx context.Context, id int64) (*domain.PostDetail, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).
		Preload("Author", selectPostAuthor).
		Preload("Comments").
		Preload("Comments.Author", selectCommentAuthor).
		First(&post, id).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("find post by id %d", id))
	}
	detail := post.Detail()
	return &detail, nil
}

// Create 实现创建文章，并在同一事务中读回作者投影
func (r *GormPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.PostView, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return tx.Preload("Author", selectPostAuthor).First(post, post.ID).Error
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("create post (author_id: %d)", post.AuthorID))
	}
	view := post.View()
	return &view, nil
}

// Update 实现部分更新
func (r *GormPostRepository) Update(ctx context.Context, id int64, changes repository.PostChanges) (*domain.PostView, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Author", selectPostAuthor).First(&post, id).Error; err != nil {
			return err
		}
		if changes.IsEmpty() {
			return nil
		}
		if err := tx.Model(&domain.Post{ID: id}).Updates(postUpdates(changes)).Error; err != nil {
			return err
		}
		post = domain.Post{}
		return tx.Preload("Author", selectPostAuthor).First(&post, id).Error
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("update post %d", id))
	}
	view := post.View()
	return &view, nil
}

// Delete 实现删除文章，评论由外键级联删除
func (r *GormPostRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Post{}, id)
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("delete post %d", id))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gorm: delete post %d: %w", id, repository.ErrPostNotFound)
	}
	return nil
}

func postUpdates(changes repository.PostChanges) map[string]interface{} {
	updates := make(map[string]interface{}, 3)
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Body != nil {
		updates["content"] = *changes.Body
	}
	if changes.Published != nil {
		updates["published"] = *changes.Published
	}
	return updates
}
