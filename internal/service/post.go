package service

import (
	"context"

	"content-hub/internal/domain"
	"content-hub/internal/repository"
)

const resourcePost = "post"

// CreatePostInput 是已通过校验的创建请求。
type CreatePostInput struct {
	Title     string
	Body      string
	Published bool
	AuthorID  int64
}

// UpdatePostInput 是已通过校验的部分更新请求，nil 字段不修改。
type UpdatePostInput struct {
	Title     *string
	Body      *string
	Published *bool
}

// PostService 负责文章相关的业务逻辑。
// 与账户一样，不做归属检查。
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService 创建 PostService 实例。
func NewPostService(postRepo repository.PostRepository) *PostService {
	if postRepo == nil {
		panic("PostRepository cannot be nil for PostService")
	}
	return &PostService{postRepo: postRepo}
}

// List 返回所有文章及其作者。
func (s *PostService) List(ctx context.Context) ([]domain.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		opLog(resourcePost, "list").WithError(err).Error("Failed to list posts")
		return nil, ErrInternalServer
	}
	return posts, nil
}

// Get 返回文章、作者和评论。
func (s *PostService) Get(ctx context.Context, id int64) (*domain.PostDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidPostID
	}
	logCtx := opLog(resourcePost, "get").WithField("post_id", id)

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepoError(err, repoErrorMapping{notFound: ErrPostNotFound})
		logRepoFailure(logCtx, err, mapped)
		return nil, mapped
	}
	return post, nil
}

// Create 创建新文章。作者不存在时由数据库外键拒绝。
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*domain.PostView, error) {
	logCtx := opLog(resourcePost, "create").WithField("author_id", in.AuthorID)

	post := &domain.Post{
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
		AuthorID:  in.AuthorID,
	}
	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		mapped := mapRepoError(err, repoErrorMapping{foreignKey: ErrAuthorNotFound})
		logRepoFailure(logCtx, err, mapped)
		return nil, mapped
	}

	logCtx.WithField("post_id", created.ID).Info("Post created successfully")
	return created, nil
}

// Update 只修改请求中出现的字段。
func (s *PostService) Update(ctx context.Context, id int64, in UpdatePostInput) (*domain.PostView, error) {
	if id <= 0 {
		return nil, ErrInvalidPostID
	}
	logCtx := opLog(resourcePost, "update").WithField("post_id", id)

	updated, err := s.postRepo.Update(ctx, id, repository.PostChanges{
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
	})
	if err != nil {
		mapped := mapRepoError(err, repoErrorMapping{notFound: ErrPostNotFound})
		logRepoFailure(logCtx, err, mapped)
		return nil, mapped
	}

	logCtx.Info("Post updated successfully")
	return updated, nil
}

// Delete 删除文章，评论随之级联删除。
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPostID
	}
	logCtx := opLog(resourcePost, "delete").WithField("post_id", id)

	if err := s.postRepo.Delete(ctx, id); err != nil {
		mapped := mapRepoError(err, repoErrorMapping{notFound: ErrPostNotFound})
		logRepoFailure(logCtx, err, mapped)
		return mapped
	}

	logCtx.Info("Post deleted successfully")
	return nil
}
