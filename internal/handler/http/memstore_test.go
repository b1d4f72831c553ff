package http_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"content-hub/internal/domain"
	"content-hub/internal/repository"
)

// memStore 是测试用的内存存储，执行与数据库相同的唯一约束和外键规则：
// 邮箱唯一，文章和评论引用的账户必须存在，仍被引用的账户不能删除，删除文章时级联删除评论。
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	clock    time.Time
	calls    int
	accounts map[int64]*domain.Account
	posts    map[int64]*domain.Post
	comments map[int64]*domain.Comment
}

func newMemStore() *memStore {
	return &memStore{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		accounts: map[int64]*domain.Account{},
		posts:    map[int64]*domain.Post{},
		comments: map[int64]*domain.Comment{},
	}
}

// Calls 返回存储被访问的次数
func (s *memStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// addComment 直接写入一条评论，评论没有对外接口
func (s *memStore) addComment(postID, authorID int64, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tick()
	id := s.id()
	s.comments[id] = &domain.Comment{ID: id, Body: body, AuthorID: authorID, PostID: postID, CreatedAt: now}
}

// 以下方法要求调用方持有锁

func (s *memStore) enter() {
	s.mu.Lock()
	s.calls++
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) emailTaken(email string, except int64) bool {
	for _, a := range s.accounts {
		if a.Email == email && a.ID != except {
			return true
		}
	}
	return false
}

func (s *memStore) withAuthor(p domain.Post) *domain.Post {
	if a, ok := s.accounts[p.AuthorID]; ok {
		author := *a
		p.Author = &author
	}
	return &p
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type memAccounts struct{ *memStore }

var _ repository.AccountRepository = memAccounts{}

func (s memAccounts) List(ctx context.Context) ([]domain.AccountSummary, error) {
	s.enter()
	defer s.mu.Unlock()
	out := make([]domain.AccountSummary, 0, len(s.accounts))
	for _, id := range sortedIDs(s.accounts) {
		out = append(out, s.accounts[id].Summary())
	}
	return out, nil
}

func (s memAccounts) FindByID(ctx context.Context, id int64) (*domain.AccountDetail, error) {
	s.enter()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("mem: find account: %w", repository.ErrNotFound)
	}
	account := *a
	account.Posts = nil
	for _, pid := range sortedIDs(s.posts) {
		if s.posts[pid].AuthorID == id {
			account.Posts = append(account.Posts, *s.posts[pid])
		}
	}
	detail := account.Detail()
	return &detail, nil
}

func (s memAccounts) Create(ctx context.Context, account *domain.Account) (*domain.AccountSummary, error) {
	s.enter()
	defer s.mu.Unlock()
	if s.emailTaken(account.Email, 0) {
		return nil, fmt.Errorf("mem: create account: %w", repository.ErrDuplicateEntry)
	}
	stored := *account
	stored.ID = s.id()
	stored.CreatedAt = s.tick()
	stored.UpdatedAt = stored.CreatedAt
	s.accounts[stored.ID] = &stored
	summary := stored.Summary()
	return &summary, nil
}

func (s memAccounts) Update(ctx context.Context, id int64, changes repository.AccountChanges) (*domain.AccountSummary, error) {
	s.enter()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("mem: update account: %w", repository.ErrNotFound)
	}
	if changes.IsEmpty() {
		summary := a.Summary()
		return &summary, nil
	}
	if changes.Email != nil && s.emailTaken(*changes.Email, id) {
		return nil, fmt.Errorf("mem: update account: %w", repository.ErrDuplicateEntry)
	}
	if changes.Name != nil {
		a.Name = changes.Name
	}
	if changes.Email != nil {
		a.Email = *changes.Email
	}
	a.UpdatedAt = s.tick()
	summary := a.Summary()
	return &summary, nil
}

func (s memAccounts) Delete(ctx context.Context, id int64) error {
	s.enter()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return fmt.Errorf("mem: delete account: %w", repository.ErrNotFound)
	}
	for _, p := range s.posts {
		if p.AuthorID == id {
			return fmt.Errorf("mem: delete account: %w", repository.ErrForeignKeyViolation)
		}
	}
	for _, c := range s.comments {
		if c.AuthorID == id {
			return fmt.Errorf("mem: delete account: %w", repository.ErrForeignKeyViolation)
		}
	}
	delete(s.accounts, id)
	return nil
}

type memPosts struct{ *memStore }

var _ repository.PostRepository = memPosts{}

func (s memPosts) List(ctx context.Context) ([]domain.PostView, error) {
	s.enter()
	defer s.mu.Unlock()
	out := make([]domain.PostView, 0, len(s.posts))
	for _, id := range sortedIDs(s.posts) {
		out = append(out, s.withAuthor(*s.posts[id]).View())
	}
	return out, nil
}

func (s memPosts) FindByID(ctx context.Context, id int64) (*domain.PostDetail, error) {
	s.enter()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("mem: find post: %w", repository.ErrNotFound)
	}
	post := s.withAuthor(*p)
	for _, cid := range sortedIDs(s.comments) {
		c := *s.comments[cid]
		if c.PostID != id {
			continue
		}
		if a, ok := s.accounts[c.AuthorID]; ok {
			author := *a
			c.Author = &author
		}
		post.Comments = append(post.Comments, c)
	}
	detail := post.Detail()
	return &detail, nil
}

func (s memPosts) Create(ctx context.Context, post *domain.Post) (*domain.PostView, error) {
	s.enter()
	defer s.mu.Unlock()
	if _, ok := s.accounts[post.AuthorID]; !ok {
		return nil, fmt.Errorf("mem: create post: %w", repository.ErrForeignKeyViolation)
	}
	stored := *post
	stored.ID = s.id()
	stored.CreatedAt = s.tick()
	stored.UpdatedAt = stored.CreatedAt
	s.posts[stored.ID] = &stored
	view := s.withAuthor(stored).View()
	return &view, nil
}

func (s memPosts) Update(ctx context.Context, id int64, changes repository.PostChanges) (*domain.PostView, error) {
	s.enter()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("mem: update post: %w", repository.ErrNotFound)
	}
	if !changes.IsEmpty() {
		if changes.Title != nil {
			p.Title = *changes.Title
		}
		if changes.Body != nil {
			p.Body = *changes.Body
		}
		if changes.Published != nil {
			p.Published = *changes.Published
		}
		p.UpdatedAt = s.tick()
	}
	view := s.withAuthor(*p).View()
	return &view, nil
}

func (s memPosts) Delete(ctx context.Context, id int64) error {
	s.enter()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return fmt.Errorf("mem: delete post: %w", repository.ErrNotFound)
	}
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	delete(s.posts, id)
	return nil
}
