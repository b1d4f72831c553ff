package gormpersistence_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"content-hub/internal/domain"
	gormpersistence "content-hub/internal/infra/persistence/gorm"
	"content-hub/internal/repository"
)

// newMockDB 使用 sqlmock 构造一个 MySQL 方言的 GORM 连接
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func TestGormAccountRepository_List_ProjectsWithoutSecret(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)
	now := time.Now().UTC().Truncate(time.Millisecond)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`email`,`name`,`created_at`,`updated_at` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
			AddRow(1, "a@b.com", "Alice", now, now).
			AddRow(2, "c@d.com", nil, now, now))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(1), accounts[0].ID)
	assert.Equal(t, "Alice", *accounts[0].Name)
	assert.Nil(t, accounts[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}))

	account, err := repo.FindByID(context.Background(), 99)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, repository.ErrNotFound), "未找到时应返回 ErrNotFound, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_FindByID_WithPosts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)
	now := time.Now().UTC().Truncate(time.Millisecond)

	mock.ExpectQuery("SELECT (.+) FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
			AddRow(3, "a@b.com", nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`title`,`published`,`created_at`,`author_id` FROM `posts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "published", "created_at", "author_id"}).
			AddRow(10, "Hello", true, now, 3))

	account, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", account.Email)
	require.Len(t, account.Posts, 1)
	assert.Equal(t, domain.PostBrief{ID: 10, Title: "Hello", Published: true, CreatedAt: now}, account.Posts[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `accounts`")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	summary, err := repo.Create(context.Background(), &domain.Account{Email: "a@b.com", Secret: "hashed"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.ID)
	assert.Equal(t, "a@b.com", summary.Email)
	assert.False(t, summary.CreatedAt.IsZero(), "创建时间应被设置")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `accounts`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'idx_email'"})
	mock.ExpectRollback()

	summary, err := repo.Create(context.Background(), &domain.Account{Email: "a@b.com", Secret: "hashed"})
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, repository.ErrDuplicateEntry), "唯一约束冲突应映射为 ErrDuplicateEntry, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}))
	mock.ExpectRollback()

	summary, err := repo.Update(context.Background(), 42, repository.AccountChanges{Name: strPtr("Bob")})
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := gormpersistence.NewGormAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `accounts`")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), 5)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("still referenced", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := gormpersistence.NewGormAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `accounts`")).
			WillReturnError(&mysqldriver.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), 5)
		assert.True(t, errors.Is(err, repository.ErrForeignKeyViolation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := gormpersistence.NewGormAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `accounts`")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(context.Background(), 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPostRepository_List_WithAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)
	now := time.Now().UTC().Truncate(time.Millisecond)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "published", "author_id", "created_at", "updated_at"}).
			AddRow(1, "First", "Body one", false, 4, now, now).
			AddRow(2, "Second", "Body two", true, 4, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name`,`email` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(4, "Alice", "a@b.com"))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, domain.PostAuthor{ID: 4, Name: strPtr("Alice"), Email: "a@b.com"}, p.Author)
	}
	assert.Equal(t, "Body two", posts[1].Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_FindByID_WithCommentsAndAuthors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)
	now := time.Now().UTC().Truncate(time.Millisecond)
	// 预加载的查询顺序由 GORM 决定，这里只按 SQL 内容匹配
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "published", "author_id", "created_at", "updated_at"}).
			AddRow(5, "Title", "Body", true, 1, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name`,`email` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Alice", "a@b.com"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "author_id", "post_id", "created_at"}).
			AddRow(20, "Nice", 2, 5, now).
			AddRow(21, "Thanks", 1, 5, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Alice").
			AddRow(2, "Bob"))

	detail, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.PostAuthor{ID: 1, Name: strPtr("Alice"), Email: "a@b.com"}, detail.Author)
	require.Len(t, detail.Comments, 2)

	byID := map[int64]domain.CommentView{}
	for _, c := range detail.Comments {
		byID[c.ID] = c
	}
	assert.Equal(t, domain.CommentView{
		ID: 20, Body: "Nice", AuthorID: 2, PostID: 5, CreatedAt: now,
		Author: domain.CommentAuthor{ID: 2, Name: strPtr("Bob")},
	}, byID[20], "评论作者只包含 id 和 name")
	assert.Equal(t, domain.CommentAuthor{ID: 1, Name: strPtr("Alice")}, byID[21].Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "published", "author_id", "created_at", "updated_at"}))

	detail, err := repo.FindByID(context.Background(), 404)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, repository.ErrNotFound), "未找到时应返回 ErrNotFound, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_Update_EmptyChangesSkipsWrite(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormAccountRepository(db)
	now := time.Now().UTC().Truncate(time.Millisecond)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
			AddRow(3, "a@b.com", "Alice", now, now))
	mock.ExpectCommit()

	summary, err := repo.Update(context.Background(), 3, repository.AccountChanges{})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", summary.Email)
	assert.Equal(t, now, summary.UpdatedAt, "没有字段变化时不应写入")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_Create_UnknownAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `posts`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
	mock.ExpectRollback()

	view, err := repo.Create(context.Background(), &domain.Post{Title: "t", Body: "b", AuthorID: 999})
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, repository.ErrForeignKeyViolation), "外键冲突应映射为 ErrForeignKeyViolation, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_Update_OnlyTouchesPresentFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)
	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	updated := time.Now().UTC().Truncate(time.Millisecond)
	postCols := []string{"id", "title", "content", "published", "author_id", "created_at", "updated_at"}
	authorCols := []string{"id", "name", "email"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts`")).
		WillReturnRows(sqlmock.NewRows(postCols).AddRow(5, "Title", "Body", false, 1, created, created))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name`,`email` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows(authorCols).AddRow(1, "Alice", "a@b.com"))
	// 只有 published 与 updated_at 出现在 SET 子句中
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `published`=?,`updated_at`=? WHERE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts`")).
		WillReturnRows(sqlmock.NewRows(postCols).AddRow(5, "Title", "Body", true, 1, created, updated))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name`,`email` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows(authorCols).AddRow(1, "Alice", "a@b.com"))
	mock.ExpectCommit()

	view, err := repo.Update(context.Background(), 5, repository.PostChanges{Published: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, view.Published)
	assert.Equal(t, "Title", view.Title)
	assert.Equal(t, "Body", view.Body)
	assert.Equal(t, created, view.CreatedAt)
	assert.Equal(t, updated, view.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_Update_EmptyChangesSkipsWrite(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)
	now := time.Now().UTC().Truncate(time.Millisecond)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "published", "author_id", "created_at", "updated_at"}).
			AddRow(5, "Title", "Body", false, 1, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name`,`email` FROM `accounts`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Alice", "a@b.com"))
	mock.ExpectCommit()

	view, err := repo.Update(context.Background(), 5, repository.PostChanges{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_Delete_PostgresForeignKeyError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := gormpersistence.NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `posts`")).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)
	assert.True(t, errors.Is(err, repository.ErrForeignKeyViolation))
	assert.NoError(t, mock.ExpectationsWereMet())
}
