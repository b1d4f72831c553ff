package gormpersistence

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"content-hub/internal/repository"
)

// MySQL 错误码
const (
	mysqlDuplicateEntry   = 1062
	mysqlRowIsReferenced  = 1451 // 删除被引用的父行
	mysqlNoReferencedRow  = 1452 // 插入/更新时引用的父行不存在
	mysqlRowIsReferenced2 = 1217
	mysqlNoReferencedRow2 = 1216
)

// PostgreSQL SQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError 将驱动层错误映射为存储库层的错误类别。
// 返回的错误用 %w 包装了对应的哨兵错误，同时保留原始错误信息。
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("gorm: %s: %w", op, repository.ErrNotFound)
	case isDuplicateEntry(err):
		return fmt.Errorf("gorm: %s: %w: %v", op, repository.ErrDuplicateEntry, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("gorm: %s: %w: %v", op, repository.ErrForeignKeyViolation, err)
	default:
		return fmt.Errorf("gorm: %s: %w", op, err)
	}
}

func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlRowIsReferenced2, mysqlNoReferencedRow2:
			return true
		}
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
