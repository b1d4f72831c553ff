package repository

import "errors"

// 通用的存储库错误。实现必须用 %w 包装这些错误，调用方用 errors.Is 判断。
var (
	// ErrNotFound 表示请求的记录未找到
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry 表示尝试插入或更新的数据违反了唯一约束
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrForeignKeyViolation 表示写入或删除违反了外键约束
	ErrForeignKeyViolation = errors.New("repository: foreign key violation")
)

// 特定资源的错误
var (
	ErrAccountNotFound = ErrNotFound
	ErrPostNotFound    = ErrNotFound
)
