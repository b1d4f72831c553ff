package service

import (
	"errors"

	"content-hub/internal/repository"
)

// 错误类别。Handler 只根据这些类别决定 HTTP 状态码。
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInternalServer   = errors.New("internal server error")
)

// Error 是带有对外消息的业务错误，Unwrap 返回其类别。
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// 具体的业务错误
var (
	ErrInvalidAccountID  = &Error{Kind: ErrInvalidID, Message: "invalid account id"}
	ErrInvalidPostID     = &Error{Kind: ErrInvalidID, Message: "invalid post id"}
	ErrAccountNotFound   = &Error{Kind: ErrNotFound, Message: "account not found"}
	ErrPostNotFound      = &Error{Kind: ErrNotFound, Message: "post not found"}
	ErrEmailTaken        = &Error{Kind: ErrConflict, Message: "email already in use"}
	ErrAccountHasContent = &Error{Kind: ErrConflict, Message: "account still owns posts or comments"}
	ErrAuthorNotFound    = &Error{Kind: ErrInvalidReference, Message: "referenced account does not exist"}
)

// repoErrorMapping 描述某个操作下各类存储错误对应的业务错误。
// 为 nil 的项表示该操作不识别此类错误，按内部错误处理。
type repoErrorMapping struct {
	notFound   error
	duplicate  error
	foreignKey error
}

// mapRepoError 将仓库层的错误映射到服务层定义的错误。
func mapRepoError(err error, m repoErrorMapping) error {
	if err == nil {
		return nil
	}
	switch {
	case m.notFound != nil && errors.Is(err, repository.ErrNotFound):
		return m.notFound
	case m.duplicate != nil && errors.Is(err, repository.ErrDuplicateEntry):
		return m.duplicate
	case m.foreignKey != nil && errors.Is(err, repository.ErrForeignKeyViolation):
		return m.foreignKey
	default:
		// 默认返回内部服务器错误
		return ErrInternalServer
	}
}
