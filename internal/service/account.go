package service

import (
	"context"
	"errors"
	"fmt"

	"content-hub/internal/domain"
	"content-hub/internal/repository"
	"content-hub/internal/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt 只使用前 72 字节
const maxSecretBytes = 72

const resourceAccount = "account"

// CreateAccountInput 是已通过校验的创建请求。
type CreateAccountInput struct {
	Email  string
	Name   *string
	Secret string
}

// UpdateAccountInput 是已通过校验的部分更新请求，nil 字段不修改。
type UpdateAccountInput struct {
	Name  *string
	Email *string
}

// AccountService 负责账户相关的业务逻辑。
// 不做任何鉴权或归属检查：任何调用方都可以操作任意账户。
type AccountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService 创建 AccountService 实例。
func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	if accountRepo == nil {
		panic("AccountRepository cannot be nil for AccountService")
	}
	return &AccountService{accountRepo: accountRepo}
}

// List 返回所有账户 (不含 secret)。
func (s *AccountService) List(ctx context.Context) ([]domain.AccountSummary, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		opLog(resourceAccount, "list").WithError(err).Error("Failed to list accounts")
		return nil, ErrInternalServer
	}
	return accounts, nil
}

// Get 返回账户及其文章的简要信息。
func (s *AccountService) Get(ctx context.Context, id int64) (*domain.AccountDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidAccountID
	}
	logCtx := opLog(resourceAccount, "get").WithField("account_id", id)

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepoError(err, repoErrorMapping{notFound: ErrAccountNotFound})
		logRepoFailure(logCtx, err, mapped)
		return nil, mapped
	}
	return account, nil
}

// Create 创建新账户。secret 在持久化前使用 bcrypt 哈希。
func (s *AccountService) Create(ctx context.Context, in CreateAccountInput) (*domain.AccountSummary, error) {
	logCtx := opLog(resourceAccount, "create").WithField("email", in.Email)

	if len(in.Secret) > maxSecretBytes {
		return nil, &validation.ValidationError{
			Schema:     validation.AccountCreate.Name,
			Violations: []validation.Violation{{Field: validation.FieldSecret, Reason: fmt.Sprintf("must be at most %d bytes", maxSecretBytes)}},
		}
	}

	hashed, err := hashSecret(in.Secret)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash secret")
		return nil, ErrInternalServer
	}

	account := &domain.Account{
		Email:  in.Email,
		Name:   in.Name,
		Secret: hashed,
	}
	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		mapped := mapRepoError(err, repoErrorMapping{duplicate: ErrEmailTaken})
		logRepoFailure(logCtx, err, mapped)
		return nil, mapped
	}

	logCtx.WithField("account_id", created.ID).Info("Account created successfully")
	return created, nil
}

// Update 只修改请求中出现的字段。
func (s *AccountService) Update(ctx context.Context, id int64, in UpdateAccountInput) (*domain.AccountSummary, error) {
	if id <= 0 {
		return nil, ErrInvalidAccountID
	}
	logCtx := opLog(resourceAccount, "update").WithField("account_id", id)

	updated, err := s.accountRepo.Update(ctx, id, repository.AccountChanges{Name: in.Name, Email: in.Email})
	if err != nil {
		mapped := mapRepoError(err, repoErrorMapping{notFound: ErrAccountNotFound, duplicate: ErrEmailTaken})
		logRepoFailure(logCtx, err, mapped)
		return nil, mapped
	}

	logCtx.Info("Account updated successfully")
	return updated, nil
}

// Delete 删除账户。仍拥有文章或评论的账户无法删除。
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAccountID
	}
	logCtx := opLog(resourceAccount, "delete").WithField("account_id", id)

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		mapped := mapRepoError(err, repoErrorMapping{notFound: ErrAccountNotFound, foreignKey: ErrAccountHasContent})
		logRepoFailure(logCtx, err, mapped)
		return mapped
	}

	logCtx.Info("Account deleted successfully")
	return nil
}

// --- 私有辅助函数 ---

// hashSecret 使用 bcrypt 对 secret 进行哈希处理
func hashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from secret: %w", err)
	}
	return string(bytes), nil
}

func opLog(resource, operation string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"resource": resource, "operation": operation})
}

// logRepoFailure 记录存储层错误。未找到等可预期的错误记为 Warn，其余记为 Error。
func logRepoFailure(logCtx *logrus.Entry, cause, mapped error) {
	logCtx = logCtx.WithError(cause)
	if errors.Is(mapped, ErrInternalServer) {
		logCtx.Error("Repository error")
		return
	}
	logCtx.WithField("category", mapped.Error()).Warn("Repository rejected request")
}
