package http

import (
	"net/http"

	"content-hub/internal/service"
	"content-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

const resourceAccount = "account"

// AccountHandler 封装了账户资源的 HTTP 处理逻辑
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler 创建 AccountHandler 实例
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes 将账户路由挂载到给定的路由组
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List 处理 GET /api/accounts
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, resourceAccount, "list", err)
		return
	}
	SuccessResponse(c, http.StatusOK, accounts)
}

// Get 处理 GET /api/accounts/:id
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := parseID(c, service.ErrInvalidAccountID)
	if err != nil {
		HandleServiceError(c, resourceAccount, "get", err)
		return
	}

	account, err := h.accountService.Get(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, resourceAccount, "get", err)
		return
	}
	SuccessResponse(c, http.StatusOK, account)
}

// Create 处理 POST /api/accounts
func (h *AccountHandler) Create(c *gin.Context) {
	data, err := bindBody(c, validation.AccountCreate)
	if err != nil {
		HandleServiceError(c, resourceAccount, "create", err)
		return
	}

	email, _ := data.String(validation.FieldEmail)
	secret, _ := data.String(validation.FieldSecret)
	account, err := h.accountService.Create(c.Request.Context(), service.CreateAccountInput{
		Email:  email,
		Name:   optionalString(data, validation.FieldName),
		Secret: secret,
	})
	if err != nil {
		HandleServiceError(c, resourceAccount, "create", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, account)
}

// Update 处理 PUT /api/accounts/:id，只修改请求中出现的字段
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := parseID(c, service.ErrInvalidAccountID)
	if err != nil {
		HandleServiceError(c, resourceAccount, "update", err)
		return
	}
	data, err := bindBody(c, validation.AccountUpdate)
	if err != nil {
		HandleServiceError(c, resourceAccount, "update", err)
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), id, service.UpdateAccountInput{
		Name:  optionalString(data, validation.FieldName),
		Email: optionalString(data, validation.FieldEmail),
	})
	if err != nil {
		HandleServiceError(c, resourceAccount, "update", err)
		return
	}
	SuccessResponse(c, http.StatusOK, account)
}

// Delete 处理 DELETE /api/accounts/:id
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := parseID(c, service.ErrInvalidAccountID)
	if err != nil {
		HandleServiceError(c, resourceAccount, "delete", err)
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		HandleServiceError(c, resourceAccount, "delete", err)
		return
	}
	SuccessResponse(c, http.StatusOK, MessageResponse{Message: "account deleted"})
}
