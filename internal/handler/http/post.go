package http

import (
	"net/http"

	"content-hub/internal/service"
	"content-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

const resourcePost = "post"

// PostHandler 封装了文章资源的 HTTP 处理逻辑
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler 创建 PostHandler 实例
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterRoutes 将文章路由挂载到给定的路由组
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List 处理 GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, resourcePost, "list", err)
		return
	}
	SuccessResponse(c, http.StatusOK, posts)
}

// Get 处理 GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := parseID(c, service.ErrInvalidPostID)
	if err != nil {
		HandleServiceError(c, resourcePost, "get", err)
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, resourcePost, "get", err)
		return
	}
	SuccessResponse(c, http.StatusOK, post)
}

// Create 处理 POST /api/posts，published 缺省为 false
func (h *PostHandler) Create(c *gin.Context) {
	data, err := bindBody(c, validation.PostCreate)
	if err != nil {
		HandleServiceError(c, resourcePost, "create", err)
		return
	}

	title, _ := data.String(validation.FieldTitle)
	body, _ := data.String(validation.FieldBody)
	published, _ := data.Bool(validation.FieldPublished)
	authorID, _ := data.Int(validation.FieldAuthorID)
	post, err := h.postService.Create(c.Request.Context(), service.CreatePostInput{
		Title:     title,
		Body:      body,
		Published: published,
		AuthorID:  authorID,
	})
	if err != nil {
		HandleServiceError(c, resourcePost, "create", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, post)
}

// Update 处理 PUT /api/posts/:id，只修改请求中出现的字段
func (h *PostHandler) Update(c *gin.Context) {
	id, err := parseID(c, service.ErrInvalidPostID)
	if err != nil {
		HandleServiceError(c, resourcePost, "update", err)
		return
	}
	data, err := bindBody(c, validation.PostUpdate)
	if err != nil {
		HandleServiceError(c, resourcePost, "update", err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, service.UpdatePostInput{
		Title:     optionalString(data, validation.FieldTitle),
		Body:      optionalString(data, validation.FieldBody),
		Published: optionalBool(data, validation.FieldPublished),
	})
	if err != nil {
		HandleServiceError(c, resourcePost, "update", err)
		return
	}
	SuccessResponse(c, http.StatusOK, post)
}

// Delete 处理 DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := parseID(c, service.ErrInvalidPostID)
	if err != nil {
		HandleServiceError(c, resourcePost, "delete", err)
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		HandleServiceError(c, resourcePost, "delete", err)
		return
	}
	SuccessResponse(c, http.StatusOK, MessageResponse{Message: "post deleted"})
}
