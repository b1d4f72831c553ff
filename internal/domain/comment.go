package domain

import "time"

// Comment 表示文章下的一条评论。评论在本 API 中只读。
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Body      string    `gorm:"column:content;type:text;not null"`
	AuthorID  int64     `gorm:"index;not null"`
	PostID    int64     `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Author *Account `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// CommentAuthor 是评论作者的投影 (不含 email)。
type CommentAuthor struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// CommentView 是嵌套在文章详情中的评论投影。
type CommentView struct {
	ID        int64         `json:"id"`
	Body      string        `json:"body"`
	AuthorID  int64         `json:"authorId"`
	PostID    int64         `json:"postId"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    CommentAuthor `json:"author"`
}

// View 返回评论投影。
func (c *Comment) View() CommentView {
	v := CommentView{
		ID:        c.ID,
		Body:      c.Body,
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		Author:    CommentAuthor{ID: c.AuthorID},
	}
	if c.Author != nil {
		v.Author = CommentAuthor{ID: c.Author.ID, Name: c.Author.Name}
	}
	return v
}
