package domain

import "time"

// Post 表示账户撰写的一篇文章 (内容条目)。
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(191);not null"`
	Body      string    `gorm:"column:content;type:text;not null"`
	Published bool      `gorm:"not null;default:false"`
	AuthorID  int64     `gorm:"index;not null"` // 外键关联到 Account.ID
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// posts.author_id 的外键约束声明在 Account.Posts 一侧
	Author *Account `gorm:"foreignKey:AuthorID"`
	// 评论没有独立的接口，文章删除时级联删除
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// PostBrief 是嵌套在账户详情中的文章投影。
type PostBrief struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostAuthor 是嵌套在文章中的作者投影。
type PostAuthor struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// PostView 是文章列表、创建、更新返回的投影。
type PostView struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Published bool       `json:"published"`
	AuthorID  int64      `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Author    PostAuthor `json:"author"`
}

// PostDetail 是单篇文章的投影，附带评论。
type PostDetail struct {
	PostView
	Comments []CommentView `json:"comments"`
}

// Brief 返回文章的简要投影。
func (p *Post) Brief() PostBrief {
	return PostBrief{ID: p.ID, Title: p.Title, Published: p.Published, CreatedAt: p.CreatedAt}
}

// View 返回带作者投影的文章。作者未加载时只保留 AuthorID。
func (p *Post) View() PostView {
	v := PostView{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author:    PostAuthor{ID: p.AuthorID},
	}
	if p.Author != nil {
		v.Author = PostAuthor{ID: p.Author.ID, Name: p.Author.Name, Email: p.Author.Email}
	}
	return v
}

// Detail 返回带作者和评论的文章投影。
func (p *Post) Detail() PostDetail {
	comments := make([]CommentView, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, p.Comments[i].View())
	}
	return PostDetail{PostView: p.View(), Comments: comments}
}
