// Package domain 定义了应用程序中使用的数据结构 (数据库模型与对外投影)。
package domain

import "time"

// Account 表示一个账户持有者。
type Account struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`                        // 账户唯一标识符 (主键, 由存储分配)
	Email     string    `gorm:"type:varchar(191);uniqueIndex:idx_email;not null"` // 全局唯一
	Name      *string   `gorm:"type:varchar(191)"`                               // 可选
	Secret    string    `gorm:"column:password;type:text;not null"`              // 存储的是 bcrypt 哈希，永不对外输出
	CreatedAt time.Time `gorm:"autoCreateTime"`                                  // GORM 自动填充
	UpdatedAt time.Time `gorm:"autoUpdateTime"`                                  // GORM 自动填充

	// 删除仍拥有文章的账户会被数据库拒绝 (RESTRICT)
	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// AccountSummary 是账户对外的投影，不包含 secret。
type AccountSummary struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccountDetail 是单个账户的投影，附带其拥有的文章列表。
type AccountDetail struct {
	AccountSummary
	Posts []PostBrief `json:"posts"`
}

// Summary 将账户投影为对外结构。
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// Detail 将账户及其已加载的文章投影为对外结构。
func (a *Account) Detail() AccountDetail {
	posts := make([]PostBrief, 0, len(a.Posts))
	for i := range a.Posts {
		posts = append(posts, a.Posts[i].Brief())
	}
	return AccountDetail{AccountSummary: a.Summary(), Posts: posts}
}
