package models

import (
	"engipec/models/ctypes"
)

// Article 文章模型
type Article struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`       // 文章标题
	Excerpt    string       `json:"excerpt"`     // 文章摘要
	Content    string       `json:"content"`     // 文章内容
	Category   string       `json:"category"`    // 文章分类（已规范化）
	ImageSrc   string       `json:"image_src"`   // 封面图片引用
	Featured   bool         `json:"featured"`    // 是否为头条文章
	CreatedAt  ctypes.Date  `json:"created_at"`  // 创建日期，创建后不再变化
	UpdatedAt  *ctypes.Date `json:"updated_at,omitempty"` // 最后一次内容修改日期
	AuthorID   uint         `json:"author_id"`   // 作者账号id
	AuthorName string       `json:"author_name"` // 作者昵称
}

// ArticleDraft 文章表单数据，不含id和创建日期
type ArticleDraft struct {
	Title      string `json:"title" validate:"required"`
	Excerpt    string `json:"excerpt" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Category   string `json:"category" validate:"required"`
	ImageSrc   string `json:"image_src"`
	Featured   bool   `json:"featured"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name"`
}
