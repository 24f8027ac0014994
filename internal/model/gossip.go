package model

import (
	"time"
)

// 吃瓜帖子访问级别
const (
	GossipAccessVip = "vip"
)

// GossipPost 吃瓜帖子模型
// ID 单调递增，作为双向分页的游标
type GossipPost struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Content     string    `json:"content"`
	AccessLevel string    `json:"accessLevel"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`

	Media []GossipMedia `json:"media" gorm:"foreignKey:PostID"`
}

// GossipMedia 帖子媒体附件模型
type GossipMedia struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID    uint64 `json:"postId" gorm:"index"`
	MediaUrl  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
	SortOrder int    `json:"sortOrder"`
}

// TableName 媒体附件表名
func (GossipMedia) TableName() string {
	return "gossip_media"
}

// UserGossipProgress 用户浏览进度（每用户一行，覆盖写入）
type UserGossipProgress struct {
	UserID     string    `json:"userId" gorm:"primaryKey"`
	LastPostID uint64    `json:"lastPostId"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName 浏览进度表名
func (UserGossipProgress) TableName() string {
	return "user_gossip_progress"
}
