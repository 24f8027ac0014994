package model

import (
	"time"
)

// Comment 影片评论
type Comment struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"userId" gorm:"index"`
	MovieID     uint64    `json:"movieId" gorm:"index"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// WatchHistory 观看历史（用户+影片 联合主键）
type WatchHistory struct {
	UserID            string    `json:"userId" gorm:"primaryKey"`
	MovieID           uint64    `json:"movieId" gorm:"primaryKey"`
	ProgressInSeconds int       `json:"progressInSeconds"`
	LastWatchedAt     time.Time `json:"lastWatchedAt"`
}

// TableName 观看历史表名
func (WatchHistory) TableName() string {
	return "watch_history"
}

// Favorite 用户收藏（用户+影片 联合主键）
type Favorite struct {
	UserID    string    `json:"userId" gorm:"primaryKey"`
	MovieID   uint64    `json:"movieId" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubscriptionPlan 订阅套餐
type SubscriptionPlan struct {
	ID               uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string   `json:"name"`
	DurationInDays   int      `json:"durationInDays"`
	PriceUsd         float64  `json:"priceUsd"`
	OriginalPriceUsd *float64 `json:"originalPriceUsd"`
	IsActive         bool     `json:"isActive"`
}

// RedemptionCode 卡密（兑换码）
type RedemptionCode struct {
	ID               uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Code             string     `json:"code" gorm:"unique"`
	PlanID           uint       `json:"planId"`
	IsRedeemed       bool       `json:"isRedeemed"`
	RedeemedByUserID string     `json:"redeemedByUserId"`
	RedeemedAt       *time.Time `json:"redeemedAt"`
	ExpiresAt        *time.Time `json:"expiresAt"`
}

// Transaction 订单流水
type Transaction struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"userId" gorm:"index"`
	PlanID        *uint     `json:"planId"`
	AmountUsd     float64   `json:"amountUsd"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Banner 首页轮播图
type Banner struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	LinkType    string `json:"linkType"` // movie / external / none
	LinkUrl     string `json:"linkUrl"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

// AppSetting 应用配置表（键值对）
type AppSetting struct {
	SettingKey   string `json:"settingKey" gorm:"primaryKey"`
	SettingValue string `json:"settingValue"`
	Description  string `json:"description"`
}
