package model

import (
	"strings"
	"time"
)

// VIP 状态值
const (
	VipStatusNone   = "none"
	VipStatusActive = "active"
)

// User 用户模型
type User struct {
	ID                     string     `json:"id" gorm:"primaryKey"`
	Username               string     `json:"username"`
	Email                  string     `json:"email" gorm:"unique"`
	PasswordHash           string     `json:"-"`
	AvatarUrl              string     `json:"avatarUrl"`
	VipStatus              string     `json:"vipStatus"`
	VipExpiresAt           *time.Time `json:"vipExpiresAt"`
	VirtualCurrencyBalance float64    `json:"virtualCurrencyBalance"`
	CreatedAt              time.Time  `json:"createdAt"`
}

// IsVipActive 判断 VIP 是否生效
// 规则：状态为 active（不区分大小写）且过期时间严格晚于 now
func (u *User) IsVipActive(now time.Time) bool {
	if u == nil || !strings.EqualFold(u.VipStatus, VipStatusActive) {
		return false
	}
	return u.VipExpiresAt != nil && u.VipExpiresAt.After(now)
}
