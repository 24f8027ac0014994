package service

import (
	"strconv"
	"time"

	"github.com/jay99268/VideoPlatform.Api/internal/repository"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// 应用配置表中的键名
const (
	settingKeyEmailVerification = "EnableEmailVerification"
	settingKeyNewUserVipDays    = "NewUserVipDays"
)

// settingsCacheTTL 配置缓存有效期
const settingsCacheTTL = 10 * time.Minute

// SettingsService 功能开关读取服务
// 读取 app_settings 表并缓存 10 分钟。并发未命中时可能各自查库一次，
// 配置表很小，不做并发抑制。
type SettingsService struct {
	repo  *repository.SettingRepository
	cache *utils.TTLCache[string]
}

// NewSettingsService 创建配置读取服务
func NewSettingsService(repo *repository.SettingRepository) *SettingsService {
	return &SettingsService{
		repo:  repo,
		cache: utils.NewTTLCache[string](16, settingsCacheTTL),
	}
}

// getValue 带缓存读取配置项原始值，不存在返回 ("", false)
func (s *SettingsService) getValue(key string) (string, bool, error) {
	if value, ok := s.cache.Get(key); ok {
		return value, value != "", nil
	}

	setting, err := s.repo.Get(key)
	if err != nil {
		return "", false, err
	}

	// 不存在也缓存（空值），避免反复查库
	value := ""
	if setting != nil {
		value = setting.SettingValue
	}
	s.cache.Set(key, value)

	return value, setting != nil, nil
}

// IsEmailVerificationEnabled 注册是否需要邮箱验证码
// 数据库中没有该配置时，安全起见默认为 true
func (s *SettingsService) IsEmailVerificationEnabled() (bool, error) {
	value, ok, err := s.getValue(settingKeyEmailVerification)
	if err != nil {
		return true, err
	}
	if !ok {
		return true, nil
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return true, nil
	}
	return enabled, nil
}

// NewUserVipDays 新用户注册赠送的 VIP 天数
// 数据库中没有该配置时默认为 0（不赠送）
func (s *SettingsService) NewUserVipDays() (int, error) {
	value, ok, err := s.getValue(settingKeyNewUserVipDays)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, nil
	}
	return days, nil
}
