package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get 读取配置项，不存在返回 nil
func (r *SettingRepository) Get(key string) (*model.AppSetting, error) {
	var setting model.AppSetting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
