package repository

import (
	"gorm.io/gorm"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type BannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

// ListActive 获取启用中的轮播图（按排序值升序）
func (r *BannerRepository) ListActive() ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&banners).Error
	return banners, err
}
