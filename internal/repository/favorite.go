package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add 添加收藏
func (r *FavoriteRepository) Add(userID string, movieID uint64) error {
	favorite := &model.Favorite{
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(favorite).Error
}

// Exists 检查是否已收藏
func (r *FavoriteRepository) Exists(userID string, movieID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

// Remove 取消收藏，返回删除的行数
func (r *FavoriteRepository) Remove(userID string, movieID uint64) (int64, error) {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

// ListMovies 分页获取用户收藏的影片（按收藏时间倒序）
func (r *FavoriteRepository) ListMovies(userID string, pageIndex, pageSize int) ([]model.Movie, int64, error) {
	base := func() *gorm.DB {
		return r.db.Model(&model.Favorite{}).
			Joins("JOIN movies ON movies.id = favorites.movie_id").
			Where("favorites.user_id = ?", userID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []model.Movie
	err := base().
		Select("movies.*").
		Order("favorites.created_at DESC").
		Limit(pageSize).
		Offset((pageIndex - 1) * pageSize).
		Scan(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// IDs 获取用户收藏的全部影片 ID
func (r *FavoriteRepository) IDs(userID string) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("movie_id", &ids).Error
	return ids, err
}
