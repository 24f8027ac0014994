package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Upsert 写入观看进度（同一用户同一影片只保留一行）
func (r *HistoryRepository) Upsert(userID string, movieID uint64, progressInSeconds int) error {
	entry := &model.WatchHistory{
		UserID:            userID,
		MovieID:           movieID,
		ProgressInSeconds: progressInSeconds,
		LastWatchedAt:     time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress_in_seconds", "last_watched_at"}),
	}).Create(entry).Error
}

// ListMovies 分页获取用户最近观看的影片（按观看时间倒序）
func (r *HistoryRepository) ListMovies(userID string, pageIndex, pageSize int) ([]model.Movie, int64, error) {
	base := func() *gorm.DB {
		return r.db.Model(&model.WatchHistory{}).
			Joins("JOIN movies ON movies.id = watch_history.movie_id").
			Where("watch_history.user_id = ?", userID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []model.Movie
	err := base().
		Select("movies.*").
		Order("watch_history.last_watched_at DESC").
		Limit(pageSize).
		Offset((pageIndex - 1) * pageSize).
		Scan(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}
