package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByMovie 获取影片评论（含用户信息，最新在前）
func (r *CommentRepository) ListByMovie(movieID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// Create 发表评论
func (r *CommentRepository) Create(userID string, movieID uint64, text string) (*model.Comment, error) {
	comment := &model.Comment{
		UserID:      userID,
		MovieID:     movieID,
		CommentText: text,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
