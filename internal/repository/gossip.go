package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

// 吃瓜列表的窗口大小：历史方向一次 3 条，最新方向一次 5 条
const (
	gossipHistoryPageSize = 3
	gossipNewPageSize     = 5
)

type GossipRepository struct {
	db *gorm.DB
}

func NewGossipRepository(db *gorm.DB) *GossipRepository {
	return &GossipRepository{db: db}
}

// GossipFeed 一次分页请求的结果窗口
type GossipFeed struct {
	Items          []model.GossipPost
	LastSeenID     *uint64 // 仅初始加载时填充
	HasMoreHistory bool
	HasMoreNew     bool
}

// feedQuery VIP 帖子的基础查询：按 sort_order、created_at 双倒序，附带有序媒体
func (r *GossipRepository) feedQuery() *gorm.DB {
	return r.db.Model(&model.GossipPost{}).
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("access_level = ?", model.GossipAccessVip).
		Order("sort_order DESC").
		Order("created_at DESC")
}

// Fetch 双向游标分页
// beforeID：向历史方向取 3 条（id < beforeID）
// afterID：向最新方向取 5 条（id > afterID）
// 两者都为空：初始加载，从用户上次看到的位置（含）起取 5 条，没有进度则取最前 5 条
func (r *GossipRepository) Fetch(userID string, beforeID, afterID *uint64) (*GossipFeed, error) {
	feed := &GossipFeed{Items: []model.GossipPost{}}

	switch {
	// 1. 加载历史消息
	case beforeID != nil:
		err := r.feedQuery().
			Where("id < ?", *beforeID).
			Limit(gossipHistoryPageSize).
			Find(&feed.Items).Error
		if err != nil {
			return nil, err
		}
		if len(feed.Items) > 0 {
			oldest, _ := idRange(feed.Items)
			if feed.HasMoreHistory, err = r.anyBefore(oldest); err != nil {
				return nil, err
			}
		}

	// 2. 加载最新消息
	case afterID != nil:
		err := r.feedQuery().
			Where("id > ?", *afterID).
			Limit(gossipNewPageSize).
			Find(&feed.Items).Error
		if err != nil {
			return nil, err
		}
		if len(feed.Items) > 0 {
			_, newest := idRange(feed.Items)
			if feed.HasMoreNew, err = r.anyAfter(newest); err != nil {
				return nil, err
			}
		}

	// 3. 初始加载
	default:
		progress, err := r.FindProgress(userID)
		if err != nil {
			return nil, err
		}

		q := r.feedQuery()
		if progress != nil {
			lastSeen := progress.LastPostID
			feed.LastSeenID = &lastSeen
			q = q.Where("id >= ?", lastSeen)
		}
		if err := q.Limit(gossipNewPageSize).Find(&feed.Items).Error; err != nil {
			return nil, err
		}

		if len(feed.Items) > 0 {
			oldest, newest := idRange(feed.Items)
			if feed.HasMoreHistory, err = r.anyBefore(oldest); err != nil {
				return nil, err
			}
			if feed.HasMoreNew, err = r.anyAfter(newest); err != nil {
				return nil, err
			}
		}
	}

	return feed, nil
}

// FindProgress 查询用户浏览进度，不存在返回 nil
func (r *GossipRepository) FindProgress(userID string) (*model.UserGossipProgress, error) {
	var progress model.UserGossipProgress
	err := r.db.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpsertProgress 覆盖写入用户浏览进度（后写覆盖先写，不校验回退）
func (r *GossipRepository) UpsertProgress(userID string, lastPostID uint64) error {
	progress := &model.UserGossipProgress{
		UserID:     userID,
		LastPostID: lastPostID,
		UpdatedAt:  time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_post_id", "updated_at"}),
	}).Create(progress).Error
}

// anyBefore 是否存在 id 更小的帖子
func (r *GossipRepository) anyBefore(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&model.GossipPost{}).Where("id < ?", id).Count(&count).Error
	return count > 0, err
}

// anyAfter 是否存在 id 更大的帖子
func (r *GossipRepository) anyAfter(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&model.GossipPost{}).Where("id > ?", id).Count(&count).Error
	return count > 0, err
}

// idRange 返回窗口内的最小、最大帖子 ID
func idRange(posts []model.GossipPost) (oldest, newest uint64) {
	oldest, newest = posts[0].ID, posts[0].ID
	for _, p := range posts[1:] {
		if p.ID < oldest {
			oldest = p.ID
		}
		if p.ID > newest {
			newest = p.ID
		}
	}
	return oldest, newest
}
