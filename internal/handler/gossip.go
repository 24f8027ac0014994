package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// GossipMediaDto 吃瓜帖子媒体文件
type GossipMediaDto struct {
	MediaUrl  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
}

// GossipPostDto 吃瓜帖子
type GossipPostDto struct {
	ID        uint64           `json:"id"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"createdAt"`
	Media     []GossipMediaDto `json:"media"`
}

// GossipListDto 吃瓜列表响应
type GossipListDto struct {
	Items          []GossipPostDto `json:"items"`
	LastSeenID     *uint64         `json:"lastSeenId"` // 仅初始加载时提供
	HasMoreHistory bool            `json:"hasMoreHistory"`
	HasMoreNew     bool            `json:"hasMoreNew"`
}

// mapGossipPosts 帖子映射（媒体已按 sort_order 排好）
func mapGossipPosts(posts []model.GossipPost) []GossipPostDto {
	items := make([]GossipPostDto, 0, len(posts))
	for _, p := range posts {
		media := make([]GossipMediaDto, 0, len(p.Media))
		for _, m := range p.Media {
			media = append(media, GossipMediaDto{
				MediaUrl:  m.MediaUrl,
				MediaType: m.MediaType,
			})
		}
		items = append(items, GossipPostDto{
			ID:        p.ID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			Media:     media,
		})
	}
	return items
}

// parseCursor 解析可选的游标参数
func parseCursor(c *gin.Context, name string) (*uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.BadRequest(c, "游标参数格式错误。")
		return nil, false
	}
	return &id, true
}

// GetGossipPosts 分页获取吃瓜帖子列表（支持双向加载，VIP 专属）
func (h *Handler) GetGossipPosts(c *gin.Context) {
	user, err := h.Repos.User.FindByID(middleware.GetUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if !user.IsVipActive(time.Now()) {
		utils.Forbidden(c, "此内容为VIP专属，请先开通会员。")
		return
	}

	beforeID, ok := parseCursor(c, "before_id")
	if !ok {
		return
	}
	afterID, ok := parseCursor(c, "after_id")
	if !ok {
		return
	}
	if beforeID != nil && afterID != nil {
		utils.BadRequest(c, "before_id 和 after_id 不能同时使用。")
		return
	}

	feed, err := h.Repos.Gossip.Fetch(user.ID, beforeID, afterID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, GossipListDto{
		Items:          mapGossipPosts(feed.Items),
		LastSeenID:     feed.LastSeenID,
		HasMoreHistory: feed.HasMoreHistory,
		HasMoreNew:     feed.HasMoreNew,
	})
}

// UpdateProgressRequest 更新浏览进度请求
type UpdateProgressRequest struct {
	LastPostID uint64 `json:"lastPostId" binding:"required"`
}

// UpdateGossipProgress 更新用户浏览进度（覆盖写入）
func (h *Handler) UpdateGossipProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "进度数据格式错误。")
		return
	}

	if err := h.Repos.Gossip.UpsertProgress(middleware.GetUserID(c), req.LastPostID); err != nil {
		c.Error(err)
		return
	}

	c.Status(200)
}
