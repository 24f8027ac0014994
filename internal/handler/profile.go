package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// parsePage 解析分页参数（个人中心默认每页12条）
func parsePage(c *gin.Context) (pageIndex, pageSize int) {
	pageIndex, _ = strconv.Atoi(c.DefaultQuery("pageIndex", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "12"))
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = 12
	}
	return pageIndex, pageSize
}

// mapMoviesToBriefDtos 影片列表简要映射
func mapMoviesToBriefDtos(movies []model.Movie) []MovieBriefDto {
	items := make([]MovieBriefDto, 0, len(movies))
	for i := range movies {
		items = append(items, mapMovieToBriefDto(&movies[i]))
	}
	return items
}

// GetWatchHistory 观看历史（按观看时间倒序分页）
func (h *Handler) GetWatchHistory(c *gin.Context) {
	pageIndex, pageSize := parsePage(c)

	movies, total, err := h.Repos.History.ListMovies(middleware.GetUserID(c), pageIndex, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, newPagedResult(mapMoviesToBriefDtos(movies), total, pageIndex, pageSize))
}

// SyncHistoryRequest 同步观看进度请求
type SyncHistoryRequest struct {
	ProgressInSeconds int `json:"progressInSeconds"`
}

// SyncWatchHistory 写入观看进度（同一影片覆盖更新）
func (h *Handler) SyncWatchHistory(c *gin.Context) {
	movieID, ok := parseMovieID(c, "movieId")
	if !ok {
		return
	}

	var req SyncHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "进度数据格式错误。")
		return
	}

	exists, err := h.Repos.Movie.Exists(movieID)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		utils.NotFound(c, "影片不存在。")
		return
	}

	if err := h.Repos.History.Upsert(middleware.GetUserID(c), movieID, req.ProgressInSeconds); err != nil {
		c.Error(err)
		return
	}

	c.Status(200)
}

// GetFavorites 收藏列表（按收藏时间倒序分页）
func (h *Handler) GetFavorites(c *gin.Context) {
	pageIndex, pageSize := parsePage(c)

	movies, total, err := h.Repos.Favorite.ListMovies(middleware.GetUserID(c), pageIndex, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, newPagedResult(mapMoviesToBriefDtos(movies), total, pageIndex, pageSize))
}

// GetFavoriteIds 获取用户全部收藏影片的 ID 列表
func (h *Handler) GetFavoriteIds(c *gin.Context) {
	ids, err := h.Repos.Favorite.IDs(middleware.GetUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, ids)
}

// AddFavorite 添加收藏（重复收藏直接返回成功）
func (h *Handler) AddFavorite(c *gin.Context) {
	movieID, ok := parseMovieID(c, "movieId")
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	exists, err := h.Repos.Movie.Exists(movieID)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		utils.NotFound(c, "影片不存在。")
		return
	}

	favorited, err := h.Repos.Favorite.Exists(userID, movieID)
	if err != nil {
		c.Error(err)
		return
	}
	if favorited {
		utils.Message(c, "已收藏")
		return
	}

	if err := h.Repos.Favorite.Add(userID, movieID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(201, gin.H{"message": "收藏成功"})
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	movieID, ok := parseMovieID(c, "movieId")
	if !ok {
		return
	}

	rows, err := h.Repos.Favorite.Remove(middleware.GetUserID(c), movieID)
	if err != nil {
		c.Error(err)
		return
	}
	if rows == 0 {
		utils.NotFound(c, "未找到该收藏记录。")
		return
	}

	c.Status(204)
}
