package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/apperr"
	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
	"github.com/jay99268/VideoPlatform.Api/internal/repository"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// parseMovieID 解析路径中的影片 ID
func parseMovieID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequest(c, "影片ID格式错误。")
		return 0, false
	}
	return id, true
}

// ListMovies 影片列表（筛选 + 分页）
func (h *Handler) ListMovies(c *gin.Context) {
	pageIndex, _ := strconv.Atoi(c.DefaultQuery("pageIndex", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "18"))
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = 18
	}

	filter := repository.MovieListFilter{
		Genre:            c.Query("genre"),
		Region:           c.Query("region"),
		Tag:              c.Query("tag"),
		MonetizationType: c.Query("monetizationType"),
		SortBy:           strings.ToLower(c.DefaultQuery("sortBy", "published_at")),
		PageIndex:        pageIndex,
		PageSize:         pageSize,
	}

	movies, total, err := h.Repos.Movie.List(filter)
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]MovieDto, 0, len(movies))
	for i := range movies {
		items = append(items, mapMovieToDto(&movies[i]))
	}

	c.JSON(200, newPagedResult(items, total, pageIndex, pageSize))
}

// GetMovie 影片详情
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		c.Error(err)
		return
	}
	if movie == nil {
		utils.NotFound(c, "找不到指定的电影。")
		return
	}

	c.JSON(200, mapMovieToDto(movie))
}

// PlayDataDto 播放数据：一个 m3u8 清单和直链
type PlayDataDto struct {
	FileUrl  string `json:"fileUrl"`
	FileM3u8 string `json:"fileM3u8"`
}

// GetPlayData 获取影片播放链接
// free 对所有人开放；vip 要求登录且 VIP 生效；paid 暂不支持
func (h *Handler) GetPlayData(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		c.Error(err)
		return
	}
	if movie == nil {
		utils.NotFound(c, "找不到指定的电影。")
		return
	}

	if strings.EqualFold(movie.MonetizationType, model.MonetizationVip) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			utils.Unauthorized(c, "观看此影片需要登录。")
			return
		}

		user, err := h.Repos.User.FindByID(userID)
		if err != nil {
			c.Error(err)
			return
		}
		if !user.IsVipActive(time.Now()) {
			utils.Forbidden(c, "此内容为VIP专属，请先开通会员。")
			return
		}
	}

	if strings.EqualFold(movie.MonetizationType, model.MonetizationPaid) {
		utils.Forbidden(c, "暂不支持付费点播影片。")
		return
	}

	// 查找第一个包含有效播放链接的记录
	file, err := h.Repos.Movie.FindPlayableFile(id)
	if err != nil {
		c.Error(err)
		return
	}
	if file == nil {
		utils.NotFound(c, "未找到该电影的播放资源。")
		return
	}

	c.JSON(200, PlayDataDto{
		FileUrl:  file.FileUrl,
		FileM3u8: file.FileM3u8,
	})
}

// GetRelatedMovies 查询相关影片（共享标签，最多6部）
func (h *Handler) GetRelatedMovies(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	movies, err := h.Repos.Movie.Related(id, 6)
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]MovieBriefDto, 0, len(movies))
	for i := range movies {
		items = append(items, mapMovieToBriefDto(&movies[i]))
	}

	c.JSON(200, items)
}

// ListComments 获取影片评论
func (h *Handler) ListComments(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	comments, err := h.Repos.Comment.ListByMovie(id)
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]CommentDto, 0, len(comments))
	for _, comment := range comments {
		dto := CommentDto{
			ID:          comment.ID,
			Username:    "匿名用户",
			CommentText: comment.CommentText,
			CreatedAt:   comment.CreatedAt,
		}
		if comment.User != nil {
			dto.Username = comment.User.Username
			dto.AvatarUrl = comment.User.AvatarUrl
		}
		items = append(items, dto)
	}

	c.JSON(200, items)
}

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	CommentText string `json:"commentText" binding:"required"`
}

// CreateComment 发表评论（需要登录）
func (h *Handler) CreateComment(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "评论内容不能为空。")
		return
	}

	comment, err := h.Repos.Comment.Create(middleware.GetUserID(c), id, req.CommentText)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(201, comment)
}

// ==================== 影片管理接口 ====================

// MovieFileInput 影片文件数据
type MovieFileInput struct {
	Resolution string `json:"resolution"`
	FileUrl    string `json:"fileUrl"`
	FileM3u8   string `json:"fileM3u8"`
}

// MovieInput 新增/修改影片共用的数据结构
type MovieInput struct {
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description"`
	PosterUrlVertical   string     `json:"posterUrlVertical" binding:"required"`
	PosterUrlHorizontal string     `json:"posterUrlHorizontal"`
	ReleaseYear         int        `json:"releaseYear" binding:"required"`
	DurationInSeconds   *int       `json:"durationInSeconds"`
	MonetizationType    string     `json:"monetizationType" binding:"required,oneof=free vip paid"`
	PublishedAt         *time.Time `json:"publishedAt"`

	Genres     []string         `json:"genres"`
	Regions    []string         `json:"regions"`
	Tags       []string         `json:"tags"`
	MovieFiles []MovieFileInput `json:"movieFiles"`
}

// toModel 转换为影片实体
func (in *MovieInput) toModel() *model.Movie {
	publishedAt := in.PublishedAt
	if publishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}
	return &model.Movie{
		Title:               in.Title,
		Description:         in.Description,
		PosterUrlVertical:   in.PosterUrlVertical,
		PosterUrlHorizontal: in.PosterUrlHorizontal,
		ReleaseYear:         in.ReleaseYear,
		DurationInSeconds:   in.DurationInSeconds,
		MonetizationType:    in.MonetizationType,
		PublishedAt:         publishedAt,
	}
}

// toFiles 转换为影片文件实体列表
func (in *MovieInput) toFiles() []model.MovieFile {
	files := make([]model.MovieFile, 0, len(in.MovieFiles))
	for _, f := range in.MovieFiles {
		files = append(files, model.MovieFile{
			Resolution: f.Resolution,
			FileUrl:    f.FileUrl,
			FileM3u8:   f.FileM3u8,
		})
	}
	return files
}

// CreateMovie 新增一部影片（主表+分类+标签+文件，单事务）
func (h *Handler) CreateMovie(c *gin.Context) {
	var input MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperr.BadRequest("影片数据不完整或格式错误。"))
		return
	}

	movie := input.toModel()
	if err := h.Repos.Movie.Create(movie, input.Genres, input.Regions, input.Tags, input.toFiles()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(201, mapMovieToDto(movie))
}

// UpdateMovie 修改一部影片（重建全部关联，单事务）
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	var input MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperr.BadRequest("影片数据不完整或格式错误。"))
		return
	}

	exists, err := h.Repos.Movie.Exists(id)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		c.Error(apperr.NotFound("找不到要更新的影片。"))
		return
	}

	movie := input.toModel()
	movie.ID = id
	if err := h.Repos.Movie.Update(movie, input.Genres, input.Regions, input.Tags, input.toFiles()); err != nil {
		c.Error(err)
		return
	}

	c.Status(204)
}

// CreateMoviesBatch 批量新增影片
func (h *Handler) CreateMoviesBatch(c *gin.Context) {
	var inputs []MovieInput
	if err := c.ShouldBindJSON(&inputs); err != nil || len(inputs) == 0 {
		c.Error(apperr.BadRequest("影片列表不能为空。"))
		return
	}

	created := 0
	for i := range inputs {
		movie := inputs[i].toModel()
		err := h.Repos.Movie.Create(movie, inputs[i].Genres, inputs[i].Regions, inputs[i].Tags, inputs[i].toFiles())
		if err != nil {
			c.Error(err)
			return
		}
		created++
	}

	utils.Message(c, fmt.Sprintf("%d 部影片已成功创建。", created))
}

// DeleteMovie 删除一部影片及其全部关联数据
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseMovieID(c, "id")
	if !ok {
		return
	}

	exists, err := h.Repos.Movie.Exists(id)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		c.Error(apperr.NotFound("找不到要删除的影片。"))
		return
	}

	if err := h.Repos.Movie.Delete(id); err != nil {
		c.Error(err)
		return
	}

	c.Status(204)
}

// BatchDeleteRequest 批量删除影片请求
type BatchDeleteRequest struct {
	MovieIds []uint64 `json:"movieIds" binding:"required"`
}

// DeleteMoviesBatch 批量删除影片及其全部关联数据
func (h *Handler) DeleteMoviesBatch(c *gin.Context) {
	var req BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.MovieIds) == 0 {
		c.Error(apperr.BadRequest("需要提供要删除的影片ID列表。"))
		return
	}

	if err := h.Repos.Movie.DeleteBatch(req.MovieIds); err != nil {
		c.Error(err)
		return
	}

	utils.Message(c, fmt.Sprintf("%d 部影片已成功删除。", len(req.MovieIds)))
}
