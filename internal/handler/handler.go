package handler

import (
	"math"
	"time"

	"github.com/jay99268/VideoPlatform.Api/internal/config"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
	"github.com/jay99268/VideoPlatform.Api/internal/repository"
	"github.com/jay99268/VideoPlatform.Api/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Config   *config.Config
	Settings *service.SettingsService
	Email    service.EmailService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:    repos,
		Config:   cfg,
		Settings: service.NewSettingsService(repos.Setting),
		Email:    service.NewMockEmailService(),
	}
}

// PagedResult 分页数据响应
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// newPagedResult 组装分页响应
func newPagedResult[T any](items []T, total int64, pageIndex, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: total,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
}

// MovieDto 影片响应数据
type MovieDto struct {
	ID               uint64   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	PosterUrlVertical string  `json:"posterUrlVertical"`
	ReleaseYear      int      `json:"releaseYear,omitempty"`
	MonetizationType string   `json:"monetizationType"`
	Genres           []string `json:"genres"`
	Regions          []string `json:"regions"`
	Tags             []string `json:"tags"`
}

// mapMovieToDto 完整影片映射（含分类、标签名称列表）
func mapMovieToDto(m *model.Movie) MovieDto {
	dto := MovieDto{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		PosterUrlVertical: m.PosterUrlVertical,
		ReleaseYear:       m.ReleaseYear,
		MonetizationType:  m.MonetizationType,
		Genres:            []string{},
		Regions:           []string{},
		Tags:              []string{},
	}
	for _, c := range m.Categories {
		switch c.Type {
		case model.CategoryTypeGenre:
			dto.Genres = append(dto.Genres, c.Name)
		case model.CategoryTypeRegion:
			dto.Regions = append(dto.Regions, c.Name)
		}
	}
	for _, t := range m.Tags {
		dto.Tags = append(dto.Tags, t.Name)
	}
	return dto
}

// MovieBriefDto 影片简要信息（列表卡片用）
type MovieBriefDto struct {
	ID                uint64 `json:"id"`
	Title             string `json:"title"`
	PosterUrlVertical string `json:"posterUrlVertical"`
	MonetizationType  string `json:"monetizationType"`
}

// mapMovieToBriefDto 影片简要映射
func mapMovieToBriefDto(m *model.Movie) MovieBriefDto {
	return MovieBriefDto{
		ID:                m.ID,
		Title:             m.Title,
		PosterUrlVertical: m.PosterUrlVertical,
		MonetizationType:  m.MonetizationType,
	}
}

// CommentDto 评论响应数据
type CommentDto struct {
	ID          uint64    `json:"id"`
	Username    string    `json:"username"`
	AvatarUrl   string    `json:"avatarUrl"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}
