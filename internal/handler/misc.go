package handler

import (
	"github.com/gin-gonic/gin"
)

// BannerDto 轮播图响应数据
type BannerDto struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	LinkType    string `json:"linkType"`
	LinkUrl     string `json:"linkUrl"`
}

// GetBanners 获取主页轮播图
func (h *Handler) GetBanners(c *gin.Context) {
	banners, err := h.Repos.Banner.ListActive()
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]BannerDto, 0, len(banners))
	for _, b := range banners {
		items = append(items, BannerDto{
			Title:       b.Title,
			Description: b.Description,
			ImageUrl:    b.ImageUrl,
			LinkType:    b.LinkType,
			LinkUrl:     b.LinkUrl,
		})
	}

	c.JSON(200, items)
}

// CategoryDto 分类响应数据
type CategoryDto struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// GetCategories 获取全部分类
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Repos.Category.List()
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]CategoryDto, 0, len(categories))
	for _, category := range categories {
		items = append(items, CategoryDto{Name: category.Name, Type: category.Type})
	}

	c.JSON(200, items)
}

// TagDto 标签响应数据
type TagDto struct {
	Name string `json:"name"`
}

// GetTags 获取全部标签
func (h *Handler) GetTags(c *gin.Context) {
	tags, err := h.Repos.Tag.List()
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]TagDto, 0, len(tags))
	for _, tag := range tags {
		items = append(items, TagDto{Name: tag.Name})
	}

	c.JSON(200, items)
}
