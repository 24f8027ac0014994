package model

import (
	"time"
)

// 影片付费类型
const (
	MonetizationFree = "free"
	MonetizationVip  = "vip"
	MonetizationPaid = "paid"
)

// 分类类型
const (
	CategoryTypeGenre  = "genre"
	CategoryTypeRegion = "region"
)

// Movie 影片主表模型
type Movie struct {
	ID                  uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	PosterUrlVertical   string     `json:"posterUrlVertical"`
	PosterUrlHorizontal string     `json:"posterUrlHorizontal"`
	ReleaseYear         int        `json:"releaseYear"`
	DurationInSeconds   *int       `json:"durationInSeconds"`
	MonetizationType    string     `json:"monetizationType"`
	PublishedAt         *time.Time `json:"publishedAt"`

	// 关联数据，仅查询时填充
	Categories []Category `json:"-" gorm:"many2many:movie_categories;joinForeignKey:MovieID;joinReferences:CategoryID"`
	Tags       []Tag      `json:"-" gorm:"many2many:movie_tags;joinForeignKey:MovieID;joinReferences:TagID"`
}

// MovieFile 影片播放地址模型
type MovieFile struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID    uint64 `json:"movieId" gorm:"index"`
	Resolution string `json:"resolution"`
	FileUrl    string `json:"fileUrl"`
	FileM3u8   string `json:"fileM3u8"`
}

// Category 分类模型（type 为 genre 或 region）
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Tag 标签模型
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name"`
}

// MovieCategory 影片-分类关联表
type MovieCategory struct {
	MovieID    uint64 `gorm:"primaryKey"`
	CategoryID uint   `gorm:"primaryKey"`
}

// MovieTag 影片-标签关联表
type MovieTag struct {
	MovieID uint64 `gorm:"primaryKey"`
	TagID   uint   `gorm:"primaryKey"`
}
