package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// MovieListFilter 影片列表查询条件
type MovieListFilter struct {
	Genre            string
	Region           string
	Tag              string
	MonetizationType string
	SortBy           string // release_year 或 published_at（默认）
	PageIndex        int    // 从 1 开始
	PageSize         int
}

// filtered 构造带筛选条件的基础查询
func (r *MovieRepository) filtered(f MovieListFilter) *gorm.DB {
	q := r.db.Model(&model.Movie{})

	if f.Genre != "" {
		sub := r.db.Model(&model.MovieCategory{}).
			Select("movie_categories.movie_id").
			Joins("JOIN categories ON categories.id = movie_categories.category_id").
			Where("categories.type = ? AND categories.name = ?", model.CategoryTypeGenre, f.Genre)
		q = q.Where("movies.id IN (?)", sub)
	}
	if f.Region != "" {
		sub := r.db.Model(&model.MovieCategory{}).
			Select("movie_categories.movie_id").
			Joins("JOIN categories ON categories.id = movie_categories.category_id").
			Where("categories.type = ? AND categories.name = ?", model.CategoryTypeRegion, f.Region)
		q = q.Where("movies.id IN (?)", sub)
	}
	if f.Tag != "" {
		sub := r.db.Model(&model.MovieTag{}).
			Select("movie_tags.movie_id").
			Joins("JOIN tags ON tags.id = movie_tags.tag_id").
			Where("tags.name = ?", f.Tag)
		q = q.Where("movies.id IN (?)", sub)
	}
	if f.MonetizationType != "" {
		q = q.Where("movies.monetization_type = ?", f.MonetizationType)
	}

	return q
}

// List 按条件分页查询影片（含分类、标签）
func (r *MovieRepository) List(f MovieListFilter) ([]model.Movie, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "published_at DESC"
	if f.SortBy == "release_year" {
		order = "release_year DESC"
	}

	var movies []model.Movie
	err := r.filtered(f).
		Preload("Categories").
		Preload("Tags").
		Order(order).
		Limit(f.PageSize).
		Offset((f.PageIndex - 1) * f.PageSize).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// FindByID 根据 ID 查找影片（含分类、标签）
func (r *MovieRepository) FindByID(id uint64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Preload("Categories").Preload("Tags").First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Exists 检查影片是否存在
func (r *MovieRepository) Exists(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Movie{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindPlayableFile 查找第一个包含有效播放链接的文件记录
func (r *MovieRepository) FindPlayableFile(movieID uint64) (*model.MovieFile, error) {
	var file model.MovieFile
	err := r.db.Where("movie_id = ? AND (file_m3u8 <> '' OR file_url <> '')", movieID).
		Order("id ASC").
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &file, nil
}

// Related 查找相关影片：与当前影片共享标签的其他影片
func (r *MovieRepository) Related(id uint64, limit int) ([]model.Movie, error) {
	// 1. 当前影片的所有标签 ID
	var tagIDs []uint
	if err := r.db.Model(&model.MovieTag{}).
		Where("movie_id = ?", id).
		Pluck("tag_id", &tagIDs).Error; err != nil {
		return nil, err
	}
	if len(tagIDs) == 0 {
		return []model.Movie{}, nil
	}

	// 2. 包含这些标签的其他影片 ID
	var movieIDs []uint64
	if err := r.db.Model(&model.MovieTag{}).
		Where("tag_id IN ? AND movie_id <> ?", tagIDs, id).
		Distinct().
		Pluck("movie_id", &movieIDs).Error; err != nil {
		return nil, err
	}
	if len(movieIDs) == 0 {
		return []model.Movie{}, nil
	}

	// 3. 取影片信息
	var movies []model.Movie
	err := r.db.Where("id IN ?", movieIDs).Limit(limit).Find(&movies).Error
	return movies, err
}

// Create 创建影片及其分类、标签、文件关联（单事务）
func (r *MovieRepository) Create(movie *model.Movie, genres, regions, tags []string, files []model.MovieFile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(movie).Error; err != nil {
			return err
		}
		return replaceAssociations(tx, movie.ID, genres, regions, tags, files)
	})
}

// Update 更新影片主表并重建分类、标签、文件关联（单事务）
func (r *MovieRepository) Update(movie *model.Movie, genres, regions, tags []string, files []model.MovieFile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 1. 更新影片主表（覆盖全部可编辑字段）
		err := tx.Model(&model.Movie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
			"title":                 movie.Title,
			"description":           movie.Description,
			"poster_url_vertical":   movie.PosterUrlVertical,
			"poster_url_horizontal": movie.PosterUrlHorizontal,
			"release_year":          movie.ReleaseYear,
			"duration_in_seconds":   movie.DurationInSeconds,
			"monetization_type":     movie.MonetizationType,
			"published_at":          movie.PublishedAt,
		}).Error
		if err != nil {
			return err
		}

		// 2. 删除旧的关联关系
		if err := tx.Where("movie_id = ?", movie.ID).Delete(&model.MovieCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", movie.ID).Delete(&model.MovieTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", movie.ID).Delete(&model.MovieFile{}).Error; err != nil {
			return err
		}

		// 3. 插入新的关联关系
		return replaceAssociations(tx, movie.ID, genres, regions, tags, files)
	})
}

// Delete 删除影片及其全部关联数据（单事务，任一失败整体回滚）
func (r *MovieRepository) Delete(id uint64) error {
	return r.DeleteBatch([]uint64{id})
}

// DeleteBatch 批量删除影片及其全部关联数据（单事务）
func (r *MovieRepository) DeleteBatch(ids []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id IN ?", ids).Delete(&model.MovieCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id IN ?", ids).Delete(&model.MovieTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id IN ?", ids).Delete(&model.MovieFile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id IN ?", ids).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id IN ?", ids).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id IN ?", ids).Delete(&model.WatchHistory{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Movie{}).Error
	})
}

// replaceAssociations 按名称写入影片的分类、标签关联和文件记录
// 名称在库中不存在的分类/标签会被忽略
func replaceAssociations(tx *gorm.DB, movieID uint64, genres, regions, tags []string, files []model.MovieFile) error {
	allCategoryNames := append(append([]string{}, genres...), regions...)
	if len(allCategoryNames) > 0 {
		var categories []model.Category
		if err := tx.Where("name IN ?", allCategoryNames).Find(&categories).Error; err != nil {
			return err
		}
		movieCategories := make([]model.MovieCategory, 0, len(categories))
		for _, c := range categories {
			movieCategories = append(movieCategories, model.MovieCategory{MovieID: movieID, CategoryID: c.ID})
		}
		if len(movieCategories) > 0 {
			if err := tx.Create(&movieCategories).Error; err != nil {
				return err
			}
		}
	}

	if len(tags) > 0 {
		var tagRows []model.Tag
		if err := tx.Where("name IN ?", tags).Find(&tagRows).Error; err != nil {
			return err
		}
		movieTags := make([]model.MovieTag, 0, len(tagRows))
		for _, t := range tagRows {
			movieTags = append(movieTags, model.MovieTag{MovieID: movieID, TagID: t.ID})
		}
		if len(movieTags) > 0 {
			if err := tx.Create(&movieTags).Error; err != nil {
				return err
			}
		}
	}

	if len(files) > 0 {
		for i := range files {
			files[i].ID = 0
			files[i].MovieID = movieID
		}
		if err := tx.Create(&files).Error; err != nil {
			return err
		}
	}

	return nil
}
