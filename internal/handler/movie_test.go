package handler_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

func TestGetPlayDataGating(t *testing.T) {
	s := newTestServer(t)
	s.disableEmailVerification(t)

	files := []model.MovieFile{{Resolution: "1080p", FileM3u8: "https://cdn.example.com/a.m3u8"}}
	free := s.seedMovie(t, "免费片", model.MonetizationFree, files)
	vip := s.seedMovie(t, "会员片", model.MonetizationVip,
		[]model.MovieFile{{Resolution: "1080p", FileM3u8: "https://cdn.example.com/b.m3u8"}})
	paid := s.seedMovie(t, "付费片", model.MonetizationPaid,
		[]model.MovieFile{{Resolution: "1080p", FileUrl: "https://cdn.example.com/c.mp4"}})

	token, userID := s.registerAndLogin(t, "小明", "xiaoming@example.com", "secret123")

	playPath := func(id uint64) string { return fmt.Sprintf("/api/movies/%d/play", id) }

	// 免费影片匿名可看
	w := s.do(t, "GET", playPath(free.ID), "", nil)
	if w.Code != 200 {
		t.Errorf("匿名看免费片状态码 = %d，期望 200", w.Code)
	}
	var play struct {
		FileM3u8 string `json:"fileM3u8"`
	}
	decode(t, w, &play)
	if play.FileM3u8 != "https://cdn.example.com/a.m3u8" {
		t.Errorf("播放数据 = %+v", play)
	}

	// VIP 影片：匿名 401，普通用户 403，VIP 用户 200
	w = s.do(t, "GET", playPath(vip.ID), "", nil)
	if w.Code != 401 {
		t.Errorf("匿名看会员片状态码 = %d，期望 401", w.Code)
	}
	w = s.do(t, "GET", playPath(vip.ID), token, nil)
	if w.Code != 403 {
		t.Errorf("普通用户看会员片状态码 = %d，期望 403", w.Code)
	}

	s.makeVip(t, userID)
	w = s.do(t, "GET", playPath(vip.ID), token, nil)
	if w.Code != 200 {
		t.Errorf("VIP 用户看会员片状态码 = %d，期望 200，body: %s", w.Code, w.Body.String())
	}

	// 付费影片即使 VIP 也不可看
	w = s.do(t, "GET", playPath(paid.ID), token, nil)
	if w.Code != 403 {
		t.Errorf("付费片状态码 = %d，期望 403", w.Code)
	}

	// 不存在的影片
	w = s.do(t, "GET", playPath(999), "", nil)
	if w.Code != 404 {
		t.Errorf("不存在影片状态码 = %d，期望 404", w.Code)
	}
}

func TestGetPlayDataNoFile(t *testing.T) {
	s := newTestServer(t)
	movie := s.seedMovie(t, "无资源影片", model.MonetizationFree, nil)

	w := s.do(t, "GET", fmt.Sprintf("/api/movies/%d/play", movie.ID), "", nil)
	if w.Code != 404 {
		t.Errorf("无播放资源状态码 = %d，期望 404", w.Code)
	}
}

func TestMovieCrudOverHTTP(t *testing.T) {
	s := newTestServer(t)
	s.disableEmailVerification(t)
	token, _ := s.registerAndLogin(t, "管理员", "admin@example.com", "secret123")

	categories := []model.Category{
		{Name: "动作", Type: model.CategoryTypeGenre},
		{Name: "大陆", Type: model.CategoryTypeRegion},
	}
	if err := s.db.Create(&categories).Error; err != nil {
		t.Fatalf("写入分类失败: %v", err)
	}
	tags := []model.Tag{{Name: "高分"}}
	if err := s.db.Create(&tags).Error; err != nil {
		t.Fatalf("写入标签失败: %v", err)
	}

	input := gin.H{
		"title":             "新影片",
		"posterUrlVertical": "poster.jpg",
		"releaseYear":       2024,
		"monetizationType":  "free",
		"genres":            []string{"动作"},
		"regions":           []string{"大陆"},
		"tags":              []string{"高分"},
		"movieFiles":        []gin.H{{"resolution": "1080p", "fileM3u8": "a.m3u8"}},
	}

	// 未登录不可管理
	w := s.do(t, "POST", "/api/movies", "", input)
	if w.Code != 401 {
		t.Errorf("匿名创建影片状态码 = %d，期望 401", w.Code)
	}

	// 创建
	w = s.do(t, "POST", "/api/movies", token, input)
	if w.Code != 201 {
		t.Fatalf("创建影片状态码 = %d，body: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     uint64   `json:"id"`
		Genres []string `json:"genres"`
	}
	decode(t, w, &created)
	if created.ID == 0 || len(created.Genres) != 1 {
		t.Fatalf("创建响应 = %+v", created)
	}

	// 数据不完整
	w = s.do(t, "POST", "/api/movies", token, gin.H{"title": "缺字段"})
	if w.Code != 400 {
		t.Errorf("数据不完整状态码 = %d，期望 400", w.Code)
	}

	// 详情
	w = s.do(t, "GET", fmt.Sprintf("/api/movies/%d", created.ID), "", nil)
	if w.Code != 200 {
		t.Fatalf("详情状态码 = %d", w.Code)
	}
	var detail struct {
		Title   string   `json:"title"`
		Regions []string `json:"regions"`
		Tags    []string `json:"tags"`
	}
	decode(t, w, &detail)
	if detail.Title != "新影片" || len(detail.Regions) != 1 || len(detail.Tags) != 1 {
		t.Errorf("详情 = %+v", detail)
	}

	// 更新
	input["title"] = "改名影片"
	input["monetizationType"] = "vip"
	w = s.do(t, "PUT", fmt.Sprintf("/api/movies/%d", created.ID), token, input)
	if w.Code != 204 {
		t.Fatalf("更新状态码 = %d，body: %s", w.Code, w.Body.String())
	}
	w = s.do(t, "PUT", "/api/movies/999", token, input)
	if w.Code != 404 {
		t.Errorf("更新不存在影片状态码 = %d，期望 404", w.Code)
	}

	// 列表按付费类型过滤
	w = s.do(t, "GET", "/api/movies?monetizationType=vip", "", nil)
	var page struct {
		Items      []struct{ Title string } `json:"items"`
		TotalCount int64                    `json:"totalCount"`
	}
	decode(t, w, &page)
	if page.TotalCount != 1 || page.Items[0].Title != "改名影片" {
		t.Errorf("列表 = %+v", page)
	}

	// 删除
	w = s.do(t, "DELETE", fmt.Sprintf("/api/movies/%d", created.ID), token, nil)
	if w.Code != 204 {
		t.Fatalf("删除状态码 = %d", w.Code)
	}
	w = s.do(t, "GET", fmt.Sprintf("/api/movies/%d", created.ID), "", nil)
	if w.Code != 404 {
		t.Errorf("删除后详情状态码 = %d，期望 404", w.Code)
	}
}

func TestMovieBatchEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.disableEmailVerification(t)
	token, _ := s.registerAndLogin(t, "管理员", "admin@example.com", "secret123")

	inputs := []gin.H{
		{"title": "批量1", "posterUrlVertical": "p1.jpg", "releaseYear": 2023, "monetizationType": "free"},
		{"title": "批量2", "posterUrlVertical": "p2.jpg", "releaseYear": 2024, "monetizationType": "vip"},
	}
	w := s.do(t, "POST", "/api/movies/batch", token, inputs)
	if w.Code != 200 {
		t.Fatalf("批量创建状态码 = %d，body: %s", w.Code, w.Body.String())
	}

	var count int64
	s.db.Model(&model.Movie{}).Count(&count)
	if count != 2 {
		t.Fatalf("影片数 = %d，期望 2", count)
	}

	// 空列表
	w = s.do(t, "POST", "/api/movies/batch", token, []gin.H{})
	if w.Code != 400 {
		t.Errorf("空批量创建状态码 = %d，期望 400", w.Code)
	}

	var ids []uint64
	s.db.Model(&model.Movie{}).Pluck("id", &ids)
	w = s.do(t, "DELETE", "/api/movies/batch", token, gin.H{"movieIds": ids})
	if w.Code != 200 {
		t.Fatalf("批量删除状态码 = %d，body: %s", w.Code, w.Body.String())
	}
	s.db.Model(&model.Movie{}).Count(&count)
	if count != 0 {
		t.Errorf("批量删除后影片数 = %d，期望 0", count)
	}
}

func TestCommentsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	s.disableEmailVerification(t)

	token, _ := s.registerAndLogin(t, "小明", "xiaoming@example.com", "secret123")
	movie := s.seedMovie(t, "影片", model.MonetizationFree, nil)
	path := fmt.Sprintf("/api/movies/%d/comments", movie.ID)

	// 未登录不能发评论
	w := s.do(t, "POST", path, "", gin.H{"commentText": "好看"})
	if w.Code != 401 {
		t.Errorf("匿名评论状态码 = %d，期望 401", w.Code)
	}

	w = s.do(t, "POST", path, token, gin.H{"commentText": "好看"})
	if w.Code != 201 {
		t.Fatalf("发表评论状态码 = %d，body: %s", w.Code, w.Body.String())
	}

	// 空评论
	w = s.do(t, "POST", path, token, gin.H{})
	if w.Code != 400 {
		t.Errorf("空评论状态码 = %d，期望 400", w.Code)
	}

	w = s.do(t, "GET", path, "", nil)
	if w.Code != 200 {
		t.Fatalf("评论列表状态码 = %d", w.Code)
	}
	var comments []struct {
		Username    string `json:"username"`
		CommentText string `json:"commentText"`
	}
	decode(t, w, &comments)
	if len(comments) != 1 || comments[0].Username != "小明" || comments[0].CommentText != "好看" {
		t.Errorf("评论列表 = %+v", comments)
	}
}
