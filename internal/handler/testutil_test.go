package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jay99268/VideoPlatform.Api/internal/config"
	"github.com/jay99268/VideoPlatform.Api/internal/handler"
	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
	"github.com/jay99268/VideoPlatform.Api/internal/repository"
	"github.com/jay99268/VideoPlatform.Api/internal/router"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// testServer 接口测试环境：完整路由 + 内存数据库
type testServer struct {
	engine *gin.Engine
	repos  *repository.Repositories
	cfg    *config.Config
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.MovieFile{},
		&model.Category{},
		&model.Tag{},
		&model.MovieCategory{},
		&model.MovieTag{},
		&model.Comment{},
		&model.WatchHistory{},
		&model.Favorite{},
		&model.GossipPost{},
		&model.GossipMedia{},
		&model.UserGossipProgress{},
		&model.SubscriptionPlan{},
		&model.RedemptionCode{},
		&model.Transaction{},
		&model.Banner{},
		&model.AppSetting{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	// 验证码等短期数据用全局缓存，每个测试重建一份
	utils.InitCache()

	cfg := &config.Config{
		Env:         "test",
		JWTSecret:   "test-secret-key-for-unit-tests",
		JWTIssuer:   "VideoPlatform.Api",
		JWTAudience: "VideoPlatform.Client",
		JWTExpiry:   time.Hour,
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler(false))

	repos := repository.NewRepositories(db)
	router.RegisterRoutes(engine, handler.NewHandler(repos, cfg))

	return &testServer{engine: engine, repos: repos, cfg: cfg, db: db}
}

// do 发送 JSON 请求，token 不为空时带上 Bearer 认证头
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求失败: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// decode 解析响应 JSON
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("解析响应失败: %v，body: %s", err, w.Body.String())
	}
}

// disableEmailVerification 关闭注册验证码开关
func (s *testServer) disableEmailVerification(t *testing.T) {
	t.Helper()
	setting := model.AppSetting{SettingKey: "EnableEmailVerification", SettingValue: "false"}
	if err := s.db.Create(&setting).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
}

// registerAndLogin 注册并登录，返回 Token 和用户 ID
func (s *testServer) registerAndLogin(t *testing.T, username, email, password string) (token, userID string) {
	t.Helper()

	w := s.do(t, "POST", "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	if w.Code != 200 {
		t.Fatalf("注册失败: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, "POST", "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != 200 {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)

	user, err := s.repos.User.FindByEmail(email)
	if err != nil || user == nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	return resp.Token, user.ID
}

// makeVip 将用户直接置为有效 VIP
func (s *testServer) makeVip(t *testing.T, userID string) {
	t.Helper()
	expiresAt := time.Now().Add(24 * time.Hour)
	err := s.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"vip_status":     model.VipStatusActive,
		"vip_expires_at": expiresAt,
	}).Error
	if err != nil {
		t.Fatalf("更新 VIP 状态失败: %v", err)
	}
}

// seedMovie 直接写入一部影片
func (s *testServer) seedMovie(t *testing.T, title, monetization string, files []model.MovieFile) *model.Movie {
	t.Helper()
	published := time.Now()
	movie := &model.Movie{
		Title:             title,
		PosterUrlVertical: "poster.jpg",
		ReleaseYear:       2023,
		MonetizationType:  monetization,
		PublishedAt:       &published,
	}
	if err := s.repos.Movie.Create(movie, nil, nil, nil, files); err != nil {
		t.Fatalf("写入影片失败: %v", err)
	}
	return movie
}
