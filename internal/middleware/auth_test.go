package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/config"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-key-for-unit-tests",
		JWTIssuer:   "VideoPlatform.Api",
		JWTAudience: "VideoPlatform.Client",
		JWTExpiry:   time.Hour,
	}
}

func authTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	r.GET("/optional", OptionalAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRoundTrip(t *testing.T) {
	cfg := testConfig()
	r := authTestRouter(cfg)

	user := &model.User{ID: "user-guid-1", Username: "小明", Email: "xiaoming@example.com"}
	token, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d，期望 200，body: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"userId":"user-guid-1"}` {
		t.Errorf("body = %s", body)
	}
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	cfg := testConfig()
	r := authTestRouter(cfg)

	user := &model.User{ID: "user-guid-1", Email: "a@example.com"}

	wrongSecret := testConfig()
	wrongSecret.JWTSecret = "another-secret"
	badSigToken, err := GenerateToken(user, wrongSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	wrongIssuer := testConfig()
	wrongIssuer.JWTIssuer = "SomeoneElse"
	badIssuerToken, err := GenerateToken(user, wrongIssuer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	expired := testConfig()
	expired.JWTExpiry = -time.Hour
	expiredToken, err := GenerateToken(user, expired)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"无 Token", ""},
		{"格式错误", "not-a-jwt"},
		{"签名不匹配", badSigToken},
		{"签发者不匹配", badIssuerToken},
		{"已过期", expiredToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, tc.token)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("状态码 = %d，期望 401", w.Code)
			}
		})
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	cfg := testConfig()
	r := authTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d，期望 200", w.Code)
	}
	if body := w.Body.String(); body != `{"userId":""}` {
		t.Errorf("匿名访问 body = %s", body)
	}

	// 带有效 Token 时填充用户信息
	user := &model.User{ID: "user-guid-2", Email: "b@example.com"}
	token, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if body := w.Body.String(); body != `{"userId":"user-guid-2"}` {
		t.Errorf("登录访问 body = %s", body)
	}
}
