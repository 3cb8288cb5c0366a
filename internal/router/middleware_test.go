package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jusas-smoothie/api/internal/config"
	"github.com/jusas-smoothie/api/internal/constants"
	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/repository"
	"github.com/jusas-smoothie/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if w2.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

type authFixture struct {
	jwtCfg   *config.JWTConfig
	userRepo repository.UserRepository
	token    string
}

func setupAuthFixture(t *testing.T, name, role string) *authFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate users failed: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "unit-test-secret-key-0123456789abcdef",
			ExpireHours: 1,
			CookieName:  "token",
		},
	}
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(cfg, userRepo)

	user := &models.User{
		Email:        name + "-" + role + "@example.com",
		PasswordHash: "x",
		Name:         "Middleware Fixture",
		Role:         role,
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := authService.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	return &authFixture{
		jwtCfg:   &cfg.JWT,
		userRepo: userRepo,
		token:    token,
	}
}

func authTestRouter(fx *authFixture, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthMiddleware(fx.jwtCfg, fx.userRepo))
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
	})
	return r
}

func TestAuthMiddlewareTokenSources(t *testing.T) {
	fx := setupAuthFixture(t, "token-sources", constants.RoleUser)
	r := authTestRouter(fx, false)

	// session cookie
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: fx.token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("cookie auth want 200 got %d: %s", w.Code, w.Body.String())
	}

	// bearer header fallback
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req2.Header.Set("Authorization", "Bearer "+fx.token)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("bearer auth want 200 got %d: %s", w2.Code, w2.Body.String())
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	fx := setupAuthFixture(t, "bad-tokens", constants.RoleUser)
	r := authTestRouter(fx, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token want 401 got %d", w.Code)
	}

	// present but forged: forbidden, not unauthorized
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req2.Header.Set("Authorization", "Bearer "+fx.token+"tampered")
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusForbidden {
		t.Fatalf("tampered token want 403 got %d", w2.Code)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req3.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusForbidden {
		t.Fatalf("garbage token want 403 got %d", w3.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error body failed: %v", err)
	}
	if resp["error"] == "" {
		t.Fatalf("error body should carry a message: %s", w2.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	userFx := setupAuthFixture(t, "require-admin", constants.RoleUser)
	r := authTestRouter(userFx, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: userFx.token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("user role want 403 got %d", w.Code)
	}

	adminFx := setupAuthFixture(t, "require-admin", constants.RoleAdmin)
	r2 := authTestRouter(adminFx, true)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req2.AddCookie(&http.Cookie{Name: "token", Value: adminFx.token})
	r2.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("admin role want 200 got %d: %s", w2.Code, w2.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["role"] != constants.RoleAdmin {
		t.Fatalf("role want admin got %s", resp["role"])
	}
}
