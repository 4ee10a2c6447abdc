package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/ximnasio/gym-booking/internal/config"
	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/session"
	"github.com/ximnasio/gym-booking/internal/utils"
)

const secret = "test-secret"

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func do(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTSessionAndRole(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ledger.Snapshot{}, ledger.WithBcryptCost(bcrypt.MinCost))
	admin, _ := l.AddMember(ledger.MemberInput{Email: "admin@ximnasio.com", Password: "admin123", FirstName: "Carlos", Role: model.RoleAdmin})
	user, _ := l.AddMember(ledger.MemberInput{Email: "usuario@ejemplo.com", Password: "user123", FirstName: "María"})
	demoted, _ := l.AddMember(ledger.MemberInput{Email: "jefe@ximnasio.com", Password: "jefe123", FirstName: "Jefe", Role: model.RoleAdmin})
	removed, _ := l.AddMember(ledger.MemberInput{Email: "baja@ximnasio.com", Password: "baja123", FirstName: "Baja", Role: model.RoleAdmin})

	mgr := session.NewManager(session.NewMemoryStorage(), l, 0)
	adminSID, userSID := session.NewID(), session.NewID()
	if _, err := mgr.Open(adminSID).Login(ctx, admin.Email, "admin123"); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Open(userSID).Login(ctx, user.Email, "user123"); err != nil {
		t.Fatal(err)
	}
	demotedSID, removedSID := session.NewID(), session.NewID()
	if _, err := mgr.Open(demotedSID).Login(ctx, demoted.Email, "jefe123"); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Open(removedSID).Login(ctx, removed.Email, "baja123"); err != nil {
		t.Fatal(err)
	}
	role := model.RoleUser
	if _, err := l.UpdateMember(demoted.ID, ledger.MemberPatch{Role: &role}); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveMember(removed.ID); err != nil {
		t.Fatal(err)
	}
	demotedTok, _ := utils.NewAccessToken(secret, demoted.ID, demoted.Role, demotedSID, 5)
	removedTok, _ := utils.NewAccessToken(secret, removed.ID, removed.Role, removedSID, 5)

	adminTok, _ := utils.NewAccessToken(secret, admin.ID, admin.Role, adminSID, 5)
	userTok, _ := utils.NewAccessToken(secret, user.ID, user.Role, userSID, 5)
	// Claims an admin role the session does not back.
	forgedTok, _ := utils.NewAccessToken(secret, user.ID, model.RoleAdmin, userSID, 5)
	loggedOutTok, _ := utils.NewAccessToken(secret, user.ID, user.Role, session.NewID(), 5)

	e := echo.New()
	g := e.Group("/v1/admin", JWTAuth(secret), RequireSession(mgr, l), RequireRole(model.RoleAdmin))
	g.GET("/ping", func(c echo.Context) error {
		m := c.Get(CtxIdentity).(model.Member)
		return c.String(http.StatusOK, m.ID)
	})

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"bad token", "abc", http.StatusUnauthorized},
		{"logged out session", loggedOutTok.Token, http.StatusUnauthorized},
		{"member", userTok.Token, http.StatusForbidden},
		{"forged role", forgedTok.Token, http.StatusForbidden},
		{"demoted admin", demotedTok.Token, http.StatusForbidden},
		{"removed admin", removedTok.Token, http.StatusUnauthorized},
		{"admin", adminTok.Token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/v1/admin/ping", tt.token)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want == http.StatusOK && rec.Body.String() != admin.ID {
				t.Errorf("identity = %s, want %s", rec.Body.String(), admin.ID)
			}
		})
	}
}

func TestTokenBucket(t *testing.T) {
	_, rdb := newRedis(t)
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 2, RefillTokens: 1, RefillInterval: time.Hour, TTL: 2 * time.Hour, KeyStrategy: "ip", Prefix: "gym:rl"}
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, NewTokenBucket(cfg, rdb))

	for i, want := range []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests} {
		rec := do(e, http.MethodGet, "/x", "")
		if rec.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, want)
		}
		if want == http.StatusTooManyRequests && rec.Header().Get("Retry-After") == "" {
			t.Errorf("missing Retry-After")
		}
	}
}

func TestTokenBucketDisabledWithoutRedis(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1}
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, NewTokenBucket(cfg, nil))
	for i := 0; i < 3; i++ {
		if rec := do(e, http.MethodGet, "/x", ""); rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d", rec.Code)
		}
	}
}

func TestRedisCache(t *testing.T) {
	_, rdb := newRedis(t)
	cfg := config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}, TTL: time.Minute, KeyStrategy: "route_query", Prefix: "gym:cache"}
	calls := 0
	e := echo.New()
	e.GET("/v1/classes/:id", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id")})
	}, NewRedisCache(cfg, rdb))

	first := do(e, http.MethodGet, "/v1/classes/c1", "")
	second := do(e, http.MethodGet, "/v1/classes/c1", "")
	other := do(e, http.MethodGet, "/v1/classes/c2", "")

	if first.Header().Get("X-Cache") != "MISS" || second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %s then %s", first.Header().Get("X-Cache"), second.Header().Get("X-Cache"))
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("cached body = %s, want %s", second.Body.String(), first.Body.String())
	}
	if other.Header().Get("X-Cache") != "MISS" || calls != 2 {
		t.Errorf("path params shared a cache entry: calls=%d", calls)
	}

	if err := InvalidateCache(context.Background(), cfg, rdb); err != nil {
		t.Fatal(err)
	}
	if rec := do(e, http.MethodGet, "/v1/classes/c1", ""); rec.Header().Get("X-Cache") != "MISS" {
		t.Errorf("entry survived invalidation")
	}
}

func TestLoginLimiter(t *testing.T) {
	l := NewLoginLimiter(1, 2)
	if !l.Allow("1.1.1.1") || !l.Allow("1.1.1.1") {
		t.Fatal("burst not honoured")
	}
	if l.Allow("1.1.1.1") {
		t.Errorf("third attempt allowed")
	}
	if !l.Allow("2.2.2.2") {
		t.Errorf("other IP blocked")
	}

	e := echo.New()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewLoginLimiter(1, 1).Middleware())
	if rec := do(e, http.MethodPost, "/login", ""); rec.Code != http.StatusOK {
		t.Fatalf("first login status = %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/login", ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second login status = %d", rec.Code)
	}
}
