package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riooastfu/pastimobile-be/internal/middleware"
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "rahasia"

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.AuthMiddleware(testSecret))
		r.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"pin":     c.GetString("pin"),
				"id_role": c.GetString("id_role"),
				"role":    c.GetString("role"),
				"ctx_pin": contextutil.GetPIN(c.Request.Context()),
			})
		})
		return r
	}

	t.Run("valid token with numeric id_role", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"pin":     "00123",
			"id_role": 7,
			"role":    "employee",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "00123", got["pin"])
		assert.Equal(t, "7", got["id_role"])
		assert.Equal(t, "employee", got["role"])
		assert.Equal(t, "00123", got["ctx_pin"])
	})

	t.Run("token from cookie", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"pin": "00123", "id_role": "3"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"pin": "00123", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", decode(t, w).Error.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"pin": "1"}).SignedString([]byte("lain"))
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, "INVALID_TOKEN", decode(t, w).Error.Code)
	})

	t.Run("token without pin", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "admin"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeEnforcer struct {
	allow bool
	err   error
	got   []interface{}
}

func (f *fakeEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	f.got = rvals
	return f.allow, f.err
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(e middleware.Enforcer, role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
			c.Next()
		}, middleware.Authorize(e, "attendance", "create"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		e := &fakeEnforcer{allow: true}
		w := run(e, "employee")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []interface{}{"employee", "attendance", "create"}, e.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := run(&fakeEnforcer{}, "employee")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, w).Error.Code)
	})

	t.Run("no role", func(t *testing.T) {
		w := run(&fakeEnforcer{allow: true}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := run(&fakeEnforcer{err: errors.New("bad matcher")}, "employee")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("nil enforcer disables check", func(t *testing.T) {
		w := run(nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimitByPIN(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if pin := c.GetHeader("X-Test-Pin"); pin != "" {
			c.Set(middleware.ContextPIN, pin)
		}
		c.Next()
	})
	r.POST("/x", middleware.RateLimitByPIN(0, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(pin, remote string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.RemoteAddr = remote
		if pin != "" {
			req.Header.Set("X-Test-Pin", pin)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("two pins behind one ip have separate buckets", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("00123", "10.0.0.1:1234"))
		assert.Equal(t, http.StatusOK, hit("00456", "10.0.0.1:1234"))

		assert.Equal(t, http.StatusTooManyRequests, hit("00123", "10.0.0.1:1234"))
		assert.Equal(t, http.StatusTooManyRequests, hit("00456", "10.0.0.1:5678"))
	})

	t.Run("pin bucket does not move with the ip", func(t *testing.T) {
		assert.Equal(t, http.StatusTooManyRequests, hit("00123", "10.0.0.9:1234"))
	})

	t.Run("request without pin falls back to client ip", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("", "10.0.0.1:1234"))
		assert.Equal(t, http.StatusTooManyRequests, hit("", "10.0.0.1:9999"))
		assert.Equal(t, http.StatusOK, hit("", "10.0.0.2:1234"))
	})

	t.Run("ip fallback does not share a bucket with a pin", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("10.0.0.3", "10.0.0.3:1234"))
		assert.Equal(t, http.StatusOK, hit("", "10.0.0.3:1234"))
	})
}

func TestContextLoggerCarriesAuthenticatedPIN(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AuthMiddleware(testSecret), middleware.ContextLogger(zap.New(core)))
	r.GET("/x", func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("handled")
		c.Status(http.StatusOK)
	})

	token := signToken(t, jwt.MapClaims{
		"pin": "00123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", "rid-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Equal(t, 1, logs.Len()) {
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "00123", fields["pin"])
		assert.Equal(t, "rid-7", fields["request_id"])
	}
}

func TestRequestIDAndContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) {
		assert.Equal(t, "rid-1", contextutil.GetRequestID(c.Request.Context()))
		assert.NotNil(t, contextutil.GetLogger(c.Request.Context(), nil))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r2 := gin.New()
	r2.Use(middleware.RequestID())
	r2.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r2.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(mw gin.HandlerFunc, calls *int) *gin.Engine {
		r := gin.New()
		r.POST("/reports", func(c *gin.Context) {
			c.Set("pin", "00123")
			c.Next()
		}, mw, func(c *gin.Context) {
			*calls++
			data := map[string]string{"id": "X"}
			middleware.StoreIdempotentResponse(c, http.StatusCreated, data)
			c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
		})
		return r
	}

	key := middleware.IdempotencyKey("/reports", "00123", "k-1")

	t.Run("first request stores result and releases lock", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", middleware.IdempotencyLockTTL).SetVal(true)
		mock.ExpectSet(key, []byte(`{"status":201,"data":{"id":"X"}}`), middleware.IdempotencyResultTTL).SetVal("OK")
		mock.ExpectDel(key + ":lock").SetVal(1)

		calls := 0
		r := newRouter(middleware.Idempotency(db), &calls)
		req := httptest.NewRequest(http.MethodPost, "/reports", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns stored response", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(key).SetVal(`{"status":201,"data":{"id":"X"}}`)

		calls := 0
		r := newRouter(middleware.Idempotency(db), &calls)
		req := httptest.NewRequest(http.MethodPost, "/reports", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, calls)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"id":"X"}`, string(decode(t, w).Data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", middleware.IdempotencyLockTTL).SetVal(false)

		calls := 0
		r := newRouter(middleware.Idempotency(db), &calls)
		req := httptest.NewRequest(http.MethodPost, "/reports", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PROCESSING", decode(t, w).Error.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no header passes through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()

		calls := 0
		r := newRouter(middleware.Idempotency(db), &calls)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
