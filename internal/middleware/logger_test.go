package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?period=7d", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestToString(t *testing.T) {
	if toString(nil) != "" {
		t.Fatalf("nil should map to empty string")
	}
	if toString("abc") != "abc" {
		t.Fatalf("string should pass through")
	}
	if toString(42) != "" {
		t.Fatalf("non-string should map to empty string")
	}
}
