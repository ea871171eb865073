package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/skill-swap/backend/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID string, isAdmin bool, ttl time.Duration) string {
	t.Helper()

	claims := &models.JwtCustomClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

// invoke runs the middleware chain against a request carrying the given
// Authorization header and reports the resulting status code plus the claims
// the wrapped handler observed.
func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (int, *models.JwtCustomClaims) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *models.JwtCustomClaims
	handler := mw(func(c echo.Context) error {
		seen = UserClaims(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok {
			return httpErr.Code, seen
		}
		t.Fatalf("unexpected error type: %v", err)
	}
	return rec.Code, seen
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, "user-1", false, time.Hour)

	code, claims := invoke(t, JWTAuthMiddleware(testSecret), "Bearer "+token)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if claims == nil || claims.UserID != "user-1" || claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	code, _ := invoke(t, JWTAuthMiddleware(testSecret), "")
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	token := signToken(t, testSecret, "user-1", false, time.Hour)

	for _, header := range []string{"Bearer", token, "Basic " + token} {
		code, _ := invoke(t, JWTAuthMiddleware(testSecret), header)
		if code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, code)
		}
	}
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, "user-1", false, -time.Minute)

	code, _ := invoke(t, JWTAuthMiddleware(testSecret), "Bearer "+token)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", "user-1", false, time.Hour)

	code, _ := invoke(t, JWTAuthMiddleware(testSecret), "Bearer "+token)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestAdminAuthMiddleware_CapabilitySnapshot(t *testing.T) {
	chain := func(next echo.HandlerFunc) echo.HandlerFunc {
		return JWTAuthMiddleware(testSecret)(AdminAuthMiddleware()(next))
	}

	adminToken := signToken(t, testSecret, "admin-1", true, time.Hour)
	code, claims := invoke(t, chain, "Bearer "+adminToken)
	if code != http.StatusOK {
		t.Fatalf("admin token: status = %d, want 200", code)
	}
	if claims == nil || !claims.IsAdmin {
		t.Fatalf("expected admin claims, got %+v", claims)
	}

	userToken := signToken(t, testSecret, "user-1", false, time.Hour)
	code, _ = invoke(t, chain, "Bearer "+userToken)
	if code != http.StatusForbidden {
		t.Fatalf("non-admin token: status = %d, want 403", code)
	}
}

func TestAdminAuthMiddleware_NoClaims(t *testing.T) {
	code, _ := invoke(t, AdminAuthMiddleware(), "")
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}
