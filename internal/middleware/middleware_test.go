package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"patient_registry/internal/model"
	"patient_registry/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardedRouter(jwtUtil *utils.JWTUtil, roleMW gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{JWTAuthMiddleware(jwtUtil)}
	if roleMW != nil {
		handlers = append(handlers, roleMW)
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString(AuthUserKey),
			"role": c.GetString(AuthRoleKey),
		})
	})
	router.GET("/guarded", handlers...)
	return router
}

func doGuarded(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.GenerateToken("alice", model.RoleEmployee)
	router := newGuardedRouter(jwtUtil, nil)

	w := doGuarded(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"EMPLOYEE"`)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	router := newGuardedRouter(utils.NewJWTUtil("secret", 1), nil)

	w := doGuarded(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newGuardedRouter(utils.NewJWTUtil("secret", 1), nil)

	w := doGuarded(router, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	router := newGuardedRouter(utils.NewJWTUtil("secret", 1), nil)

	w := doGuarded(router, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	issuer := utils.NewJWTUtil("secret", -1)
	token, _ := issuer.GenerateToken("alice", model.RoleEmployee)
	router := newGuardedRouter(utils.NewJWTUtil("secret", 1), nil)

	w := doGuarded(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware_AllowedRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.GenerateToken("alice", model.RoleAdmin)
	router := newGuardedRouter(jwtUtil, AdminMiddleware())

	w := doGuarded(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware_InsufficientRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.GenerateToken("alice", model.RoleEmployee)
	router := newGuardedRouter(jwtUtil, AdminMiddleware())

	// Authenticated but not authorized
	w := doGuarded(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffMiddleware_AllowsBothRoles(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	for _, role := range []string{model.RoleAdmin, model.RoleEmployee} {
		token, _ := jwtUtil.GenerateToken("alice", role)
		router := newGuardedRouter(jwtUtil, StaffMiddleware())

		w := doGuarded(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code, "role %s should be allowed", role)
	}
}
