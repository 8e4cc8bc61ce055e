package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JAX838/divine-sounds/auth"
	"github.com/JAX838/divine-sounds/models"
)

const testSecret = "test-secret"

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	router := gin.New()
	router.POST("/api/auth/register", auth.RegisterAdmin(db))
	router.POST("/api/auth/login", auth.Login(db, testSecret))
	return router
}

func post(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	router := setup(t)

	rec := post(router, "/api/auth/register", gin.H{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "s3cret!",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	// password never leaks in the response
	assert.NotContains(t, rec.Body.String(), "s3cret!")

	// duplicate registration refused
	rec = post(router, "/api/auth/register", gin.H{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "s3cret!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(router, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "s3cret!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setup(t)

	post(router, "/api/auth/register", gin.H{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "s3cret!",
	})

	rec := post(router, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(router, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "s3cret!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
