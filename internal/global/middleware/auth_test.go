package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pomelox-server/internal/global/jwt"
	"pomelox-server/internal/global/permission"
	"pomelox-server/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func authTestEngine(minRole permission.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(minRole), func(c *gin.Context) {
		payload, _ := jwt.GetUserPayload(c)
		response.Success(c, gin.H{"userId": payload.UserID})
	})
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, token string) response.ResponseBody {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAuthMissingToken(t *testing.T) {
	r := authTestEngine(permission.RoleStaff)
	resp := doAuthRequest(t, r, "")
	require.Equal(t, response.ErrTokenInvalid.Code, resp.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	r := authTestEngine(permission.RoleStaff)
	resp := doAuthRequest(t, r, "garbage")
	require.Equal(t, response.ErrTokenInvalid.Code, resp.Code)
}

func TestAuthInsufficientRole(t *testing.T) {
	r := authTestEngine(permission.RoleStaff)
	token := jwt.CreateToken(jwt.Payload{UserID: 1, Role: permission.RoleCommon})
	resp := doAuthRequest(t, r, token)
	require.Equal(t, response.ErrForbidden.Code, resp.Code)
}

func TestAuthSufficientRole(t *testing.T) {
	r := authTestEngine(permission.RoleStaff)
	token := jwt.CreateToken(jwt.Payload{UserID: 1, Role: permission.RoleManage})
	resp := doAuthRequest(t, r, token)
	require.Equal(t, int32(200), resp.Code)
}
