package ping

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pomelox-server/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := &ModulePing{}
	m.Init()

	r := gin.New()
	m.InitRouter(r.Group("/"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, int32(200), resp.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "pong", data["message"])
}
