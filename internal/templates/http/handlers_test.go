package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/company-mgmt/company-api-backend/internal/cache"
	taskrepo "github.com/company-mgmt/company-api-backend/internal/tasks/repository"
	"github.com/company-mgmt/company-api-backend/internal/templates/repository"
	"github.com/company-mgmt/company-api-backend/internal/templates/service"
)

func newTestRouter() (*gin.Engine, *taskrepo.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	g := gin.New()

	templates := repository.NewMemoryRepo()
	tasks := taskrepo.NewMemoryRepo()
	New(templates, service.NewAssignService(templates, tasks)).Register(g)
	return g, tasks
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestTemplateLifecycle(t *testing.T) {
	g, _ := newTestRouter()

	w := doJSON(g, http.MethodPost, "/create_template",
		`{"user_id": "u1", "title": "Renew license", "description": "yearly"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "u1", created["user_id"])

	w = doJSON(g, http.MethodGet, "/getall_templates", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)

	w = doJSON(g, http.MethodDelete, "/delete_template/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodDelete, "/delete_template/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTemplate_MissingTitle(t *testing.T) {
	g, _ := newTestRouter()

	w := doJSON(g, http.MethodPost, "/create_template", `{"user_id": "u1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAssignTemplate(t *testing.T) {
	g, tasks := newTestRouter()

	w := doJSON(g, http.MethodPost, "/create_template",
		`{"title": "Quarterly filing", "description": "q-end"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doJSON(g, http.MethodPost, "/assign_template/"+id,
		`{"companyIds": ["c1", "c2"], "startDate": "2024-01-01", "dueDate": "2024-03-31"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)

	companies := map[string]bool{}
	for _, task := range out {
		companies[task["companyId"].(string)] = true
		assert.Equal(t, "Quarterly filing", task["title"])
		assert.Equal(t, "q-end", task["description"])
	}
	assert.True(t, companies["c1"])
	assert.True(t, companies["c2"])

	stored, err := tasks.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestAssignTemplate_InvalidatesTaskListCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	lists := cache.NewListCache(rdb, cache.DefaultListTTL)

	templates := repository.NewMemoryRepo()
	tasks := taskrepo.NewMemoryRepo()
	New(templates, service.NewAssignService(templates, tasks)).WithListCache(lists).Register(g)

	w := doJSON(g, http.MethodPost, "/create_template", `{"title": "Audit prep"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	// a cached task list from before the fan-out must not survive it
	ctx := context.Background()
	require.NoError(t, lists.SetJSON(ctx, cache.TasksListKey, []string{"stale"}))

	w = doJSON(g, http.MethodPost, "/assign_template/"+id, `{"companyIds": ["c1"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var out []string
	assert.False(t, lists.GetJSON(ctx, cache.TasksListKey, &out))
}

func TestAssignTemplate_UnknownTemplate(t *testing.T) {
	g, _ := newTestRouter()

	w := doJSON(g, http.MethodPost, "/assign_template/missing", `{"companyIds": ["c1"]}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing", body["id"])
}

func TestAssignTemplate_EmptyCompanyList(t *testing.T) {
	g, _ := newTestRouter()

	w := doJSON(g, http.MethodPost, "/assign_template/whatever", `{"companyIds": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
