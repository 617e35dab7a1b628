package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewRepository(t.TempDir())
	ctl := NewController(repo)

	r := gin.New()
	r.GET("/api/categories", ctl.List)
	r.POST("/api/categories", ctl.Create)
	r.GET("/api/categories/:id", ctl.Get)
	r.PATCH("/api/categories/:id", ctl.Update)
	r.DELETE("/api/categories/:id", ctl.Delete)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndListCategories(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Food"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Food", created.Name)
	assert.Equal(t, "food", created.Slug)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	w = doJSON(t, r, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/categories", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnknownCategoryIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/categories/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCategoryKeepsIDAndCreatedAt(t *testing.T) {
	r, repo := newTestRouter(t)

	created, err := repo.Create("Food")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPatch, "/api/categories/"+created.ID, `{"name":"Travel"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Travel", updated.Name)
	assert.Equal(t, "travel", updated.Slug)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestUpdateUnknownCategoryIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/categories/nope", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryReturnsRemovedRecord(t *testing.T) {
	r, repo := newTestRouter(t)

	created, err := repo.Create("Food")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/api/categories/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var removed Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removed))
	assert.Equal(t, created.ID, removed.ID)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteUnknownCategoryLeavesCollectionUntouched(t *testing.T) {
	r, repo := newTestRouter(t)

	_, err := repo.Create("Food")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/api/categories/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
