package comments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForPostReturnsOnlyMatchingComments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := NewRepository(t.TempDir())
	ctl := NewController(repo)

	r := gin.New()
	r.GET("/api/comments/:id", ctl.ListForPost)

	first, err := repo.Create("alice", "lovely", "post-1")
	require.NoError(t, err)
	_, err = repo.Create("bob", "meh", "post-2")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/comments/post-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var cms []Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cms))
	require.Len(t, cms, 1)
	assert.Equal(t, first.ID, cms[0].ID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/comments/post-3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cms))
	assert.Empty(t, cms)
}
