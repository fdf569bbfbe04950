package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/render"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/service"
)

type fakeStore struct {
	projects map[string]*domain.Project
	listErr  error
}

func (s *fakeStore) GetProject(_ context.Context, id string) (*domain.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *fakeStore) List(context.Context) ([]domain.Project, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeStore) Save(_ context.Context, p *domain.Project) error {
	s.projects[p.ID] = p.Clone()
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	delete(s.projects, id)
	return nil
}

func setupRouter(t *testing.T, store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	renderer, err := render.New(16)
	require.NoError(t, err)

	r := gin.New()
	New(service.NewProjectService(store, renderer)).Register(r.Group("/admin/projects"))
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestEdit_NotFound(t *testing.T) {
	r := setupRouter(t, &fakeStore{projects: map[string]*domain.Project{}})

	rr := do(r, http.MethodGet, "/admin/projects/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.NotContains(t, resp, "view")
}

func TestEdit_Found(t *testing.T) {
	store := &fakeStore{projects: map[string]*domain.Project{
		"spring-boot": {ID: "spring-boot", Name: "Spring Boot", Category: domain.CategoryActive,
			Releases: []domain.Release{{Version: "1.0.0.RELEASE", APIDocURL: "http://docs/{version}/api", GroupID: "org.springframework.boot"}}},
	}}
	r := setupRouter(t, store)

	rr := do(r, http.MethodGet, "/admin/projects/spring-boot", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		OK   bool            `json:"ok"`
		View domain.EditView `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "http://docs/{version}/api", resp.View.Project.Releases[0].APIDocURL)
	require.NotNil(t, resp.View.GroupID)
	assert.Equal(t, "org.springframework.boot", *resp.View.GroupID)
	assert.Len(t, resp.View.Categories, 4)
}

func TestNewProject(t *testing.T) {
	r := setupRouter(t, &fakeStore{projects: map[string]*domain.Project{}})

	rr := do(r, http.MethodGet, "/admin/projects/new", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		View domain.EditView `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.View.Project.Releases, 1)
	assert.Equal(t, domain.StatusSnapshot, resp.View.Project.Releases[0].Status)
}

func TestSave(t *testing.T) {
	store := &fakeStore{projects: map[string]*domain.Project{}}
	r := setupRouter(t, store)

	body := map[string]any{
		"project": map[string]any{
			"name":         "Spring Boot",
			"category":     "active",
			"raw_overview": "# Boot",
			"releases": []map[string]any{
				{"version": "1.0.0.RELEASE", "ref_doc_url": "http://docs/1.0.0.RELEASE/ref", "group_id": "org.a"},
				{"version": ""},
			},
			"samples": []map[string]any{
				{"title": "Demo", "url": "http://x", "display_order": 1},
				{"title": "", "url": "http://y", "display_order": 2},
			},
		},
		"group_id": "org.springframework.boot",
	}

	rr := do(r, http.MethodPost, "/admin/projects/spring-boot", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "spring-boot", resp["id"])
	assert.Equal(t, "/admin/projects/spring-boot", resp["location"])

	saved := store.projects["spring-boot"]
	require.NotNil(t, saved)
	require.Len(t, saved.Releases, 1)
	assert.Equal(t, "org.springframework.boot", saved.Releases[0].GroupID)
	assert.Equal(t, "http://docs/{version}/ref", saved.Releases[0].RefDocURL)
	assert.Len(t, saved.Samples, 1)
	assert.Contains(t, saved.RenderedOverview, "<h1>Boot</h1>")
}

func TestSave_RejectsMismatchedID(t *testing.T) {
	other := &domain.Project{ID: "spring-b", Name: "Spring B", Category: domain.CategoryActive}
	store := &fakeStore{projects: map[string]*domain.Project{"spring-b": other}}
	r := setupRouter(t, store)

	body := map[string]any{
		"project":  map[string]any{"id": "spring-b", "name": "Hijacked", "category": "active"},
		"group_id": "org.springframework",
	}

	rr := do(r, http.MethodPost, "/admin/projects/spring-a", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "does not match path id")
	assert.Equal(t, "Spring B", store.projects["spring-b"].Name)
	assert.NotContains(t, store.projects, "spring-a")
}

func TestSave_MatchingBodyIDAccepted(t *testing.T) {
	store := &fakeStore{projects: map[string]*domain.Project{}}
	r := setupRouter(t, store)

	body := map[string]any{
		"project":  map[string]any{"id": "spring-a", "name": "Spring A", "category": "active"},
		"group_id": "org.springframework",
	}

	rr := do(r, http.MethodPost, "/admin/projects/spring-a", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, store.projects, "spring-a")
}

func TestSave_RejectsInvalidBody(t *testing.T) {
	store := &fakeStore{projects: map[string]*domain.Project{}}
	r := setupRouter(t, store)

	t.Run("missing group id", func(t *testing.T) {
		rr := do(r, http.MethodPost, "/admin/projects/spring-boot", map[string]any{
			"project": map[string]any{"name": "Spring Boot", "category": "active"},
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad project id", func(t *testing.T) {
		rr := do(r, http.MethodPost, "/admin/projects/Spring%20Boot", map[string]any{
			"project":  map[string]any{"name": "Spring Boot", "category": "active"},
			"group_id": "org.a",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	assert.Empty(t, store.projects)
}

func TestDelete(t *testing.T) {
	store := &fakeStore{projects: map[string]*domain.Project{"spring-boot": {ID: "spring-boot"}}}
	r := setupRouter(t, store)

	rr := do(r, http.MethodDelete, "/admin/projects/spring-boot", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, store.projects)

	rr = do(r, http.MethodDelete, "/admin/projects/spring-boot", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestList(t *testing.T) {
	store := &fakeStore{projects: map[string]*domain.Project{"spring-boot": {ID: "spring-boot", Name: "Spring Boot"}}}
	r := setupRouter(t, store)

	rr := do(r, http.MethodGet, "/admin/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "spring-boot")

	store.listErr = errors.New("db down")
	rr = do(r, http.MethodGet, "/admin/projects", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
