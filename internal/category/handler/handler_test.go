package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goshop/catalog-service/internal/apperr"
	"github.com/goshop/catalog-service/internal/auth"
	"github.com/goshop/catalog-service/internal/category/dto"
	"github.com/goshop/catalog-service/internal/model"
)

// fakeUseCase returns canned results so the handler's status mapping can be
// exercised without a database.
type fakeUseCase struct {
	cat  *model.Category
	cats []model.Category
	err  error
}

func (f *fakeUseCase) UpsertCategory(_ context.Context, caller *auth.Identity, _ *dto.UpsertCategoryInput) (*model.Category, error) {
	if err := auth.Authorize(caller, auth.RoleAdmin); err != nil {
		return nil, err
	}
	return f.cat, f.err
}

func (f *fakeUseCase) GetCategory(_ context.Context, _ string) (*model.Category, error) {
	return f.cat, f.err
}

func (f *fakeUseCase) ListCategories(_ context.Context) ([]model.Category, error) {
	return f.cats, f.err
}

func (f *fakeUseCase) DeleteCategory(_ context.Context, caller *auth.Identity, _ string) (*model.Category, error) {
	if err := auth.Authorize(caller, auth.RoleAdmin); err != nil {
		return nil, err
	}
	return f.cat, f.err
}

func newRouter(fake *fakeUseCase, caller *auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(fake, zap.NewNop())

	router := gin.New()
	if caller != nil {
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), caller))
		})
	}
	router.POST("/categories", h.Upsert)
	router.GET("/categories", h.List)
	router.GET("/categories/:id", h.Get)
	router.DELETE("/categories/:id", h.Delete)
	return router
}

var admin = &auth.Identity{UserID: "admin-1", Role: auth.RoleAdmin}

func TestUpsert_OK(t *testing.T) {
	fake := &fakeUseCase{cat: &model.Category{BaseModel: model.BaseModel{ID: "c1"}, Name: "Shoes", URL: "shoes"}}
	router := newRouter(fake, admin)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Shoes"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"shoes"`)
}

func TestUpsert_MalformedBody(t *testing.T) {
	router := newRouter(&fakeUseCase{}, admin)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsert_NoIdentity(t *testing.T) {
	router := newRouter(&fakeUseCase{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Shoes"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpsert_NonAdmin(t *testing.T) {
	router := newRouter(&fakeUseCase{}, &auth.Identity{UserID: "u1", Role: auth.RoleUser})

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Shoes"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
	}{
		{"validation", apperr.Invalid("name", "missing required field: name"), http.StatusBadRequest, "name"},
		{"duplicate name", apperr.Duplicate("name", "a category with the same name already exists"), http.StatusConflict, "name"},
		{"duplicate url", apperr.Duplicate("url", "a category with the same url already exists"), http.StatusConflict, "url"},
		{"dependents", apperr.Conflict("category has subcategories; delete or reassign them first"), http.StatusConflict, ""},
		{"persistence", apperr.Internal(assertableErr("pq: boom")), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err}, admin)

			req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Shoes"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField != "" {
				assert.Contains(t, w.Body.String(), `"field":"`+tt.wantField+`"`)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	router := newRouter(&fakeUseCase{err: apperr.NotFound("category not found")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_PublicRead(t *testing.T) {
	fake := &fakeUseCase{cats: []model.Category{{BaseModel: model.BaseModel{ID: "c1"}, Name: "Shoes", URL: "shoes"}}}
	router := newRouter(fake, nil) // no identity at all

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Shoes"`)
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
