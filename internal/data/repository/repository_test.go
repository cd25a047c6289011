package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"artliving/internal/data/entity"
	"artliving/pkg/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type call struct {
	method string
	path   string
	query  url.Values
	body   any
}

// fakeAPI records calls and answers every call with reply.
type fakeAPI struct {
	calls []call
	reply any
	err   error
}

func (f *fakeAPI) answer(out any) error {
	if f.err != nil {
		return f.err
	}
	if out == nil || f.reply == nil {
		return nil
	}
	raw, _ := json.Marshal(f.reply)
	return json.Unmarshal(raw, out)
}

func (f *fakeAPI) Get(_ context.Context, path string, query url.Values, out any) error {
	f.calls = append(f.calls, call{method: http.MethodGet, path: path, query: query})
	return f.answer(out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	f.calls = append(f.calls, call{method: http.MethodPost, path: path, body: body})
	return f.answer(out)
}

func (f *fakeAPI) Put(_ context.Context, path string, body, out any) error {
	f.calls = append(f.calls, call{method: http.MethodPut, path: path, body: body})
	return f.answer(out)
}

func (f *fakeAPI) Delete(_ context.Context, path string) error {
	f.calls = append(f.calls, call{method: http.MethodDelete, path: path})
	return f.answer(nil)
}

func TestFindPageQuery(t *testing.T) {
	api := &fakeAPI{reply: []entity.Product{{ID: "1"}}}
	repo := NewProductRepository(api, zap.NewNop())

	products, err := repo.FindPage(context.Background(), 3, "סלון")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.Len(t, api.calls, 1)
	q := api.calls[0].query
	assert.Equal(t, "/products", api.calls[0].path)
	assert.Equal(t, "3", q.Get("_page"))
	assert.Equal(t, "20", q.Get("_limit"))
	assert.Equal(t, "סלון", q.Get("category"))
}

func TestFindPageAllCategoriesSendsNoFilter(t *testing.T) {
	api := &fakeAPI{reply: []entity.Product{}}
	repo := NewProductRepository(api, zap.NewNop())

	_, err := repo.FindPage(context.Background(), 1, entity.CategoryAll)
	require.NoError(t, err)
	_, err = repo.FindPage(context.Background(), 0, "")
	require.NoError(t, err)

	for _, c := range api.calls {
		assert.False(t, c.query.Has("category"))
		assert.Equal(t, "1", c.query.Get("_page"))
	}
}

func TestSearchUsesNameLike(t *testing.T) {
	api := &fakeAPI{reply: []entity.Product{}}
	repo := NewProductRepository(api, zap.NewNop())

	_, err := repo.Search(context.Background(), "כיסא", 1)
	require.NoError(t, err)
	assert.Equal(t, "כיסא", api.calls[0].query.Get("name_like"))
	assert.Equal(t, "20", api.calls[0].query.Get("_limit"))
}

func TestProductNotFound(t *testing.T) {
	api := &fakeAPI{err: &restapi.StatusError{Method: http.MethodGet, Path: "/products/9", StatusCode: http.StatusNotFound}}
	repo := NewProductRepository(api, zap.NewNop())

	_, err := repo.FindByID(context.Background(), "9")
	assert.True(t, IsNotFound(err))

	api.err = &restapi.StatusError{StatusCode: http.StatusInternalServerError}
	_, err = repo.FindByID(context.Background(), "9")
	assert.False(t, IsNotFound(err))
}

func TestUserQueries(t *testing.T) {
	api := &fakeAPI{reply: []entity.User{}}
	repo := NewUserRepository(api, zap.NewNop())

	users, err := repo.FindByCredentials(context.Background(), "a@b.co", "secret1")
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, "a@b.co", api.calls[0].query.Get("email"))
	assert.Equal(t, "secret1", api.calls[0].query.Get("password"))

	_, err = repo.FindByEmail(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.False(t, api.calls[1].query.Has("password"))
}

func TestUserUpdatePutsWholeRecord(t *testing.T) {
	user := &entity.User{ID: "5", FirstName: "דנה"}
	api := &fakeAPI{reply: user}
	repo := NewUserRepository(api, zap.NewNop())

	updated, err := repo.Update(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "דנה", updated.FirstName)
	assert.Equal(t, http.MethodPut, api.calls[0].method)
	assert.Equal(t, "/users/5", api.calls[0].path)
}

func TestReviewsByProduct(t *testing.T) {
	api := &fakeAPI{reply: []entity.Review{{ID: "1", ProductID: "3", Rating: 4}}}
	repo := NewReviewRepository(api, zap.NewNop())

	reviews, err := repo.FindByProductID(context.Background(), "3")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, "3", api.calls[0].query.Get("productId"))
}

func TestAllReviews(t *testing.T) {
	api := &fakeAPI{reply: []entity.Review{{ID: "1", ProductID: "3"}, {ID: "2", ProductID: "4"}}}
	repo := NewReviewRepository(api, zap.NewNop())

	reviews, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "/reviews", api.calls[0].path)
	assert.Empty(t, api.calls[0].query)
}

func TestUserByID(t *testing.T) {
	api := &fakeAPI{reply: entity.User{ID: "7", Email: "a@b.co"}}
	repo := NewUserRepository(api, zap.NewNop())

	user, err := repo.FindByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", user.Email)
	assert.Equal(t, "/users/7", api.calls[0].path)

	api.err = &restapi.StatusError{Method: http.MethodGet, Path: "/users/8", StatusCode: http.StatusNotFound}
	_, err = repo.FindByID(context.Background(), "8")
	assert.True(t, IsNotFound(err))
}
