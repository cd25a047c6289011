package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/dto/response"
	"artliving/pkg/middleware"
	"artliving/pkg/restapi"
	"artliving/pkg/storage"
	"artliving/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// backend is a small in-memory stand-in for the json-server REST API.
type backend struct {
	mu       sync.Mutex
	products []entity.Product
	users    []entity.User
	reviews  []entity.Review
	posts    map[string]int
}

func newBackend() *backend {
	b := &backend{posts: make(map[string]int)}
	for i := 1; i <= 25; i++ {
		b.products = append(b.products, entity.Product{
			ID:          entity.ID(strconv.Itoa(i)),
			Name:        "מוצר " + strconv.Itoa(i),
			Description: "תיאור המוצר",
			Price:       float64(100 * i),
			Category:    entity.CategoryLivingRoom,
			SalesCount:  i * 3,
		})
	}
	b.users = []entity.User{
		{ID: "1", FirstName: "דנה", Email: "dana@example.com", Password: "123456", UserName: "dana"},
		{ID: "2", FirstName: "מנהל", Email: "admin@example.com", Password: "123456", IsAdmin: true},
	}
	return b
}

func (b *backend) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		q := r.URL.Query()
		var matched []entity.Product
		for _, p := range b.products {
			if c := q.Get("category"); c != "" && p.Category != c {
				continue
			}
			if n := q.Get("name_like"); n != "" && !strings.Contains(p.Name, n) {
				continue
			}
			matched = append(matched, p)
		}

		page, _ := strconv.Atoi(q.Get("_page"))
		limit, _ := strconv.Atoi(q.Get("_limit"))
		start := min((page-1)*limit, len(matched))
		end := min(start+limit, len(matched))
		writeJSON(w, http.StatusOK, matched[start:end])
	})

	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		for _, p := range b.products {
			if p.ID.String() == chi.URLParam(r, "id") {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, struct{}{})
	})

	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		q := r.URL.Query()
		matched := []entity.User{}
		for _, u := range b.users {
			if u.Email != q.Get("email") {
				continue
			}
			if q.Has("password") && u.Password != q.Get("password") {
				continue
			}
			matched = append(matched, u)
		}
		writeJSON(w, http.StatusOK, matched)
	})

	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var user entity.User
		json.NewDecoder(r.Body).Decode(&user)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.posts["/users"]++
		user.ID = entity.ID(strconv.Itoa(len(b.users) + 1))
		b.users = append(b.users, user)
		writeJSON(w, http.StatusCreated, user)
	})

	r.Get("/reviews", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		matched := []entity.Review{}
		for _, rv := range b.reviews {
			if rv.ProductID.String() == r.URL.Query().Get("productId") {
				matched = append(matched, rv)
			}
		}
		writeJSON(w, http.StatusOK, matched)
	})

	r.Post("/reviews", func(w http.ResponseWriter, r *http.Request) {
		var review entity.Review
		json.NewDecoder(r.Body).Decode(&review)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.posts["/reviews"]++
		review.ID = entity.ID(strconv.Itoa(len(b.reviews) + 1))
		b.reviews = append(b.reviews, review)
		writeJSON(w, http.StatusCreated, review)
	})

	return r
}

func (b *backend) postCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.posts[path]
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testApp struct {
	t       *testing.T
	app     *App
	backend *backend
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	b := newBackend()
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	config := &utils.Config{
		API:    utils.APIConfig{BaseURL: srv.URL},
		Feed:   utils.FeedConfig{ScrollThreshold: 100},
		Search: utils.SearchConfig{Debounce: 10 * time.Millisecond},
		Tab:    utils.TabConfig{IdleTimeout: time.Hour},
	}

	client, err := restapi.NewClient(config.API)
	require.NoError(t, err)

	repo := repository.NewRepository(client, storage.NewMemoryStore(), zap.NewNop())
	app := Wiring(repo, config, zap.NewNop())
	t.Cleanup(app.Tabs.CloseAll)

	return &testApp{t: t, app: app, backend: b}
}

func (a *testApp) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set(middleware.TabHeader, token)
	}

	rec := httptest.NewRecorder()
	a.app.Router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (a *testApp) openTab() string {
	a.t.Helper()

	rec, env := a.do(http.MethodPost, "/api/tabs", "", nil)
	require.Equal(a.t, http.StatusCreated, rec.Code)

	var opened struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &opened))
	return opened.Token
}

func (a *testApp) login(token, email string) {
	a.t.Helper()

	rec, _ := a.do(http.MethodPost, "/login", token, map[string]string{"email": email, "password": "123456"})
	require.Equal(a.t, http.StatusOK, rec.Code)
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestShopperFlow(t *testing.T) {
	a := newTestApp(t)
	token := a.openTab()

	rec, env := a.do(http.MethodPost, "/login", token, map[string]string{"email": "dana@example.com", "password": "wrong1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, env.Errors, "password")

	rec, env = a.do(http.MethodPost, "/login", token, map[string]string{"email": "dana@example.com", "password": "123456"})
	require.Equal(t, http.StatusOK, rec.Code)
	auth := decode[response.AuthResponse](t, env)
	assert.Equal(t, "/home", auth.Redirect)
	assert.Equal(t, "dana", auth.User.UserName)

	rec, env = a.do(http.MethodGet, "/home", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decode[response.FeedView](t, env)
	assert.Len(t, feed.Items, repository.PageSize)
	assert.True(t, feed.HasMore)

	// Far from the bottom nothing loads.
	_, env = a.do(http.MethodPost, "/home/scroll", token, map[string]int{"distanceToBottom": 500})
	assert.Len(t, decode[response.FeedView](t, env).Items, repository.PageSize)

	_, env = a.do(http.MethodPost, "/home/scroll", token, map[string]int{"distanceToBottom": 40})
	feed = decode[response.FeedView](t, env)
	assert.Len(t, feed.Items, 25)
	assert.False(t, feed.HasMore)
	assert.True(t, feed.EndOfFeed)
	assert.Equal(t, response.MsgEndOfFeed, feed.Notice)

	rec, env = a.do(http.MethodGet, "/product/20", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[response.ProductDetail](t, env)
	assert.True(t, detail.Product.BestSeller)
	assert.True(t, detail.CanAddReview)
	assert.Zero(t, detail.ReviewCount)

	rec, env = a.do(http.MethodPost, "/product/20/reviews", token, map[string]any{"rating": 4, "comment": "מאוד נוח"})
	require.Equal(t, http.StatusCreated, rec.Code)
	detail = decode[response.ProductDetail](t, env)
	assert.Equal(t, 1, detail.ReviewCount)
	assert.Equal(t, 4.0, detail.AverageRating)
	assert.True(t, detail.Reviews[0].CanDelete)
	assert.Equal(t, 1, a.backend.postCount("/reviews"))

	rec, _ = a.do(http.MethodGet, "/product/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageGates(t *testing.T) {
	a := newTestApp(t)
	token := a.openTab()

	rec, env := a.do(http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, env.Message)

	a.login(token, "dana@example.com")

	rec, _ = a.do(http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = a.do(http.MethodGet, "/add-product", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotEmpty(t, env.Message)

	admin := a.openTab()
	a.login(admin, "admin@example.com")

	rec, _ = a.do(http.MethodGet, "/add-product", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Admins read reviews but never write them.
	rec, _ = a.do(http.MethodPost, "/product/1/reviews", admin, map[string]any{"rating": 5, "comment": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Sessions are per tab.
	rec, _ = a.do(http.MethodGet, "/profile", a.openTab(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTabToken(t *testing.T) {
	a := newTestApp(t)

	rec, _ := a.do(http.MethodGet, "/home", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = a.do(http.MethodGet, "/home", "not-a-token", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token := a.openTab()
	rec, _ = a.do(http.MethodDelete, "/api/tabs", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = a.do(http.MethodDelete, "/api/tabs", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedirects(t *testing.T) {
	a := newTestApp(t)

	rec, _ := a.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/home", rec.Header().Get("Location"))

	rec, _ = a.do(http.MethodGet, "/no-such-page", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSignUpExistingEmail(t *testing.T) {
	a := newTestApp(t)
	token := a.openTab()

	form := map[string]string{
		"firstName":       "דנה",
		"lastName":        "כהן",
		"email":           "dana@example.com",
		"phone":           "0521234567",
		"city":            "חיפה",
		"password":        "12345678",
		"confirmPassword": "12345678",
	}

	rec, env := a.do(http.MethodPost, "/sign-up", token, form)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, env.Errors, "email")
	assert.Zero(t, a.backend.postCount("/users"))

	form["email"] = "new@example.com"
	rec, env = a.do(http.MethodPost, "/sign-up", token, form)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/login", decode[response.AuthResponse](t, env).Redirect)
	assert.Equal(t, 1, a.backend.postCount("/users"))
}

func TestSearch(t *testing.T) {
	a := newTestApp(t)
	token := a.openTab()

	rec, _ := a.do(http.MethodPut, "/search", token, map[string]string{"query": "מוצר 2"})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	assert.Eventually(t, func() bool {
		_, env := a.do(http.MethodGet, "/search", token, nil)
		var view response.SearchView
		return json.Unmarshal(env.Data, &view) == nil && view.Visible && len(view.Results) > 0
	}, time.Second, 10*time.Millisecond)

	_, env := a.do(http.MethodDelete, "/search", token, nil)
	view := decode[response.SearchView](t, env)
	assert.Empty(t, view.Query)
	assert.False(t, view.Visible)
}
