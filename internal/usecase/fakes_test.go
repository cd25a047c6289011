package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/session"
	"artliving/pkg/restapi"
	"artliving/pkg/storage"
	"artliving/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type pageCall struct {
	page     int
	category string
}

type fakeProducts struct {
	mu       sync.Mutex
	calls    []pageCall
	searches []string
	created  []entity.Product
	deleted  []entity.ID
	byID     map[entity.ID]entity.Product

	findPage func(ctx context.Context, page int, category string) ([]entity.Product, error)
	search   func(ctx context.Context, name string) ([]entity.Product, error)
	createFn func(p *entity.Product) error
	deleteFn func(id entity.ID) error
}

func (f *fakeProducts) FindPage(ctx context.Context, page int, category string) ([]entity.Product, error) {
	f.mu.Lock()
	f.calls = append(f.calls, pageCall{page: page, category: category})
	fn := f.findPage
	f.mu.Unlock()

	if fn == nil {
		return nil, nil
	}
	return fn(ctx, page, category)
}

func (f *fakeProducts) Search(ctx context.Context, name string, page int) ([]entity.Product, error) {
	f.mu.Lock()
	f.searches = append(f.searches, name)
	fn := f.search
	f.mu.Unlock()

	if fn == nil {
		return []entity.Product{{ID: "1", Name: name}}, nil
	}
	return fn(ctx, name)
}

func (f *fakeProducts) FindByID(_ context.Context, id entity.ID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("find product %s: %w", id, notFound())
	}
	return &p, nil
}

func (f *fakeProducts) Create(_ context.Context, product *entity.Product) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createFn != nil {
		if err := f.createFn(product); err != nil {
			return nil, err
		}
	}
	created := *product
	created.ID = entity.ID(strconv.Itoa(len(f.created) + 100))
	f.created = append(f.created, created)
	return &created, nil
}

func (f *fakeProducts) Delete(_ context.Context, id entity.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteFn != nil {
		if err := f.deleteFn(id); err != nil {
			return err
		}
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProducts) pageCalls() []pageCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pageCall(nil), f.calls...)
}

func (f *fakeProducts) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

type fakeUsers struct {
	users   []entity.User
	created []entity.User
	updated []entity.User
	err     error
}

func (f *fakeUsers) FindByCredentials(_ context.Context, email, password string) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.User
	for _, u := range f.users {
		if u.Email == email && u.Password == password {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id entity.ID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, notFound()
}

func (f *fakeUsers) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	created := *user
	created.ID = entity.ID(strconv.Itoa(len(f.users) + 1))
	f.created = append(f.created, created)
	f.users = append(f.users, created)
	return &created, nil
}

func (f *fakeUsers) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, *user)
	return user, nil
}

type fakeReviews struct {
	reviews []entity.Review
	created []entity.Review
	deleted []entity.ID
}

func (f *fakeReviews) FindAll(context.Context) ([]entity.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviews) FindByProductID(_ context.Context, productID entity.ID) ([]entity.Review, error) {
	var out []entity.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) Create(_ context.Context, review *entity.Review) (*entity.Review, error) {
	created := *review
	created.ID = entity.ID(strconv.Itoa(len(f.reviews) + 1))
	f.created = append(f.created, created)
	f.reviews = append(f.reviews, created)
	return &created, nil
}

func (f *fakeReviews) Delete(_ context.Context, id entity.ID) error {
	f.deleted = append(f.deleted, id)
	kept := f.reviews[:0]
	for _, r := range f.reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.reviews = kept
	return nil
}

type countingInvalidator struct {
	mu    sync.Mutex
	count int
}

func (c *countingInvalidator) InvalidateProducts() {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
}

func newTestRepo(products *fakeProducts, users *fakeUsers, reviews *fakeReviews) *repository.Repository {
	return &repository.Repository{
		Product: products,
		User:    users,
		Review:  reviews,
		Session: repository.NewSessionRepository(storage.NewMemoryStore(), zap.NewNop()),
	}
}

func newTestSession(repo *repository.Repository) *session.Context {
	sess, err := session.Open(context.Background(), uuid.New(), repo.Session, zap.NewNop())
	if err != nil {
		panic(err)
	}
	return sess
}

func newTestConfig() *utils.Config {
	return &utils.Config{}
}

// batch returns n products of category.
func batch(category string, offset, n int) []entity.Product {
	out := make([]entity.Product, n)
	for i := range out {
		out[i] = entity.Product{
			ID:       entity.ID(strconv.Itoa(offset + i + 1)),
			Name:     fmt.Sprintf("%s %d", category, offset+i+1),
			Category: category,
			Price:    100,
		}
	}
	return out
}

func notFound() error {
	return &restapi.StatusError{Method: http.MethodGet, StatusCode: http.StatusNotFound}
}
