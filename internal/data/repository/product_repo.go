package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"artliving/internal/data/entity"
	"artliving/pkg/restapi"

	"go.uber.org/zap"
)

type ProductRepository interface {
	// FindPage lists one page; an empty category or CategoryAll means no filter.
	FindPage(ctx context.Context, page int, category string) ([]entity.Product, error)
	// Search lists one page of products whose name contains name.
	Search(ctx context.Context, name string, page int) ([]entity.Product, error)
	FindByID(ctx context.Context, id entity.ID) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id entity.ID) error
}

type productRepository struct {
	api restapi.ClientIface
	log *zap.Logger
}

func NewProductRepository(api restapi.ClientIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		api: api,
		log: log.With(zap.String("repository", "product")),
	}
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("_page", strconv.Itoa(page))
	query.Set("_limit", strconv.Itoa(PageSize))
	return query
}

func (r *productRepository) FindPage(ctx context.Context, page int, category string) ([]entity.Product, error) {
	query := pageQuery(page)
	if category != "" && category != entity.CategoryAll {
		query.Set("category", category)
	}

	var products []entity.Product
	if err := r.api.Get(ctx, "/products", query, &products); err != nil {
		r.log.Error("Failed to list products",
			zap.Error(err),
			zap.Int("page", page),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("list products page %d: %w", page, err)
	}

	return products, nil
}

func (r *productRepository) Search(ctx context.Context, name string, page int) ([]entity.Product, error) {
	query := pageQuery(page)
	query.Set("name_like", name)

	var products []entity.Product
	if err := r.api.Get(ctx, "/products", query, &products); err != nil {
		r.log.Error("Failed to search products",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("search products %q: %w", name, err)
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Product, error) {
	var product entity.Product
	if err := r.api.Get(ctx, "/products/"+url.PathEscape(id.String()), nil, &product); err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := r.api.Post(ctx, "/products", product, &created); err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return nil, fmt.Errorf("create product %q: %w", product.Name, err)
	}

	return &created, nil
}

func (r *productRepository) Delete(ctx context.Context, id entity.ID) error {
	if err := r.api.Delete(ctx, "/products/"+url.PathEscape(id.String())); err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
