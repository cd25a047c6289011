package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrEmptySheet is returned by ImportProducts when the workbook has no data rows.
var ErrEmptySheet = errors.New("sheet has no data rows")

// Import sheet columns, left to right.
const (
	colName = iota
	colDescription
	colPrice
	colCategory
	colImageURL
)

// Invalidator is told whenever the product catalogue changes.
type Invalidator interface {
	InvalidateProducts()
}

type ProductService interface {
	GetProduct(ctx context.Context, id entity.ID, viewer *entity.User) (*response.ProductDetail, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductCard, error)
	DeleteProduct(ctx context.Context, id entity.ID) error
	// ImportProducts creates one product per valid sheet row. Rows failing
	// the add-product form rules are reported and skipped.
	ImportProducts(ctx context.Context, file io.Reader) (*response.ImportResult, error)
	ValidateProduct(req *request.ProductRequest, field string) map[string]string
}

type productService struct {
	repo        *repository.Repository
	invalidator Invalidator
	log         *zap.Logger
}

func NewProductService(repo *repository.Repository, invalidator Invalidator, log *zap.Logger) ProductService {
	return &productService{
		repo:        repo,
		invalidator: invalidator,
		log:         log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProduct(ctx context.Context, id entity.ID, viewer *entity.User) (*response.ProductDetail, error) {
	return loadProductDetail(ctx, s.repo, id, viewer)
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductCard, error) {
	if err := validateForm(req, request.ProductMessages); err != nil {
		return nil, err
	}

	created, err := s.repo.Product.Create(ctx, productFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.invalidator.InvalidateProducts()
	s.log.Info("Product created",
		zap.String("product_id", created.ID.String()),
		zap.String("name", created.Name))

	card := response.ProductToCard(*created)
	return &card, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id entity.ID) error {
	if err := s.repo.Product.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}

	s.invalidator.InvalidateProducts()
	return nil
}

func (s *productService) ImportProducts(ctx context.Context, file io.Reader) (*response.ImportResult, error) {
	xl, err := excelize.OpenReader(file)
	if err != nil {
		s.log.Warn("Failed to open import workbook", zap.Error(err))
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	result := &response.ImportResult{Skipped: []response.ImportRowError{}}
	for i, row := range rows[1:] {
		// Spreadsheet row number, counting the header.
		rowNumber := i + 2

		req := productRequestFromRow(row)
		if errs := utils.ValidateStruct(req, request.ProductMessages); len(errs) > 0 {
			result.Skipped = append(result.Skipped, response.ImportRowError{Row: rowNumber, Errors: errs})
			continue
		}

		if _, err := s.repo.Product.Create(ctx, productFromRequest(req)); err != nil {
			s.log.Error("Failed to import row", zap.Error(err), zap.Int("row", rowNumber))
			result.Skipped = append(result.Skipped, response.ImportRowError{
				Row:    rowNumber,
				Errors: map[string]string{"row": response.MsgProductFailed},
			})
			continue
		}
		result.Created++
	}

	if result.Created > 0 {
		s.invalidator.InvalidateProducts()
	}

	s.log.Info("Products imported",
		zap.Int("created", result.Created),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

func (s *productService) ValidateProduct(req *request.ProductRequest, field string) map[string]string {
	return utils.ValidateField(req, field, request.ProductMessages)
}

// ==================== HELPER METHODS ====================

func productFromRequest(req *request.ProductRequest) *entity.Product {
	return &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		SalesCount:  0,
	}
}

func productRequestFromRow(row []string) *request.ProductRequest {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	// An unparsable price stays 0 and fails the required rule.
	price, _ := strconv.ParseFloat(cell(colPrice), 64)

	return &request.ProductRequest{
		Name:        cell(colName),
		Description: cell(colDescription),
		Price:       price,
		Category:    cell(colCategory),
		ImageURL:    cell(colImageURL),
	}
}

// loadProductDetail fetches the product and its current reviews.
func loadProductDetail(ctx context.Context, repo *repository.Repository, id entity.ID, viewer *entity.User) (*response.ProductDetail, error) {
	product, err := repo.Product.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	reviews, err := repo.Review.FindByProductID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	return response.NewProductDetail(*product, reviews, viewer), nil
}
