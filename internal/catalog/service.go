package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/opsretail/catalog/internal/domain"
)

// ProductService enforces the product lifecycle rules on top of the
// repository: ids are assigned only by create, and update/delete require a
// persisted product.
type ProductService struct {
	repo ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create persists a new product and lets the database assign the id. Any id
// already set on the product is discarded.
func (s *ProductService) Create(ctx context.Context, product *domain.Product) error {
	product.ID = 0
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	zap.L().Debug("created product",
		zap.Int64("id", product.ID),
		zap.String("name", product.Name))
	return nil
}

// Update persists the current in-memory field values to the existing row.
func (s *ProductService) Update(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		return domain.ValidationErrorf("update called with empty id field")
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	zap.L().Debug("updated product", zap.Int64("id", product.ID))
	return nil
}

// Delete removes the persisted row.
func (s *ProductService) Delete(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		return domain.ValidationErrorf("delete called with empty id field")
	}
	if err := s.repo.Delete(ctx, product); err != nil {
		return err
	}
	zap.L().Debug("deleted product", zap.Int64("id", product.ID))
	return nil
}

// Get retrieves a product by id.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all products in the catalog.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.All(ctx)
}

// FindByName retrieves all products with the given name.
func (s *ProductService) FindByName(ctx context.Context, name string) ([]*domain.Product, error) {
	return s.repo.FindByName(ctx, name)
}

// FindByCategory retrieves all products in the given category.
func (s *ProductService) FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

// FindByAvailability retrieves all products with the given availability.
func (s *ProductService) FindByAvailability(ctx context.Context, available bool) ([]*domain.Product, error) {
	return s.repo.FindByAvailability(ctx, available)
}

// FindByPrice retrieves all products with exactly the given price. The price
// may be a decimal, any numeric type, or a string; strings are trimmed of
// spaces and double quotes before conversion.
func (s *ProductService) FindByPrice(ctx context.Context, price interface{}) ([]*domain.Product, error) {
	var value decimal.Decimal
	switch v := price.(type) {
	case decimal.Decimal:
		value = v
	default:
		parsed, err := domain.ParsePrice(price)
		if err != nil {
			return nil, err
		}
		value = parsed
	}
	return s.repo.FindByPrice(ctx, value)
}
