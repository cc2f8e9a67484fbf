package catalog

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/opsretail/catalog/internal/domain"
)

// ErrNotFound is returned when a product does not exist in storage.
var ErrNotFound = errors.New("product not found")

// ProductRepository handles database operations for catalog products
type ProductRepository interface {
	// Create inserts a new product row; the database assigns the id
	Create(ctx context.Context, product *domain.Product) error

	// Update persists the current field values of an existing row
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes the product row
	Delete(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by primary key
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// All retrieves every product
	All(ctx context.Context) ([]*domain.Product, error)

	// FindByName retrieves all products with the given name
	FindByName(ctx context.Context, name string) ([]*domain.Product, error)

	// FindByCategory retrieves all products in the given category
	FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error)

	// FindByAvailability retrieves all products with the given availability
	FindByAvailability(ctx context.Context, available bool) ([]*domain.Product, error)

	// FindByPrice retrieves all products with exactly the given price
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]*domain.Product, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Delete(product).Error
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) All(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category.String()).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByAvailability(ctx context.Context, available bool) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("available = ?", available).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByPrice(ctx context.Context, price decimal.Decimal) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("price = ?", price).
		Find(&products).Error
	return products, err
}
