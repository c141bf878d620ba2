package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

// productTypeRepository implements the adapter.ProductTypeRepository interface.
type productTypeRepository struct {
	db *gorm.DB
}

// NewProductTypeRepository creates a new product type repository instance.
func NewProductTypeRepository(db *gorm.DB) adapter.ProductTypeRepository {
	return &productTypeRepository{
		db: db,
	}
}

// Create creates a new product type in the database.
func (r *productTypeRepository) Create(ctx context.Context, productType *entity.ProductType) error {
	productTypeModel := model.ProductTypeFromEntity(productType)
	result := r.db.WithContext(ctx).Create(productTypeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product type by its ID.
func (r *productTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductType, error) {
	var productTypeModel model.ProductTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productTypeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductTypeNotFound
		}
		return nil, result.Error
	}
	return productTypeModel.ToEntity(), nil
}

// FindAll retrieves all product types ordered by name.
func (r *productTypeRepository) FindAll(ctx context.Context) ([]*entity.ProductType, error) {
	var productTypeModels []model.ProductTypeModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&productTypeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	productTypes := make([]*entity.ProductType, len(productTypeModels))
	for i, pm := range productTypeModels {
		productTypes[i] = pm.ToEntity()
	}
	return productTypes, nil
}

// ExistsByName checks whether a product type with the name exists,
// case-insensitively.
func (r *productTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProductTypeModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing product type in the database.
func (r *productTypeRepository) Update(ctx context.Context, productType *entity.ProductType) error {
	productTypeModel := model.ProductTypeFromEntity(productType)
	result := r.db.WithContext(ctx).Save(productTypeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a product type from the database.
func (r *productTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// IsReferenced checks whether any sale item references the product type.
func (r *productTypeRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SaleItemModel{}).
		Where("product_type_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
