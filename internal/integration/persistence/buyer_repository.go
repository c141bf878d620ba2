package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

// buyerRepository implements the adapter.BuyerRepository interface.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository creates a new buyer repository instance.
func NewBuyerRepository(db *gorm.DB) adapter.BuyerRepository {
	return &buyerRepository{
		db: db,
	}
}

// Create creates a new buyer in the database.
func (r *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerModel := model.BuyerFromEntity(buyer)
	result := r.db.WithContext(ctx).Create(buyerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a buyer by its ID.
func (r *buyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerModel model.BuyerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&buyerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBuyerNotFound
		}
		return nil, result.Error
	}
	return buyerModel.ToEntity(), nil
}

// FindAll retrieves buyers matching the filter, ordered by name.
func (r *buyerRepository) FindAll(ctx context.Context, filter adapter.BuyerFilter) ([]*entity.Buyer, error) {
	query := r.db.WithContext(ctx).Model(&model.BuyerModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ?", pattern, pattern)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var buyerModels []model.BuyerModel
	result := query.Order("name ASC").Find(&buyerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	buyers := make([]*entity.Buyer, len(buyerModels))
	for i, bm := range buyerModels {
		buyers[i] = bm.ToEntity()
	}
	return buyers, nil
}

// Update updates an existing buyer in the database.
func (r *buyerRepository) Update(ctx context.Context, buyer *entity.Buyer) error {
	buyerModel := model.BuyerFromEntity(buyer)
	result := r.db.WithContext(ctx).Save(buyerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a buyer from the database.
func (r *buyerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BuyerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
