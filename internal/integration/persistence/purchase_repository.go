package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

// purchaseRepository implements the adapter.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance.
func NewPurchaseRepository(db *gorm.DB) adapter.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create creates a purchase and its derived transport expense in one
// transaction.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase, transportExpense *entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PurchaseFromEntity(purchase)).Error; err != nil {
			return err
		}
		if transportExpense != nil {
			if err := tx.Create(model.ExpenseFromEntity(transportExpense)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a purchase by its ID.
func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&purchaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPurchaseNotFound
		}
		return nil, result.Error
	}
	return purchaseModel.ToEntity(), nil
}

// FindAll retrieves purchases matching the filter, newest first.
func (r *purchaseRepository) FindAll(ctx context.Context, filter adapter.PurchaseFilter) ([]*entity.Purchase, error) {
	query := r.db.WithContext(ctx).Model(&model.PurchaseModel{})
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.SellerName != "" {
		query = query.Where("LOWER(seller_name) LIKE LOWER(?)", "%"+filter.SellerName+"%")
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var purchaseModels []model.PurchaseModel
	result := query.Order("date DESC, created_at DESC").Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, len(purchaseModels))
	for i, pm := range purchaseModels {
		purchases[i] = pm.ToEntity()
	}
	return purchases, nil
}

// Update saves the purchase and applies the derived-expense sync in one
// transaction.
func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase, sync adapter.TransportExpenseSync) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.PurchaseFromEntity(purchase)).Error; err != nil {
			return err
		}
		switch {
		case sync.Create != nil:
			if err := tx.Create(model.ExpenseFromEntity(sync.Create)).Error; err != nil {
				return err
			}
		case sync.Update != nil:
			if err := tx.Save(model.ExpenseFromEntity(sync.Update)).Error; err != nil {
				return err
			}
		case sync.Delete != nil:
			if err := tx.Delete(&model.ExpenseModel{}, "id = ?", *sync.Delete).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a purchase and its derived transport expense in one
// transaction.
func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID, linkedExpenseID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PurchaseModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		if linkedExpenseID != nil {
			if err := tx.Delete(&model.ExpenseModel{}, "id = ?", *linkedExpenseID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SumTotalCost sums total purchase cost over the inclusive date range.
func (r *purchaseRepository) SumTotalCost(ctx context.Context, startDate, endDate *time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	query := r.db.WithContext(ctx).Model(&model.PurchaseModel{})
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	err := query.Select("COALESCE(SUM(total_purchase_cost), 0) as total").Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
