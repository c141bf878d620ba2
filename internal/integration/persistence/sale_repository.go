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

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a sale, its items and the optional payment recorded at sale
// time, all in one transaction.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale, autoPayment *entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.SaleFromEntity(sale)).Error; err != nil {
			return err
		}
		for _, item := range sale.Items {
			if err := tx.Create(model.SaleItemFromEntity(item)).Error; err != nil {
				return err
			}
		}
		if autoPayment != nil {
			if err := tx.Create(model.PaymentFromEntity(autoPayment)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a sale with its items by ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves sales matching the filter, newest first.
func (r *saleRepository) FindAll(ctx context.Context, filter adapter.SaleFilter) ([]*entity.Sale, error) {
	query := r.db.WithContext(ctx).Model(&model.SaleModel{}).Preload("Items")
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.BuyerID != nil {
		query = query.Where("buyer_id = ?", *filter.BuyerID)
	}
	if filter.PaymentType != nil {
		query = query.Where("payment_type = ?", string(*filter.PaymentType))
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var saleModels []model.SaleModel
	result := query.Order("date DESC, created_at DESC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// FindByBuyerInRange retrieves a buyer's sales within the inclusive date
// range, oldest first.
func (r *saleRepository) FindByBuyerInRange(ctx context.Context, buyerID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Sale, error) {
	query := r.db.WithContext(ctx).Model(&model.SaleModel{}).Preload("Items").Where("buyer_id = ?", buyerID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var saleModels []model.SaleModel
	result := query.Order("date ASC, created_at ASC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// Update saves the sale row. Items are immutable and left untouched.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	result := r.db.WithContext(ctx).Save(model.SaleFromEntity(sale))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a sale and its items in one transaction.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SaleItemModel{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SaleModel{}, "id = ?", id).Error
	})
}

// ExistsByBuyer checks whether the buyer has any sales.
func (r *saleRepository) ExistsByBuyer(ctx context.Context, buyerID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("buyer_id = ?", buyerID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SumAmount sums total sale amounts over the inclusive date range.
func (r *saleRepository) SumAmount(ctx context.Context, startDate, endDate *time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	query := r.db.WithContext(ctx).Model(&model.SaleModel{})
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	err := query.Select("COALESCE(SUM(total_amount), 0) as total").Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumAmountByBuyer sums all sale amounts for one buyer.
func (r *saleRepository) SumAmountByBuyer(ctx context.Context, buyerID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("buyer_id = ?", buyerID).
		Select("COALESCE(SUM(total_amount), 0) as total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// TotalsByBuyer returns the all-time sale total per buyer.
func (r *saleRepository) TotalsByBuyer(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		BuyerID uuid.UUID
		Total   decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("buyer_id, COALESCE(SUM(total_amount), 0) as total").
		Group("buyer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.BuyerID] = row.Total
	}
	return totals, nil
}

// ProductSalesTotals aggregates sold quantity and amount per product type
// over sales whose date falls in the inclusive range.
func (r *saleRepository) ProductSalesTotals(ctx context.Context, startDate, endDate *time.Time) ([]adapter.ProductSalesRow, error) {
	var rows []struct {
		ProductName   string
		TotalQuantity float64
		TotalAmount   decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Model(&model.SaleItemModel{}).
		Select(`product_types.name as product_name,
			COALESCE(SUM(sale_items.quantity), 0) as total_quantity,
			COALESCE(SUM(sale_items.total_price), 0) as total_amount`).
		Joins("JOIN product_types ON product_types.id = sale_items.product_type_id").
		Joins("JOIN sales ON sales.id = sale_items.sale_id")
	if startDate != nil {
		query = query.Where("sales.date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("sales.date <= ?", *endDate)
	}

	err := query.Group("product_types.name").Order("product_types.name ASC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]adapter.ProductSalesRow, len(rows))
	for i, row := range rows {
		out[i] = adapter.ProductSalesRow{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalAmount:   row.TotalAmount,
		}
	}
	return out, nil
}
