package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment in the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByBuyer retrieves all payments for a buyer, newest first.
func (r *paymentRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("date DESC, created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindByBuyerInRange retrieves a buyer's payments within the inclusive date
// range, oldest first.
func (r *paymentRepository) FindByBuyerInRange(ctx context.Context, buyerID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).Where("buyer_id = ?", buyerID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var paymentModels []model.PaymentModel
	result := query.Order("date ASC, created_at ASC").Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// ExistsByBuyer checks whether the buyer has any payments.
func (r *paymentRepository) ExistsByBuyer(ctx context.Context, buyerID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("buyer_id = ?", buyerID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SumAmountByBuyer sums all payment amounts for one buyer.
func (r *paymentRepository) SumAmountByBuyer(ctx context.Context, buyerID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("buyer_id = ?", buyerID).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// TotalsByBuyer returns the all-time payment total per buyer.
func (r *paymentRepository) TotalsByBuyer(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		BuyerID uuid.UUID
		Total   decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("buyer_id, COALESCE(SUM(amount), 0) as total").
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
