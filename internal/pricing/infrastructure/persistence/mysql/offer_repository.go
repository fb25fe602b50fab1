package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
)

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository 创建并返回一个新的 offerRepository 实例。
func NewOfferRepository(db *gorm.DB) domain.OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextx.WithTx(ctx, tx)
		return fn(txCtx)
	})
}

func (r *offerRepository) Save(ctx context.Context, offer *domain.Offer) error {
	model := toOfferModel(offer)
	if model == nil {
		return nil
	}
	db := r.getDB(ctx).WithContext(ctx)
	if model.ID == 0 {
		if err := db.Create(model).Error; err != nil {
			return err
		}
		offer.ID = model.ID
		offer.CreatedAt = model.CreatedAt
		offer.UpdatedAt = model.UpdatedAt
		return nil
	}
	return db.Model(&OfferModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"final_price":    model.FinalPrice,
			"rule_score":     model.RuleScore,
			"ml_score":       model.MLScore,
			"ai_score":       model.AIScore,
			"priority_level": model.PriorityLevel,
		}).Error
}

func (r *offerRepository) Get(ctx context.Context, id uint64) (*domain.Offer, error) {
	var model OfferModel
	err := r.getDB(ctx).WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toOffer(&model), nil
}

func (r *offerRepository) ListByCompany(ctx context.Context, companyID uint64, limit int) ([]*domain.Offer, error) {
	var models []OfferModel
	if err := r.getDB(ctx).WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	offers := make([]*domain.Offer, len(models))
	for i := range models {
		offers[i] = toOffer(&models[i])
	}
	return offers, nil
}

func (r *offerRepository) CountByCompany(ctx context.Context, companyID uint64) (int64, error) {
	var count int64
	err := r.getDB(ctx).WithContext(ctx).
		Model(&OfferModel{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

func (r *offerRepository) AvgOrderValue(ctx context.Context, companyID uint64) (float64, error) {
	var avg *float64
	err := r.getDB(ctx).WithContext(ctx).
		Model(&OfferModel{}).
		Where("company_id = ?", companyID).
		Select("AVG(final_price)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *offerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
