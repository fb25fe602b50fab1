package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository 创建并返回一个新的 companyRepository 实例。
func NewCompanyRepository(db *gorm.DB) domain.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Save(ctx context.Context, company *domain.Company) error {
	model := toCompanyModel(company)
	if model == nil {
		return nil
	}
	db := r.getDB(ctx).WithContext(ctx)
	if model.ID == 0 {
		if err := db.Create(model).Error; err != nil {
			return err
		}
		company.ID = model.ID
		company.CreatedAt = model.CreatedAt
		company.UpdatedAt = model.UpdatedAt
		return nil
	}
	return db.Model(&CompanyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"industry_id": model.IndustryID,
			"region":      model.Region,
		}).Error
}

func (r *companyRepository) Get(ctx context.Context, id uint64) (*domain.Company, error) {
	var model CompanyModel
	err := r.getDB(ctx).WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCompany(&model), nil
}

func (r *companyRepository) List(ctx context.Context, limit int) ([]*domain.Company, error) {
	var models []CompanyModel
	if err := r.getDB(ctx).WithContext(ctx).
		Order("id").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	companies := make([]*domain.Company, len(models))
	for i := range models {
		companies[i] = toCompany(&models[i])
	}
	return companies, nil
}

// IndustryRisk 公司 -> 行业 -> 风险因子；任一环节缺失都回退到默认值
func (r *companyRepository) IndustryRisk(ctx context.Context, companyID uint64) (float64, error) {
	var company CompanyModel
	err := r.getDB(ctx).WithContext(ctx).Where("id = ?", companyID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultIndustryRisk, nil
	}
	if err != nil {
		return 0, err
	}

	var industry IndustryModel
	err = r.getDB(ctx).WithContext(ctx).Where("id = ?", company.IndustryID).First(&industry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultIndustryRisk, nil
	}
	if err != nil {
		return 0, err
	}
	return industry.RiskFactor, nil
}

func (r *companyRepository) SeedIndustries(ctx context.Context, industries []domain.Industry) error {
	db := r.getDB(ctx).WithContext(ctx)
	var count int64
	if err := db.Model(&IndustryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	models := make([]IndustryModel, 0, len(industries))
	for _, ind := range industries {
		models = append(models, IndustryModel{Name: ind.Name, RiskFactor: ind.RiskFactor})
	}
	return db.Create(&models).Error
}

func (r *companyRepository) ListIndustries(ctx context.Context) ([]*domain.Industry, error) {
	var models []IndustryModel
	if err := r.getDB(ctx).WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	industries := make([]*domain.Industry, len(models))
	for i := range models {
		industries[i] = &domain.Industry{
			ID:         models[i].ID,
			Name:       models[i].Name,
			RiskFactor: models[i].RiskFactor,
		}
	}
	return industries, nil
}

func (r *companyRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
