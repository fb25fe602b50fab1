package mysql

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
)

// IndustryModel 行业表映射
type IndustryModel struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"column:name;type:varchar(64);uniqueIndex;not null"`
	RiskFactor float64 `gorm:"column:risk_factor;type:decimal(4,2);not null"`
}

func (IndustryModel) TableName() string { return "industries" }

// CompanyModel 公司表映射
type CompanyModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
	Name       string    `gorm:"column:name;type:varchar(128);index;not null"`
	IndustryID uint64    `gorm:"column:industry_id;index"`
	Region     string    `gorm:"column:region;type:varchar(32)"`
}

func (CompanyModel) TableName() string { return "companies" }

// OfferModel 报价单表映射
type OfferModel struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
	CompanyID      uint64    `gorm:"column:company_id;index;not null"`
	EmployeesCount int       `gorm:"column:employees_count;not null"`
	Region         string    `gorm:"column:region;type:varchar(32)"`
	Premium48h     bool      `gorm:"column:premium_48h"`
	BasePrice      string    `gorm:"column:base_price;type:decimal(20,2);not null"`
	FinalPrice     string    `gorm:"column:final_price;type:decimal(20,2);not null"`
	RuleScore      float64   `gorm:"column:rule_score;type:decimal(5,2)"`
	MLScore        float64   `gorm:"column:ml_score;type:decimal(5,2)"`
	AIScore        float64   `gorm:"column:ai_score;type:decimal(5,2)"`
	PriorityLevel  string    `gorm:"column:priority_level;type:varchar(16);index"`
}

func (OfferModel) TableName() string { return "offers" }

// mapping helpers

func toOfferModel(o *domain.Offer) *OfferModel {
	if o == nil {
		return nil
	}
	return &OfferModel{
		ID:             o.ID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		CompanyID:      o.CompanyID,
		EmployeesCount: o.EmployeesCount,
		Region:         o.Region,
		Premium48h:     o.Premium48h,
		BasePrice:      o.BasePrice.String(),
		FinalPrice:     o.FinalPrice.String(),
		RuleScore:      o.RuleScore,
		MLScore:        o.MLScore,
		AIScore:        o.AIScore,
		PriorityLevel:  string(o.PriorityLevel),
	}
}

func toOffer(m *OfferModel) *domain.Offer {
	if m == nil {
		return nil
	}
	basePrice, _ := decimal.NewFromString(m.BasePrice)
	finalPrice, _ := decimal.NewFromString(m.FinalPrice)
	return &domain.Offer{
		ID:             m.ID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		CompanyID:      m.CompanyID,
		EmployeesCount: m.EmployeesCount,
		Region:         m.Region,
		Premium48h:     m.Premium48h,
		BasePrice:      basePrice,
		FinalPrice:     finalPrice,
		RuleScore:      m.RuleScore,
		MLScore:        m.MLScore,
		AIScore:        m.AIScore,
		PriorityLevel:  domain.PriorityLevel(m.PriorityLevel),
	}
}

func toCompanyModel(c *domain.Company) *CompanyModel {
	if c == nil {
		return nil
	}
	return &CompanyModel{
		ID:         c.ID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		Name:       c.Name,
		IndustryID: c.IndustryID,
		Region:     c.Region,
	}
}

func toCompany(m *CompanyModel) *domain.Company {
	if m == nil {
		return nil
	}
	return &domain.Company{
		ID:         m.ID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Name:       m.Name,
		IndustryID: m.IndustryID,
		Region:     m.Region,
	}
}
