package application

import (
	"time"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
)

// QuoteDTO 确定性报价响应
type QuoteDTO struct {
	BasePrice     float64 `json:"base_price"`
	FinalPrice    float64 `json:"final_price"`
	RuleScore     float64 `json:"rule_score"`
	MLScore       float64 `json:"ml_score"`
	AIScore       float64 `json:"ai_score"`
	PriorityLevel string  `json:"priority_level"`
	IndustryRisk  float64 `json:"industry_risk_factor"`
}

func toQuoteDTO(quote *domain.Quote, industryRisk float64) *QuoteDTO {
	return &QuoteDTO{
		BasePrice:     quote.BasePrice.InexactFloat64(),
		FinalPrice:    quote.FinalPrice.InexactFloat64(),
		RuleScore:     quote.RuleScore,
		MLScore:       quote.ModelScore,
		AIScore:       quote.AIScore,
		PriorityLevel: string(quote.Priority),
		IndustryRisk:  industryRisk,
	}
}

// OfferDTO 报价单响应
type OfferDTO struct {
	ID             uint64    `json:"id"`
	CompanyID      uint64    `json:"company_id"`
	EmployeesCount int       `json:"employees_count"`
	Region         string    `json:"region"`
	Premium48h     bool      `json:"premium_48h"`
	BasePrice      float64   `json:"base_price"`
	FinalPrice     float64   `json:"final_price"`
	RuleScore      float64   `json:"rule_score"`
	MLScore        float64   `json:"ml_score"`
	AIScore        float64   `json:"ai_score"`
	PriorityLevel  string    `json:"priority_level"`
	CreatedAt      time.Time `json:"created_at"`
}

func toOfferDTO(offer *domain.Offer) *OfferDTO {
	return &OfferDTO{
		ID:             offer.ID,
		CompanyID:      offer.CompanyID,
		EmployeesCount: offer.EmployeesCount,
		Region:         offer.Region,
		Premium48h:     offer.Premium48h,
		BasePrice:      offer.BasePrice.InexactFloat64(),
		FinalPrice:     offer.FinalPrice.InexactFloat64(),
		RuleScore:      offer.RuleScore,
		MLScore:        offer.MLScore,
		AIScore:        offer.AIScore,
		PriorityLevel:  string(offer.PriorityLevel),
		CreatedAt:      offer.CreatedAt,
	}
}

func toOfferDTOs(offers []*domain.Offer) []*OfferDTO {
	dtos := make([]*OfferDTO, 0, len(offers))
	for _, offer := range offers {
		dtos = append(dtos, toOfferDTO(offer))
	}
	return dtos
}

// CompanyDTO 公司响应
type CompanyDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	IndustryID uint64    `json:"industry_id"`
	Region     string    `json:"region"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCompanyDTO(company *domain.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:         company.ID,
		Name:       company.Name,
		IndustryID: company.IndustryID,
		Region:     company.Region,
		CreatedAt:  company.CreatedAt,
	}
}
