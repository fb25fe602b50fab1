package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer 报价单实体
type Offer struct {
	ID             uint64          `json:"id"`
	CompanyID      uint64          `json:"company_id"`
	EmployeesCount int             `json:"employees_count"`
	Region         string          `json:"region"`
	Premium48h     bool            `json:"premium_48h"`
	BasePrice      decimal.Decimal `json:"base_price"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	RuleScore      float64         `json:"rule_score"`
	MLScore        float64         `json:"ml_score"`
	AIScore        float64         `json:"ai_score"`
	PriorityLevel  PriorityLevel   `json:"priority_level"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewOffer 从报价结果构造报价单
func NewOffer(companyID uint64, in QuoteInput, quote *Quote) *Offer {
	return &Offer{
		CompanyID:      companyID,
		EmployeesCount: in.Employees,
		Region:         in.Region,
		Premium48h:     in.Premium,
		BasePrice:      quote.BasePrice,
		FinalPrice:     quote.FinalPrice,
		RuleScore:      quote.RuleScore,
		MLScore:        quote.ModelScore,
		AIScore:        quote.AIScore,
		PriorityLevel:  quote.Priority,
	}
}
