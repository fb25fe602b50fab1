// Package client 提供模拟上下文对定价上下文的进程内适配。
package client

import (
	"context"

	pricingapp "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/application"
	pricingdomain "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
)

// PricingClient 将定价上下文的报价服务与公司仓储适配到模拟上下文的端口。
// 两个上下文部署在同一进程内，调用直接走应用服务，不经过 HTTP。
type PricingClient struct {
	quotes    *pricingapp.OfferCommandService
	companies pricingdomain.CompanyRepository
}

// NewPricingClient 创建进程内定价客户端
func NewPricingClient(quotes *pricingapp.OfferCommandService, companies pricingdomain.CompanyRepository) *PricingClient {
	return &PricingClient{quotes: quotes, companies: companies}
}

// Quote 计算确定性报价
func (c *PricingClient) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.PriceQuote, error) {
	dto, err := c.quotes.Quote(ctx, pricingapp.QuoteCommand{
		CompanyID:      req.CompanyID,
		EmployeesCount: req.Employees,
		Region:         req.Region,
		Premium48h:     req.Premium,
		AvgOrderValue:  req.AvgOrderValue,
		OffersCount:    req.OffersCount,
	})
	if err != nil {
		return nil, err
	}
	return &domain.PriceQuote{
		BasePrice:  dto.BasePrice,
		FinalPrice: dto.FinalPrice,
		AIScore:    dto.AIScore,
		RuleScore:  dto.RuleScore,
		ModelScore: dto.MLScore,
		Priority:   dto.PriorityLevel,
	}, nil
}

// IndustryRisk 查询公司的行业风险因子
func (c *PricingClient) IndustryRisk(ctx context.Context, companyID uint64) (float64, error) {
	return c.companies.IndustryRisk(ctx, companyID)
}
