package domain

import "context"

// QuoteRequest 请求确定性报价所需的公司画像
type QuoteRequest struct {
	CompanyID     uint64
	Employees     int
	Region        string
	Premium       bool
	AvgOrderValue float64
	OffersCount   int
}

// PriceQuote 确定性报价结果，模拟以 FinalPrice 与 AIScore 为锚点
type PriceQuote struct {
	BasePrice  float64
	FinalPrice float64
	AIScore    float64
	RuleScore  float64
	ModelScore float64
	Priority   string
}

// PriceQuoter 定价上下文提供的确定性报价端口
type PriceQuoter interface {
	Quote(ctx context.Context, req QuoteRequest) (*PriceQuote, error)
}

// IndustryRiskReader 行业风险因子读取端口。
// 公司或行业缺失时返回默认风险因子而非错误。
type IndustryRiskReader interface {
	IndustryRisk(ctx context.Context, companyID uint64) (float64, error)
}

// EventPublisher 模拟完成事件发布端口
type EventPublisher interface {
	PublishSimulationCompleted(ctx context.Context, event *SimulationCompletedEvent) error
}
