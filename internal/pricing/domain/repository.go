package domain

import "context"

// OfferRepository 报价单仓储
type OfferRepository interface {
	// WithTx 在单个数据库事务内执行 fn，事务随 ctx 传递
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	Save(ctx context.Context, offer *Offer) error
	Get(ctx context.Context, id uint64) (*Offer, error)
	ListByCompany(ctx context.Context, companyID uint64, limit int) ([]*Offer, error)
	CountByCompany(ctx context.Context, companyID uint64) (int64, error)
	AvgOrderValue(ctx context.Context, companyID uint64) (float64, error)
}

// CompanyRepository 公司与行业仓储
type CompanyRepository interface {
	Save(ctx context.Context, company *Company) error
	Get(ctx context.Context, id uint64) (*Company, error)
	List(ctx context.Context, limit int) ([]*Company, error)
	// IndustryRisk 返回公司所属行业的风险因子；
	// 公司或行业缺失时返回 DefaultIndustryRisk，不报错。
	IndustryRisk(ctx context.Context, companyID uint64) (float64, error)
	SeedIndustries(ctx context.Context, industries []Industry) error
	ListIndustries(ctx context.Context) ([]*Industry, error)
}

// DashboardStats 运营看板读模型
type DashboardStats struct {
	Companies     int64          `json:"companies"`
	Offers        int64          `json:"offers"`
	AvgOfferValue float64        `json:"avg_offer_value"`
	TopCompanies  []TopCompany   `json:"top_companies"`
	ByPriority    map[string]int `json:"by_priority"`
}

// TopCompany 看板中的头部客户条目
type TopCompany struct {
	CompanyID  uint64  `json:"company_id"`
	Name       string  `json:"name"`
	TotalValue float64 `json:"total_value"`
	Offers     int64   `json:"offers"`
}

// StatsRepository 看板读模型仓储 (缓存)
type StatsRepository interface {
	Get(ctx context.Context) (*DashboardStats, error)
	Save(ctx context.Context, stats *DashboardStats) error
}

// StatsAggregator 从写模型聚合看板数据
type StatsAggregator interface {
	Aggregate(ctx context.Context) (*DashboardStats, error)
}
