package application

// QuoteCommand 确定性报价命令。
// AvgOrderValue / OffersCount 为零值时回退到公司的历史报价统计。
type QuoteCommand struct {
	CompanyID      uint64
	EmployeesCount int
	Region         string
	Premium48h     bool
	AvgOrderValue  float64
	OffersCount    int
}

// CreateOfferCommand 创建报价单命令
type CreateOfferCommand struct {
	CompanyID      uint64
	EmployeesCount int
	Region         string
	Premium48h     bool
	AvgOrderValue  float64
	OffersCount    int
}

// CreateCompanyCommand 创建公司命令
type CreateCompanyCommand struct {
	Name       string
	IndustryID uint64
	Region     string
}
