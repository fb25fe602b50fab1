package application

// DefaultSimulations 默认模拟次数
const DefaultSimulations = 10000

// SimulateCommand 模拟命令。
// 定价输入与公司画像一致，引擎的基准价与 AI 评分来自确定性报价。
// Seed 为空时使用时间熵播种，固定种子保证结果可复现。
type SimulateCommand struct {
	CompanyID      uint64
	EmployeesCount int
	Region         string
	Premium48h     bool
	AvgOrderValue  float64
	OffersCount    int
	Simulations    int
	Seed           *int64
}
