package domain

import "time"

// Industry 行业及其风险因子 (0..1)
type Industry struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	RiskFactor float64 `json:"risk_factor"`
}

// DefaultIndustries 初次启动时写入的行业字典
var DefaultIndustries = []Industry{
	{Name: "IT", RiskFactor: 0.2},
	{Name: "Produkcja", RiskFactor: 0.7},
	{Name: "Budownictwo", RiskFactor: 0.8},
	{Name: "Medyczna", RiskFactor: 0.4},
	{Name: "Usługi", RiskFactor: 0.5},
}

// Company 客户公司
type Company struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	IndustryID uint64    `json:"industry_id"`
	Region     string    `json:"region"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
