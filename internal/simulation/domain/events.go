package domain

import "time"

// SimulationCompletedTopic 模拟完成事件主题
const SimulationCompletedTopic = "simulation.completed"

// SimulationCompletedEvent 模拟完成事件。
// 只携带摘要指标，完整样本不出引擎也不落库。
type SimulationCompletedEvent struct {
	CompanyID          uint64    `json:"company_id"`
	Region             string    `json:"region"`
	BasePrice          float64   `json:"base_price"`
	MeanPrice          float64   `json:"mean_price"`
	StdDev             float64   `json:"std_dev"`
	P5                 float64   `json:"p5"`
	P95                float64   `json:"p95"`
	Simulations        int       `json:"n_simulations"`
	RiskInterpretation string    `json:"risk_interpretation"`
	CompletedAt        time.Time `json:"completed_at"`
}
