package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/application"
)

// SimulationHandler 蒙特卡洛模拟 HTTP 处理器
type SimulationHandler struct {
	svc *application.SimulationService
}

// NewSimulationHandler 创建 HTTP 处理器实例
func NewSimulationHandler(svc *application.SimulationService) *SimulationHandler {
	return &SimulationHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *SimulationHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/monte-carlo")
	{
		api.POST("/simulate", h.Simulate)
		api.POST("/scenarios", h.Scenarios)
		api.POST("/sensitivity", h.Sensitivity)
		api.GET("/info", h.Info)
	}
}

// SimulateRequest 模拟请求
type SimulateRequest struct {
	CompanyID      uint64  `json:"company_id"`
	EmployeesCount int     `json:"employees_count" binding:"required,gt=0"`
	Region         string  `json:"region" binding:"required"`
	Premium48h     bool    `json:"premium_48h"`
	AvgOrderValue  float64 `json:"ml_feature_avg_order_value"`
	OffersCount    int     `json:"ml_feature_offers_count"`
	Simulations    int     `json:"n_simulations"`
	Seed           *int64  `json:"seed"`
}

func (r *SimulateRequest) toCommand() application.SimulateCommand {
	return application.SimulateCommand{
		CompanyID:      r.CompanyID,
		EmployeesCount: r.EmployeesCount,
		Region:         r.Region,
		Premium48h:     r.Premium48h,
		AvgOrderValue:  r.AvgOrderValue,
		OffersCount:    r.OffersCount,
		Simulations:    r.Simulations,
		Seed:           r.Seed,
	}
}

// Simulate 运行价格风险模拟
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.RunSimulation(c.Request.Context(), req.toCommand())
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to run simulation", "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Scenarios 生成三情景分析
func (h *SimulationHandler) Scenarios(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.ScenarioAnalysis(c.Request.Context(), req.toCommand())
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to run scenario analysis", "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Sensitivity 参数敏感性分析
func (h *SimulationHandler) Sensitivity(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.svc.SensitivityAnalysis(c.Request.Context(), req.toCommand())
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to run sensitivity analysis", "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Info 返回模拟方法论说明
func (h *SimulationHandler) Info(c *gin.Context) {
	response.Success(c, gin.H{
		"description": "Monte Carlo simulation for price risk analysis",
		"methodology": gin.H{
			"model":               "Geometric Brownian Motion inspired with multiple uncertainty sources",
			"default_simulations": application.DefaultSimulations,
			"factors": []string{
				"Market volatility (15% base)",
				"Regional risk factors",
				"Industry risk multiplier",
				"AI confidence adjustment",
				"Demand uncertainty",
				"Cost uncertainty",
				"Rare stress events (5% probability)",
			},
		},
		"outputs": gin.H{
			"percentiles":         "P5, P25, P50, P75, P95 price distribution",
			"var_95":              "Value at Risk at 95% confidence - maximum expected loss",
			"cvar_95":             "Conditional VaR - average loss in worst 5% scenarios",
			"confidence_interval": "95% CI for mean price estimate",
			"convergence_score":   "Stability metric for simulation quality",
		},
		"use_cases": []string{
			"Price risk assessment",
			"Budget planning with uncertainty",
			"Stress testing pricing models",
			"Client negotiation support",
			"Regulatory compliance (VaR reporting)",
		},
	})
}
