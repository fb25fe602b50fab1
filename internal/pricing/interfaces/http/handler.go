package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/application"
)

// PricingHandler 定价与报价单 HTTP 处理器
type PricingHandler struct {
	cmd       *application.OfferCommandService
	query     *application.OfferQueryService
	companies *application.CompanyService
}

// NewPricingHandler 创建 HTTP 处理器实例
func NewPricingHandler(cmd *application.OfferCommandService, query *application.OfferQueryService, companies *application.CompanyService) *PricingHandler {
	return &PricingHandler{cmd: cmd, query: query, companies: companies}
}

// RegisterRoutes 注册路由
func (h *PricingHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1")
	{
		api.POST("/pricing/quote", h.Quote)
		api.GET("/pricing/dashboard", h.Dashboard)
		api.POST("/offers", h.CreateOffer)
		api.GET("/offers/:id", h.GetOffer)
		api.POST("/companies", h.CreateCompany)
		api.GET("/companies", h.ListCompanies)
		api.GET("/companies/:id/offers", h.ListCompanyOffers)
	}
}

// OfferRequest 报价请求
type OfferRequest struct {
	CompanyID      uint64  `json:"company_id"`
	EmployeesCount int     `json:"employees_count" binding:"required,gt=0"`
	Region         string  `json:"region" binding:"required"`
	Premium48h     bool    `json:"premium_48h"`
	AvgOrderValue  float64 `json:"ml_feature_avg_order_value"`
	OffersCount    int     `json:"ml_feature_offers_count"`
}

// Quote 确定性报价（不落库）
func (h *PricingHandler) Quote(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	quote, err := h.cmd.Quote(c.Request.Context(), application.QuoteCommand{
		CompanyID:      req.CompanyID,
		EmployeesCount: req.EmployeesCount,
		Region:         req.Region,
		Premium48h:     req.Premium48h,
		AvgOrderValue:  req.AvgOrderValue,
		OffersCount:    req.OffersCount,
	})
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to calculate quote", "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, quote)
}

// CreateOffer 创建报价单
func (h *PricingHandler) CreateOffer(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	offer, err := h.cmd.CreateOffer(c.Request.Context(), application.CreateOfferCommand{
		CompanyID:      req.CompanyID,
		EmployeesCount: req.EmployeesCount,
		Region:         req.Region,
		Premium48h:     req.Premium48h,
		AvgOrderValue:  req.AvgOrderValue,
		OffersCount:    req.OffersCount,
	})
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to create offer", "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, offer)
}

// GetOffer 查询报价单
func (h *PricingHandler) GetOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid offer id", "")
		return
	}

	offer, err := h.query.GetOffer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, offer)
}

// ListCompanyOffers 查询公司报价单列表
func (h *PricingHandler) ListCompanyOffers(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid company id", "")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	offers, err := h.query.ListByCompany(c.Request.Context(), companyID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, offers)
}

// CompanyRequest 创建公司请求
type CompanyRequest struct {
	Name       string `json:"name" binding:"required"`
	IndustryID uint64 `json:"industry_id"`
	Region     string `json:"region"`
}

// CreateCompany 创建公司
func (h *PricingHandler) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	company, err := h.companies.CreateCompany(c.Request.Context(), application.CreateCompanyCommand{
		Name:       req.Name,
		IndustryID: req.IndustryID,
		Region:     req.Region,
	})
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to create company", "error", err)
		response.Error(c, err)
		return
	}
	response.Success(c, company)
}

// ListCompanies 公司列表
func (h *PricingHandler) ListCompanies(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	companies, err := h.companies.ListCompanies(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, companies)
}

// Dashboard 运营看板
func (h *PricingHandler) Dashboard(c *gin.Context) {
	stats, err := h.query.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
