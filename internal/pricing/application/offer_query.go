package application

import (
	"context"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/xerrors"
)

// OfferQueryService 处理报价相关的查询操作。
// 看板读模型走 Redis 缓存，未命中时从写模型聚合并回填。
type OfferQueryService struct {
	offers     domain.OfferRepository
	stats      domain.StatsRepository
	aggregator domain.StatsAggregator
}

// NewOfferQueryService 创建 OfferQueryService 实例
func NewOfferQueryService(offers domain.OfferRepository, stats domain.StatsRepository, aggregator domain.StatsAggregator) *OfferQueryService {
	return &OfferQueryService{offers: offers, stats: stats, aggregator: aggregator}
}

// GetOffer 按 ID 查询报价单
func (s *OfferQueryService) GetOffer(ctx context.Context, id uint64) (*OfferDTO, error) {
	offer, err := s.offers.Get(ctx, id)
	if err != nil {
		return nil, xerrors.WrapInternal(err, "failed to load offer")
	}
	if offer == nil {
		return nil, xerrors.NotFound("offer not found")
	}
	return toOfferDTO(offer), nil
}

// ListByCompany 查询公司的报价单列表
func (s *OfferQueryService) ListByCompany(ctx context.Context, companyID uint64, limit int) ([]*OfferDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offers, err := s.offers.ListByCompany(ctx, companyID, limit)
	if err != nil {
		return nil, xerrors.WrapInternal(err, "failed to list offers")
	}
	return toOfferDTOs(offers), nil
}

// Dashboard 返回运营看板数据，优先走缓存
func (s *OfferQueryService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if cached, err := s.stats.Get(ctx); err == nil && cached != nil {
		return cached, nil
	}
	return s.RefreshDashboard(ctx)
}

// RefreshDashboard 从写模型重新聚合看板数据并回填缓存。
// 由 Kafka 投影消费者在报价事件到达时调用。
func (s *OfferQueryService) RefreshDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.aggregator.Aggregate(ctx)
	if err != nil {
		return nil, xerrors.WrapInternal(err, "failed to aggregate dashboard stats")
	}
	if err := s.stats.Save(ctx, stats); err != nil {
		// 缓存回填失败只记录，不影响本次查询
		logging.Warn(ctx, "failed to cache dashboard stats", "error", err)
	}
	return stats, nil
}
