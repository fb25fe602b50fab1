// Package consumer 消费报价与模拟事件，维护看板读模型。
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/application"
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
	simdomain "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
)

// ProjectionHandler 把事件投影到看板读模型
type ProjectionHandler struct {
	query  *application.OfferQueryService
	logger *slog.Logger
}

// NewProjectionHandler 创建投影处理器
func NewProjectionHandler(query *application.OfferQueryService, logger *slog.Logger) *ProjectionHandler {
	return &ProjectionHandler{query: query, logger: logger}
}

// Handle 按主题分发事件
func (h *ProjectionHandler) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.Topic {
	case domain.OfferCreatedTopic:
		var payload domain.OfferCreatedEvent
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			h.logger.ErrorContext(ctx, "failed to unmarshal offer created event", "error", err)
			return err
		}
		if _, err := h.query.RefreshDashboard(ctx); err != nil {
			return err
		}
		h.logger.InfoContext(ctx, "dashboard refreshed after offer created",
			"offer_id", payload.OfferID, "company_id", payload.CompanyID)
		return nil
	case simdomain.SimulationCompletedTopic:
		// 模拟事件只做审计日志，不改写读模型
		var payload simdomain.SimulationCompletedEvent
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			h.logger.ErrorContext(ctx, "failed to unmarshal simulation completed event", "error", err)
			return err
		}
		h.logger.InfoContext(ctx, "simulation completed",
			"company_id", payload.CompanyID,
			"mean_price", payload.MeanPrice,
			"risk", payload.RiskInterpretation)
		return nil
	default:
		h.logger.WarnContext(ctx, "unknown event topic", "topic", msg.Topic)
		return nil
	}
}
