// Package publisher 将模拟完成事件推送到 Kafka。
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wyfcoding/pkg/messagequeue/kafka"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
)

// KafkaEventPublisher 模拟结果只发摘要事件、不落库，直接走 Kafka。
// 传入的 Producer 需要绑定 simulation.completed 主题。
type KafkaEventPublisher struct {
	producer *kafka.Producer
}

// NewKafkaEventPublisher 创建 Kafka 发布器
func NewKafkaEventPublisher(producer *kafka.Producer) domain.EventPublisher {
	return &KafkaEventPublisher{producer: producer}
}

// PublishSimulationCompleted 发布模拟完成事件
func (p *KafkaEventPublisher) PublishSimulationCompleted(ctx context.Context, event *domain.SimulationCompletedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal simulation completed event: %w", err)
	}

	// 使用公司 ID 做 Key，保证同一公司的事件时序性
	key := strconv.FormatUint(event.CompanyID, 10)
	return p.producer.Publish(ctx, []byte(key), payload)
}
