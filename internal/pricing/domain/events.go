package domain

import "time"

// OfferCreatedTopic 报价单创建事件主题
const OfferCreatedTopic = "pricing.offer.created"

// OfferCreatedEvent 报价单创建事件
type OfferCreatedEvent struct {
	OfferID       uint64    `json:"offer_id"`
	CompanyID     uint64    `json:"company_id"`
	Region        string    `json:"region"`
	FinalPrice    float64   `json:"final_price"`
	AIScore       float64   `json:"ai_score"`
	PriorityLevel string    `json:"priority_level"`
	OccurredOn    time.Time `json:"occurred_on"`
}
