package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
)

type statsAggregator struct {
	db *gorm.DB
}

// NewStatsAggregator 创建看板聚合器，直接从写模型统计
func NewStatsAggregator(db *gorm.DB) domain.StatsAggregator {
	return &statsAggregator{db: db}
}

func (a *statsAggregator) Aggregate(ctx context.Context) (*domain.DashboardStats, error) {
	db := a.db.WithContext(ctx)
	stats := &domain.DashboardStats{ByPriority: make(map[string]int)}

	if err := db.Model(&CompanyModel{}).Count(&stats.Companies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&OfferModel{}).Count(&stats.Offers).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := db.Model(&OfferModel{}).Select("AVG(final_price)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AvgOfferValue = *avg
	}

	var byPriority []struct {
		PriorityLevel string
		Count         int
	}
	if err := db.Model(&OfferModel{}).
		Select("priority_level, COUNT(*) as count").
		Group("priority_level").
		Scan(&byPriority).Error; err != nil {
		return nil, err
	}
	for _, row := range byPriority {
		stats.ByPriority[row.PriorityLevel] = row.Count
	}

	var top []struct {
		CompanyID  uint64
		Name       string
		TotalValue float64
		Offers     int64
	}
	if err := db.Model(&OfferModel{}).
		Select("offers.company_id, companies.name, SUM(offers.final_price) as total_value, COUNT(*) as offers").
		Joins("LEFT JOIN companies ON companies.id = offers.company_id").
		Group("offers.company_id, companies.name").
		Order("total_value desc").
		Limit(5).
		Scan(&top).Error; err != nil {
		return nil, err
	}
	for _, row := range top {
		stats.TopCompanies = append(stats.TopCompanies, domain.TopCompany{
			CompanyID:  row.CompanyID,
			Name:       row.Name,
			TotalValue: row.TotalValue,
			Offers:     row.Offers,
		})
	}
	return stats, nil
}
