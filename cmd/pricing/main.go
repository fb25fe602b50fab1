package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/pkg/app"
	"github.com/wyfcoding/pkg/cache"
	configpkg "github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/databases"
	"github.com/wyfcoding/pkg/limiter"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/pkg/metrics"
	"github.com/wyfcoding/pkg/middleware"

	pricingapp "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/application"
	pricingdomain "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/infrastructure/persistence/mysql"
	pricingredis "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/infrastructure/persistence/redis"
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/interfaces/consumer"
	pricinghttp "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/interfaces/http"
	simapp "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/application"
	simdomain "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/infrastructure/client"
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/infrastructure/publisher"
	simhttp "github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/interfaces/http"
)

// BootstrapName 服务标识。
const BootstrapName = "pricing"

// Config 扩展配置结构。
type Config struct {
	configpkg.Config `mapstructure:",squash"`

	// Pricing 定价上下文专属配置
	Pricing PricingConfig `mapstructure:"pricing"`
}

// PricingConfig 评分规则等业务开关。
type PricingConfig struct {
	Scoring pricingdomain.ScoringRules `mapstructure:"scoring"`
}

// AppContext 应用资源上下文。
type AppContext struct {
	Config *Config

	OfferCommands *pricingapp.OfferCommandService
	OfferQueries  *pricingapp.OfferQueryService
	Companies     *pricingapp.CompanyService
	Simulations   *simapp.SimulationService

	Metrics *metrics.Metrics
	Limiter limiter.Limiter
}

func main() {
	if err := app.NewBuilder(BootstrapName).
		WithConfig(&Config{}).
		WithService(initService).
		WithGin(registerGin).
		WithGinMiddleware(
			middleware.CORS(),
		).
		Build().
		Run(); err != nil {
		slog.Error("service bootstrap failed", "error", err)
	}
}

func registerGin(e *gin.Engine, srv any) {
	ctx := srv.(*AppContext)

	if ctx.Config.Server.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. 系统路由组 (不限流)
	sys := e.Group("/sys")
	{
		sys.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "UP",
				"service":   BootstrapName,
				"timestamp": time.Now().Unix(),
			})
		})
		sys.GET("/ready", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "READY"})
		})
	}

	if ctx.Config.Metrics.Enabled {
		e.GET(ctx.Config.Metrics.Path, gin.WrapH(ctx.Metrics.Handler()))
	}

	// 2. 治理：限流保护
	e.Use(middleware.RateLimitWithLimiter(ctx.Limiter))

	// 3. 业务路由
	root := e.Group("")
	pricinghttp.NewPricingHandler(ctx.OfferCommands, ctx.OfferQueries, ctx.Companies).RegisterRoutes(root)
	simhttp.NewSimulationHandler(ctx.Simulations).RegisterRoutes(root)

	slog.Info("HTTP service configured successfully", "service", BootstrapName)
}

func initService(cfg any, m *metrics.Metrics) (any, func(), error) {
	c := cfg.(*Config)
	bootLog := slog.With("module", "bootstrap")
	logger := logging.Default()

	// 1. 基础设施
	db, err := databases.NewDB(c.Data.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	if c.Server.Environment == "dev" {
		if err := db.AutoMigrate(
			&mysql.IndustryModel{},
			&mysql.CompanyModel{},
			&mysql.OfferModel{},
			&outbox.OutboxMessage{},
		); err != nil {
			bootLog.Error("failed to migrate database", "error", err)
		}
	}

	redisCache, err := cache.NewRedisCache(c.Data.Redis)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, nil, fmt.Errorf("redis init failed: %w", err)
	}

	// 2. 治理能力
	rateLimiter := limiter.NewRedisLimiter(redisCache.GetClient(), c.RateLimit.Rate, time.Second)

	// 3. Kafka & Outbox
	// Producer 绑定单一主题，每个事件流各建一个
	offerEventsCfg := c.MessageQueue.Kafka
	offerEventsCfg.Topic = pricingdomain.OfferCreatedTopic
	offerProducer := kafka.NewProducer(offerEventsCfg, logger)

	simEventsCfg := c.MessageQueue.Kafka
	simEventsCfg.Topic = simdomain.SimulationCompletedTopic
	simProducer := kafka.NewProducer(simEventsCfg, logger)

	producers := map[string]*kafka.Producer{
		pricingdomain.OfferCreatedTopic: offerProducer,
	}
	outboxMgr := outbox.NewManager(db, logger.Logger)
	outboxProcessor := outbox.NewProcessor(outboxMgr, func(ctx context.Context, topic, key string, payload []byte) error {
		p, ok := producers[topic]
		if !ok {
			return fmt.Errorf("no producer for topic %s", topic)
		}
		return p.Publish(ctx, []byte(key), payload)
	}, 100, 2*time.Second)
	outboxProcessor.Start()

	// 4. 仓储
	offerRepo := mysql.NewOfferRepository(db)
	companyRepo := mysql.NewCompanyRepository(db)
	statsAggregator := mysql.NewStatsAggregator(db)
	statsRepo := pricingredis.NewStatsRedisRepository(redisCache.GetClient())
	offerPublisher := outbox.NewPublisher(outboxMgr)

	// 5. 应用服务
	calculator := pricingdomain.NewCalculator(c.Pricing.Scoring)
	offerCommands := pricingapp.NewOfferCommandService(offerRepo, companyRepo, calculator, offerPublisher)
	offerQueries := pricingapp.NewOfferQueryService(offerRepo, statsRepo, statsAggregator)
	companies := pricingapp.NewCompanyService(companyRepo)

	if err := companies.SeedIndustries(context.Background()); err != nil {
		bootLog.Warn("failed to seed industries", "error", err)
	}

	// 6. 模拟上下文：进程内调用定价服务
	pricingClient := client.NewPricingClient(offerCommands, companyRepo)
	simPublisher := publisher.NewKafkaEventPublisher(simProducer)
	simulations := simapp.NewSimulationService(pricingClient, pricingClient, simPublisher)

	// 7. 投影消费者：报价事件刷新看板，模拟事件留审计日志
	consumerCtx, cancelConsumers := context.WithCancel(context.Background())
	projection := consumer.NewProjectionHandler(offerQueries, logger.Logger)

	offerConsumerCfg := c.MessageQueue.Kafka
	offerConsumerCfg.GroupID = "pricing-dashboard"
	offerConsumerCfg.Topic = pricingdomain.OfferCreatedTopic
	offerConsumer := kafka.NewConsumer(offerConsumerCfg, logger)
	offerConsumer.Start(consumerCtx, 1, projection.Handle)

	simConsumerCfg := c.MessageQueue.Kafka
	simConsumerCfg.GroupID = "pricing-dashboard"
	simConsumerCfg.Topic = simdomain.SimulationCompletedTopic
	simConsumer := kafka.NewConsumer(simConsumerCfg, logger)
	simConsumer.Start(consumerCtx, 1, projection.Handle)

	cleanup := func() {
		bootLog.Info("performing graceful shutdown...")
		cancelConsumers()
		outboxProcessor.Stop()
		offerConsumer.Close()
		simConsumer.Close()
		offerProducer.Close()
		simProducer.Close()
		redisCache.Close()
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	}

	return &AppContext{
		Config:        c,
		OfferCommands: offerCommands,
		OfferQueries:  offerQueries,
		Companies:     companies,
		Simulations:   simulations,
		Metrics:       m,
		Limiter:       rateLimiter,
	}, cleanup, nil
}
