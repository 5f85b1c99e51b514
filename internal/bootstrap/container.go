package bootstrap

import (
	"log"
	"time"

	"coaching-dashboard-be/internal/config"
	"coaching-dashboard-be/internal/controller"
	"coaching-dashboard-be/internal/pkg/logger"
	"coaching-dashboard-be/internal/pkg/mailer"
	"coaching-dashboard-be/internal/repository/unitofwork"
	"coaching-dashboard-be/internal/service"

	pktNats "coaching-dashboard-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DashboardController controller.IDashboardController
	CheckinController   controller.ICheckinController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional infrastructure; the dashboard works without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.CheckpointTopic, pubSub)

	dashboardService := service.NewDashboardService(
		uowFactory,
		sysLogger,
		time.Duration(cfg.Cache.StateTTLSeconds)*time.Second,
	)

	checkinService := service.NewCheckinService(
		uowFactory,
		publisherService,
		dashboardService,
		natsPub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.CheckpointTopic,
		uowFactory,
		emailService,
		natsPub,
	)

	// 4. Controllers
	return &Container{
		DashboardController: controller.NewDashboardController(dashboardService),
		CheckinController:   controller.NewCheckinController(checkinService),

		ConsumerService: consumerService,
	}
}
