package main

import (
	articleshandler "mocms/internal/articles/handler"
	articlesrepo "mocms/internal/articles/repository"
	articlesservice "mocms/internal/articles/service"
	articlesvalidator "mocms/internal/articles/validator"
	badgeshandler "mocms/internal/badges/handler"
	badgesrepo "mocms/internal/badges/repository"
	badgesservice "mocms/internal/badges/service"
	badgesvalidator "mocms/internal/badges/validator"
	columnrequestshandler "mocms/internal/columnrequests/handler"
	columnrequestsrepo "mocms/internal/columnrequests/repository"
	columnrequestsservice "mocms/internal/columnrequests/service"
	columnrequestsvalidator "mocms/internal/columnrequests/validator"
	commentshandler "mocms/internal/comments/handler"
	commentsrepo "mocms/internal/comments/repository"
	commentsservice "mocms/internal/comments/service"
	commentsvalidator "mocms/internal/comments/validator"
	noticeshandler "mocms/internal/notices/handler"
	noticesrepo "mocms/internal/notices/repository"
	noticesservice "mocms/internal/notices/service"
	noticesvalidator "mocms/internal/notices/validator"
	reportshandler "mocms/internal/reports/handler"
	reportsrepo "mocms/internal/reports/repository"
	reportsservice "mocms/internal/reports/service"
	reportsvalidator "mocms/internal/reports/validator"
	settingshandler "mocms/internal/settings/handler"
	settingsrepo "mocms/internal/settings/repository"
	settingsservice "mocms/internal/settings/service"
	settingsvalidator "mocms/internal/settings/validator"
	tagshandler "mocms/internal/tags/handler"
	tagsrepo "mocms/internal/tags/repository"
	tagsservice "mocms/internal/tags/service"
	tagsvalidator "mocms/internal/tags/validator"
	topicshandler "mocms/internal/topics/handler"
	topicsrepo "mocms/internal/topics/repository"
	topicsservice "mocms/internal/topics/service"
	topicsvalidator "mocms/internal/topics/validator"
	usershandler "mocms/internal/users/handler"
	usersrepo "mocms/internal/users/repository"
	usersservice "mocms/internal/users/service"
	usersvalidator "mocms/internal/users/validator"
	"mocms/pkg/app"
	"mocms/pkg/config"
	"mocms/pkg/contracts"
	"mocms/pkg/events"
)

const ServiceName = "cms"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "error", err)
	}

	cfg.Log.Info("Starting CMS service")
	handlers := initHandlers(cfg, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, cfg.Client.Mongo, publisher, handlers...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	log := cfg.Log

	handlers := []contracts.Handler{
		articleshandler.NewArticleHandler(articlesservice.NewArticleService(
			articlesrepo.NewMongoArticleRepository(cfg),
			articlesvalidator.NewArticleValidator(log),
			publisher,
			cfg,
		), log),
		topicshandler.NewTopicHandler(topicsservice.NewTopicService(
			topicsrepo.NewMongoTopicRepository(cfg),
			topicsvalidator.NewTopicValidator(log),
			publisher,
			cfg,
		), log),
		commentshandler.NewCommentHandler(commentsservice.NewCommentService(
			commentsrepo.NewMongoCommentRepository(cfg),
			commentsvalidator.NewCommentValidator(log),
			publisher,
			cfg,
		), log),
		usershandler.NewUserHandler(usersservice.NewUserService(
			usersrepo.NewMongoUserRepository(cfg),
			usersvalidator.NewUserValidator(log),
			publisher,
			cfg,
		), log),
		badgeshandler.NewBadgeHandler(badgesservice.NewBadgeService(
			badgesrepo.NewMongoBadgeRepository(cfg),
			badgesvalidator.NewBadgeValidator(log),
			publisher,
			cfg,
		), log),
		noticeshandler.NewNoticeHandler(noticesservice.NewNoticeService(
			noticesrepo.NewMongoNoticeRepository(cfg),
			noticesvalidator.NewNoticeValidator(log),
			publisher,
			cfg,
		), log),
		settingshandler.NewSettingHandler(settingsservice.NewSettingService(
			settingsrepo.NewMongoSettingRepository(cfg),
			settingsvalidator.NewSettingValidator(log),
			publisher,
			cfg,
		), log),
		tagshandler.NewTagHandler(tagsservice.NewTagService(
			tagsrepo.NewMongoTagRepository(cfg),
			tagsvalidator.NewTagValidator(log),
			publisher,
			cfg,
		), log),
		columnrequestshandler.NewColumnRequestHandler(columnrequestsservice.NewColumnRequestService(
			columnrequestsrepo.NewMongoColumnRequestRepository(cfg),
			columnrequestsvalidator.NewColumnRequestValidator(log),
			publisher,
			cfg,
		), log),
		reportshandler.NewReportHandler(reportsservice.NewReportService(
			reportsrepo.NewMongoReportRepository(cfg),
			reportsvalidator.NewReportValidator(log),
			publisher,
			cfg,
		), log),
	}

	cfg.Log.Info("Resource services initialized", "database", cfg.MongoDatabaseName, "resources", len(handlers))
	return handlers
}
