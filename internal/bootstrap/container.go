package bootstrap

import (
	"log"

	"ai-shopchat-be/internal/config"
	"ai-shopchat-be/internal/constant"
	"ai-shopchat-be/internal/controller"
	"ai-shopchat-be/internal/pkg/logger"
	"ai-shopchat-be/internal/repository/memory"
	"ai-shopchat-be/internal/service"
	"ai-shopchat-be/pkg/analyze"
	"ai-shopchat-be/pkg/embedding"
	"ai-shopchat-be/pkg/ingestion"
	"ai-shopchat-be/pkg/intent"
	"ai-shopchat-be/pkg/llm/factory"
	"ai-shopchat-be/pkg/normalize"
	"ai-shopchat-be/pkg/qdrant"
	"ai-shopchat-be/pkg/safety"
	"ai-shopchat-be/pkg/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	CatalogController controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	analyzeProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.AnalyzeModel,
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	structureProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.StructureModel,
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.AnalyzeModel)

	embeddingProvider := embedding.NewOpenAIProvider(
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
		cfg.Ai.EmbeddingModel,
	)
	log.Printf("[INFO] Using Embedding Model: %s", cfg.Ai.EmbeddingModel)

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL, cfg.Qdrant.APIKey)

	// 4. Domain Components
	table := normalize.LoadTable(cfg.Catalog.NormalizationFile)
	resolver := normalize.NewResolver(table)

	policy := constant.DefaultChatPolicy()
	classifier := intent.NewClassifier(
		policy.Intent.ProductSearchKeywords,
		policy.Intent.FollowupKeywords,
		policy.Intent.NeedKeywords,
		policy.Intent.NegativeAnswers,
	)
	safetyFilter := safety.NewFilter(safety.Config{
		Keywords:              policy.Caution.Keywords,
		PregnancyKeywords:     policy.Caution.PregnancyKeywords,
		BreastfeedingKeywords: policy.Caution.BreastfeedingKeywords,
		ChildKeywords:         policy.Caution.ChildKeywords,
		PregnancyMessage:      policy.Caution.PregnancyMessage,
		BreastfeedingMessage:  policy.Caution.BreastfeedingMessage,
		ChildMessage:          policy.Caution.ChildMessage,
		DefaultMessage:        policy.Caution.DefaultMessage,
	})

	analyzer := analyze.NewAnalyzer(analyzeProvider)
	queryBuilder := search.NewQueryBuilder(resolver)
	searchLogger := log.New(log.Writer(), "[search] ", log.LstdFlags)
	orchestrator := search.NewOrchestrator(
		qdrantClient,
		cfg.Qdrant.CollectionName,
		search.DefaultConfig(),
		searchLogger,
	)

	// 5. Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 6. Services
	jobs := service.NewJobRegistry()
	publisherService := service.NewPublisherService(cfg.Catalog.IngestTopicName, pubSub)

	ocrClient := ingestion.NewVisionOCRClient(cfg.Keys.GoogleVision)
	ingestLogger := log.New(log.Writer(), "[ingest] ", log.LstdFlags)
	pipeline := ingestion.NewPipeline(
		structureProvider,
		embeddingProvider,
		ocrClient,
		qdrantClient,
		cfg.Qdrant.CollectionName,
		cfg.Catalog.CandidatesFile,
		ingestLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Catalog.IngestTopicName,
		pipeline,
		jobs,
	)

	chatService := service.NewChatService(
		sessionRepo,
		analyzer,
		embeddingProvider,
		queryBuilder,
		orchestrator,
		safetyFilter,
		classifier,
		resolver,
		policy,
		sysLogger,
	)

	catalogService := service.NewCatalogService(
		qdrantClient,
		cfg.Qdrant.CollectionName,
		cfg.Qdrant.DenseSize,
		cfg.Catalog.CatalogFile,
		jobs,
		publisherService,
		sysLogger,
	)

	// 7. Controllers
	chatController := controller.NewChatController(chatService)
	catalogController := controller.NewCatalogController(catalogService)

	return &Container{
		ChatController:    chatController,
		CatalogController: catalogController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
