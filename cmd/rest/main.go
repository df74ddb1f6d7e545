package main

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/charlotte-qazi/ai-charlotte/internal/config"
	"github.com/charlotte-qazi/ai-charlotte/internal/controller"
	"github.com/charlotte-qazi/ai-charlotte/internal/pkg/serverutils"
	"github.com/charlotte-qazi/ai-charlotte/internal/repository"
	"github.com/charlotte-qazi/ai-charlotte/internal/service"
	"github.com/charlotte-qazi/ai-charlotte/pkg/database"
	"github.com/charlotte-qazi/ai-charlotte/pkg/embedding"
	"github.com/charlotte-qazi/ai-charlotte/pkg/generation"
	"github.com/charlotte-qazi/ai-charlotte/pkg/moderation"
	"github.com/charlotte-qazi/ai-charlotte/pkg/vectorstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMinute,
		Expiration: 1 * time.Minute,
	}))
	app.Use(serverutils.ErrorHandlerMiddleware())

	db := database.ConnectDB(cfg.DatabaseURL)

	embeddingClient, err := embedding.NewClient(embedding.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIEmbeddingModel,
	})
	if err != nil {
		log.Fatal(err)
	}

	generationClient, err := generation.NewClient(generation.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIChatModel,
	})
	if err != nil {
		log.Fatal(err)
	}

	promptBuilder, err := generation.NewPromptBuilder(cfg.MaxContextTokens)
	if err != nil {
		log.Fatal(err)
	}

	var moderator service.IModerator
	if cfg.ModerationEnabled {
		moderationClient, err := moderation.NewClient(moderation.Config{
			APIKey: cfg.OpenAIAPIKey,
		})
		if err != nil {
			log.Fatal(err)
		}
		moderator = moderationClient
	}

	qdrantClient := vectorstore.NewClient(vectorstore.Config{
		URL:    cfg.QdrantURL,
		APIKey: cfg.QdrantAPIKey,
	})

	chatSessionRepository := repository.NewChatSessionRepository(db)
	chatMessageRepository := repository.NewChatMessageRepository(db)

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(cfg.EmbedChunksTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.EmbedChunksTopic, embeddingClient, qdrantClient, cfg.QdrantCollection)

	ragService := service.NewRagService(embeddingClient, qdrantClient, moderator, generationClient, promptBuilder, service.RagConfig{
		Collection: cfg.QdrantCollection,
		TopK:       cfg.RetrievalTopK,
		MinScore:   cfg.RetrievalMinScore,
	})
	chatService := service.NewChatService(db, chatSessionRepository, chatMessageRepository, ragService)
	ingestService := service.NewIngestService(publisherService, qdrantClient, cfg.QdrantCollection)

	chatController := controller.NewChatController(chatService, ragService)
	documentController := controller.NewDocumentController(ingestService)

	api := app.Group("/api")
	chatController.RegisterRoutes(api)
	documentController.RegisterRoutes(api)

	if err := consumerService.Consume(context.Background()); err != nil {
		log.Fatal(err)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
