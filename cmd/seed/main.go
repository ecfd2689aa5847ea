package main

import (
	"context"
	"flag"
	"log"

	"ai-shopchat-be/internal/config"
	"ai-shopchat-be/pkg/embedding"
	"ai-shopchat-be/pkg/ingestion"
	"ai-shopchat-be/pkg/llm/factory"
	"ai-shopchat-be/pkg/qdrant"
)

// Catalog seeder: creates the product collection and/or runs the ingestion
// pipeline directly, without going through the REST jobs.
func main() {
	createCollection := flag.Bool("create-collection", false, "create the product collection before ingesting")
	skipIngest := flag.Bool("skip-ingest", false, "only create the collection, do not ingest the catalog")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL, cfg.Qdrant.APIKey)

	if *createCollection {
		if err := qdrantClient.CreateCollection(ctx, cfg.Qdrant.CollectionName, cfg.Qdrant.DenseSize); err != nil {
			log.Fatalf("[FATAL] Failed to create collection: %v", err)
		}
		log.Printf("[INFO] Collection created: %s", cfg.Qdrant.CollectionName)
	}

	if *skipIngest {
		return
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.StructureModel,
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}

	embeddingProvider := embedding.NewOpenAIProvider(
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
		cfg.Ai.EmbeddingModel,
	)
	ocrClient := ingestion.NewVisionOCRClient(cfg.Keys.GoogleVision)

	pipeline := ingestion.NewPipeline(
		llmProvider,
		embeddingProvider,
		ocrClient,
		qdrantClient,
		cfg.Qdrant.CollectionName,
		cfg.Catalog.CandidatesFile,
		log.Default(),
	)

	count, err := pipeline.Run(ctx, cfg.Catalog.CatalogFile)
	if err != nil {
		log.Fatalf("[FATAL] Catalog ingestion failed: %v", err)
	}
	log.Printf("[INFO] Catalog ingestion finished, %d points upserted", count)
}
