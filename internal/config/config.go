package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Qdrant  QdrantConfig
	Ai      AIConfig
	Catalog CatalogConfig
	Keys    APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	DenseSize      int
}

type AIConfig struct {
	LLMProvider    string // "openai"
	OpenAIBaseURL  string
	AnalyzeModel   string
	StructureModel string
	EmbeddingModel string
}

type CatalogConfig struct {
	CatalogFile       string
	NormalizationFile string
	CandidatesFile    string
	IngestTopicName   string
}

type APIKeys struct {
	OpenAI       string
	GoogleVision string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Qdrant: QdrantConfig{
			URL:            getEnv("DATABASE_URL", "http://localhost:6333"),
			APIKey:         getEnv("QDRANT_API_KEY", ""),
			CollectionName: getEnv("COLLECTION_NAME", "test_products"),
			DenseSize:      getEnvAsInt("DENSE_VECTOR_SIZE", 1536),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
			OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			AnalyzeModel:   getEnv("ANALYZE_MODEL", "gpt-4.1-mini"),
			StructureModel: getEnv("IMAGE_STRUCTURE_MODEL", "gpt-4.1-mini"),
			EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		},
		Catalog: CatalogConfig{
			CatalogFile:       getEnv("CATALOG_FILE", "data/goods.json"),
			NormalizationFile: getEnv("NORMALIZATION_FILE", "data/normalization.json"),
			CandidatesFile:    getEnv("NORMALIZATION_CANDIDATES_FILE", "data/normalization-candidates.jsonl"),
			IngestTopicName:   getEnv("INGEST_CATALOG_TOPIC_NAME", "INGEST_CATALOG"),
		},
		Keys: APIKeys{
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			GoogleVision: getEnv("GOOGLE_VISION_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
