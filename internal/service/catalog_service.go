package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/fiber/v2"

	"ai-shopchat-be/internal/dto"
	"ai-shopchat-be/internal/pkg/logger"
	"ai-shopchat-be/pkg/qdrant"
)

const (
	JobCreateCollection = "create-collection"
	JobInsertPoints     = "insert-points"
)

// JobRegistry serializes catalog maintenance jobs: each named job runs at
// most once at a time.
type JobRegistry struct {
	mu      sync.Mutex
	running map[string]bool
}

func NewJobRegistry() *JobRegistry {
	return &JobRegistry{running: make(map[string]bool)}
}

// Begin marks a job as running. It reports false when the job is already
// in flight.
func (r *JobRegistry) Begin(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running[name] {
		return false
	}
	r.running[name] = true
	return true
}

func (r *JobRegistry) End(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.running, name)
}

type ICatalogService interface {
	CreateCollection(ctx context.Context) (*dto.CatalogJobResponse, error)
	InsertPoints(ctx context.Context) (*dto.CatalogJobResponse, error)
}

// catalogService owns the two maintenance operations of the product
// collection: schema creation and the catalog ingestion job. Ingestion runs
// asynchronously through the pub/sub consumer; its job slot is released by
// the consumer when the pipeline finishes.
type catalogService struct {
	qdrantClient     *qdrant.Client
	collection       string
	denseSize        int
	catalogFile      string
	jobs             *JobRegistry
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCatalogService(
	qdrantClient *qdrant.Client,
	collection string,
	denseSize int,
	catalogFile string,
	jobs *JobRegistry,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) ICatalogService {
	return &catalogService{
		qdrantClient:     qdrantClient,
		collection:       collection,
		denseSize:        denseSize,
		catalogFile:      catalogFile,
		jobs:             jobs,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (cs *catalogService) CreateCollection(ctx context.Context) (*dto.CatalogJobResponse, error) {
	if !cs.jobs.Begin(JobCreateCollection) {
		return nil, fiber.NewError(fiber.StatusConflict, "Job already running: "+JobCreateCollection)
	}
	defer cs.jobs.End(JobCreateCollection)

	if err := cs.qdrantClient.CreateCollection(ctx, cs.collection, cs.denseSize); err != nil {
		cs.logger.Error("catalog", "create collection failed", map[string]interface{}{
			"collection": cs.collection,
			"error":      err.Error(),
		})
		return nil, err
	}

	cs.logger.Info("catalog", "collection created", map[string]interface{}{
		"collection": cs.collection,
	})
	return &dto.CatalogJobResponse{
		OK:      true,
		Action:  JobCreateCollection,
		Message: "Collection created",
	}, nil
}

func (cs *catalogService) InsertPoints(ctx context.Context) (*dto.CatalogJobResponse, error) {
	if !cs.jobs.Begin(JobInsertPoints) {
		return nil, fiber.NewError(fiber.StatusConflict, "Job already running: "+JobInsertPoints)
	}

	msgPayload := dto.PublishIngestCatalogMessage{
		CatalogFile: cs.catalogFile,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		cs.jobs.End(JobInsertPoints)
		return nil, err
	}

	if err := cs.publisherService.Publish(ctx, msgJson); err != nil {
		cs.jobs.End(JobInsertPoints)
		return nil, err
	}

	return &dto.CatalogJobResponse{
		OK:      true,
		Action:  JobInsertPoints,
		Message: "Ingestion started",
	}, nil
}
