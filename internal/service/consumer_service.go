package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-shopchat-be/internal/dto"
	"ai-shopchat-be/pkg/ingestion"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the catalog ingestion topic and runs the pipeline
// for each job message. The job registry slot taken by the catalog service
// is released here, pass or fail.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	pipeline  *ingestion.Pipeline
	jobs      *JobRegistry
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pipeline *ingestion.Pipeline,
	jobs *JobRegistry,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		pipeline:  pipeline,
		jobs:      jobs,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer cs.jobs.End(JobInsertPoints)

	var payload dto.PublishIngestCatalogMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing catalog ingestion for file: %s", payload.CatalogFile)

	count, err := cs.pipeline.Run(ctx, payload.CatalogFile)
	if err != nil {
		log.Printf("[ERROR] Catalog ingestion failed: %v", err)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Catalog ingestion finished, %d points upserted", count)
	msg.Ack()
}
