package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/charlotte-qazi/ai-charlotte/internal/dto"
	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
)

type IPublisherService interface {
	PublishChunks(ctx context.Context, source string, chunks []chunking.Chunk) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) PublishChunks(ctx context.Context, source string, chunks []chunking.Chunk) error {
	payload, err := json.Marshal(dto.EmbedChunksMessage{
		Source: source,
		Chunks: chunks,
	})
	if err != nil {
		return err
	}

	return p.publisher.Publish(p.topicName, message.NewMessage(watermill.NewUUID(), payload))
}
