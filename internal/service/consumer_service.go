package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2/log"

	"github.com/charlotte-qazi/ai-charlotte/internal/dto"
	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
	"github.com/charlotte-qazi/ai-charlotte/pkg/vectorstore"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	embedder   IEmbedder
	store      IVectorStore
	collection string
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	embedder IEmbedder,
	store IVectorStore,
	collection string,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		embedder:   embedder,
		store:      store,
		collection: collection,
	}
}

// Consume makes sure the collection exists, then drains the embed topic
// in the background for the lifetime of ctx.
func (cs *consumerService) Consume(ctx context.Context) error {
	if err := cs.store.EnsureCollection(ctx, cs.collection, cs.embedder.Dimension()); err != nil {
		return err
	}

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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) error {
	defer msg.Nack()

	defer func() {
		if e := recover(); e != nil {
			log.Errorf("panic while embedding chunk batch: %v", e)
		}
	}()

	var payload dto.EmbedChunksMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Errorf("failed to unmarshal embed payload: %v | payload: %s", err, string(msg.Payload))
		return err
	}

	chunks := make([]chunking.Chunk, 0, len(payload.Chunks))
	texts := make([]string, 0, len(payload.Chunks))
	for _, chunk := range payload.Chunks {
		if strings.TrimSpace(chunk.Text) == "" {
			log.Warnf("skipping empty chunk %s from %s", chunk.ID, payload.Source)
			continue
		}
		chunks = append(chunks, chunk)
		texts = append(texts, chunk.Text)
	}
	if len(chunks) == 0 {
		msg.Ack()
		return nil
	}

	vectors, err := cs.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		log.Errorf("failed to embed %d chunks from %s: %v", len(chunks), payload.Source, err)
		return err
	}

	points := make([]vectorstore.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = vectorstore.Point{
			ID:     chunk.ID,
			Vector: vectors[i],
			Payload: map[string]any{
				"chunk_id":       chunk.ID,
				"chunk_index":    chunk.ChunkIndex,
				"text":           chunk.Text,
				"source":         chunk.Source,
				"heading":        chunk.Heading,
				"chunk_type":     string(chunk.ChunkType),
				"word_count":     chunk.WordCount,
				"parent_heading": chunk.ParentHeading,
			},
		}
		for key, value := range chunk.Metadata {
			points[i].Payload[key] = value
		}
	}

	if err := cs.store.Upsert(ctx, cs.collection, points); err != nil {
		log.Errorf("failed to upsert %d points from %s: %v", len(points), payload.Source, err)
		return err
	}

	log.Infof("embedded and stored %d chunks from %s", len(chunks), payload.Source)

	msg.Ack()
	return nil
}
