package service

import (
	"context"
	"encoding/json"
	"log"

	"title-assist-be/internal/dto"
	"title-assist-be/internal/entity"
	"title-assist-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the transcript topic and writes each line to the
// database. Persistence failures Nack so the line is retried.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	transcriptRepo contract.TranscriptRepository
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	transcriptRepo contract.TranscriptRepository,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		transcriptRepo: transcriptRepo,
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
	var payload dto.TranscriptLineMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal transcript line: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	line := &entity.TranscriptMessage{
		Id:        uuid.New(),
		SessionID: payload.SessionId,
		Role:      payload.Role,
		Content:   payload.Content,
		OptionID:  payload.OptionId,
		Mode:      payload.Mode,
	}

	if err := cs.transcriptRepo.Create(ctx, line); err != nil {
		log.Printf("[ERROR] Failed to persist transcript line for session %s: %v", payload.SessionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
