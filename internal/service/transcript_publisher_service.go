package service

import (
	"encoding/json"
	"fmt"

	"title-assist-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ITranscriptPublisher pushes conversation lines onto the in-process bus so
// persistence happens off the request path.
type ITranscriptPublisher interface {
	PublishLine(line *dto.TranscriptLineMessage) error
}

type transcriptPublisher struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewTranscriptPublisher(topicName string, pubSub *gochannel.GoChannel) ITranscriptPublisher {
	return &transcriptPublisher{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *transcriptPublisher) PublishLine(line *dto.TranscriptLineMessage) error {
	payload, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal transcript line: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		return fmt.Errorf("publish transcript line: %w", err)
	}
	return nil
}
