package service

import (
	"context"
	"fmt"

	"title-assist-be/internal/pkg/logger"
	"title-assist-be/internal/pkg/mailer"
	"title-assist-be/pkg/events"
	pktNats "title-assist-be/pkg/nats"
)

type INotifierService interface {
	Start()
}

// notifierService is the operator-facing consumer of the domain event stream.
// Every event lands in the log; lead captures additionally trigger an email
// alert when an operator address is configured.
type notifierService struct {
	subscriber    *pktNats.Subscriber
	mailer        mailer.IEmailService
	operatorEmail string
	logger        logger.ILogger
}

func NewNotifierService(sub *pktNats.Subscriber, email mailer.IEmailService, operatorEmail string, log logger.ILogger) INotifierService {
	return &notifierService{
		subscriber:    sub,
		mailer:        email,
		operatorEmail: operatorEmail,
		logger:        log,
	}
}

var _ INotifierService = &notifierService{}

// Start begins listening to the event bus with a durable consumer.
func (s *notifierService) Start() {
	if err := s.subscriber.Subscribe("events.>", "ops-notifier", s.handleEvent); err != nil {
		s.logger.Error("NotifierService", "Failed to start event subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotifierService", "Notifier started, listening to events.>", nil)
}

func (s *notifierService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotifierService", fmt.Sprintf("Processing event: %s", event.EventType()), event.Payload())

	if event.EventType() != events.TypeLeadCaptured || s.operatorEmail == "" {
		return nil
	}

	payload := event.Payload()
	name, _ := payload["name"].(string)
	phone, _ := payload["phone"].(string)

	if err := s.mailer.SendLeadNotification(s.operatorEmail, name, phone); err != nil {
		// Returning the error would Nak and redeliver; a flapping SMTP server
		// must not turn one lead into a mail storm.
		s.logger.Warn("NotifierService", "Failed to send lead alert", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}
