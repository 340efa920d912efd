package diagnosticsqueue

import (
	"context"
	"sync"
	"time"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/exceptions"
	"unidash-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Service publishes schedule diagnostics to a durable queue and waits for the broker confirm
// of every message.
type Service struct {
	ch        publishChannel
	confirms  <-chan amqp.Confirmation
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

// NewService opens a channel, declares the durable queue and enables publisher confirms.
func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return newService(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), queueName, log), nil
}

func newService(ch publishChannel, confirms <-chan amqp.Confirmation, queueName string, log *zap.Logger) *Service {
	return &Service{
		ch:        ch,
		confirms:  confirms,
		queueName: queueName,
		log:       log,
	}
}

var _ contracts.DiagnosticsPublisher = (*Service)(nil)

func (s *Service) PublishScheduleDiagnostic(ctx context.Context, message *contracts.ScheduleDiagnosticMessage) error {
	requestID := utils.GetRequestID(ctx)
	if message.MessageID == "" {
		message.MessageID = uuid.NewString()
	}
	if message.RequestID == "" {
		message.RequestID = requestID
	}
	if message.OccurredAt.IsZero() {
		message.OccurredAt = time.Now()
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    message.MessageID,
		Timestamp:    message.OccurredAt,
		Type:         message.Reason,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQNack(s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}

	s.log.Debug("diagnosticsqueue.Service.PublishScheduleDiagnostic published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.String(constvars.LoggingFacultyLoadIDKey, message.LoadID),
		zap.String(constvars.LoggingReasonKey, message.Reason),
	)
	return nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}
