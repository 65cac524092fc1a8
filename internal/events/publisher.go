package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

var (
	// ErrQueueFull is returned when the publish buffer has no free slot.
	ErrQueueFull = errors.New("event queue full")
	// ErrPublisherClosed is returned after Run has stopped accepting events.
	ErrPublisherClosed = errors.New("event publisher closed")
)

const drainTimeout = 5 * time.Second

// Writer is the subset of *kafka.Writer used by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter returns a synchronous writer for topic that hashes on message key.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
}

// KafkaPublisher buffers registration events and writes them from a single goroutine,
// so request handlers never wait on the broker.
type KafkaPublisher struct {
	writer Writer
	queue  chan domain.RegistrationEvent
	logger *zap.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewKafkaPublisher constructs a KafkaPublisher with a queue of bufferSize events.
func NewKafkaPublisher(writer Writer, bufferSize int, logger *zap.Logger) *KafkaPublisher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{
		writer: writer,
		queue:  make(chan domain.RegistrationEvent, bufferSize),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Publish enqueues event without blocking.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.RegistrationEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		observability.RecordEventDropped()
		return ErrPublisherClosed
	}
	select {
	case p.queue <- event:
		return nil
	default:
		observability.RecordEventDropped()
		return ErrQueueFull
	}
}

// Run writes queued events until ctx is cancelled, then flushes whatever is still
// buffered and closes the writer.
func (p *KafkaPublisher) Run(ctx context.Context) {
	defer close(p.done)

	for {
		if ctx.Err() != nil {
			p.shutdown()
			return
		}

		select {
		case <-ctx.Done():
			p.shutdown()
			return
		case event := <-p.queue:
			p.write(ctx, event)
		}
	}
}

// Wait blocks until Run has returned.
func (p *KafkaPublisher) Wait() {
	<-p.done
}

func (p *KafkaPublisher) shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case event := <-p.queue:
			p.write(ctx, event)
		default:
			if err := p.writer.Close(); err != nil {
				p.logger.Warn("failed to close kafka writer", zap.Error(err))
			}
			return
		}
	}
}

func (p *KafkaPublisher) write(ctx context.Context, event domain.RegistrationEvent) {
	msg, err := NewMessage(event)
	if err != nil {
		observability.RecordEventPublished("error")
		p.logger.Error("failed to encode registration event", zap.String("event_id", event.ID), zap.Error(err))
		return
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		observability.RecordEventPublished("error")
		p.logger.Warn("failed to write registration event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return
	}
	observability.RecordEventPublished("ok")
	p.logger.Debug("registration event written",
		zap.String("event_id", event.ID),
		zap.String("activity", event.Activity),
	)
}

// NopPublisher discards events. Used when no Kafka brokers are configured.
type NopPublisher struct{}

// Publish implements domain.Publisher.
func (NopPublisher) Publish(context.Context, domain.RegistrationEvent) error {
	return nil
}
