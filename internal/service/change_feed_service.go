package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/seller-service/internal/config"
	"github.com/spec-kit/seller-service/internal/events"
)

// ChangeFeedService forwards domain events to an external pub/sub channel.
type ChangeFeedService struct {
	dispatcher events.Dispatcher
	publisher  events.Publisher
	logger     *zap.Logger
	cfg        config.EventsConfig
}

// NewChangeFeedService creates the service.
func NewChangeFeedService(dispatcher events.Dispatcher, publisher events.Publisher, logger *zap.Logger, cfg config.EventsConfig) *ChangeFeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeFeedService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to every event type.
func (f *ChangeFeedService) RegisterHandlers() {
	if f.dispatcher == nil {
		return
	}
	var forward events.EventHandler
	if f.cfg.Enabled && f.publisher != nil && f.cfg.Channel != "" {
		forward = events.NewChannelForwarder(f.publisher, f.cfg.Channel)
	}
	for _, eventType := range events.AllEventTypes {
		f.dispatcher.Subscribe(eventType, f.handler(forward))
	}
}

func (f *ChangeFeedService) handler(forward events.EventHandler) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		f.logger.Info(string(event.Type),
			zap.String("event_id", event.ID),
			zap.Int("entity_id", event.EntityID),
			zap.String("actor", event.Actor.Subject))
		if forward == nil {
			return nil
		}
		return forward(ctx, event)
	}
}
