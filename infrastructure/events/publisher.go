// Package events publishes video lifecycle notifications. Publishing is best
// effort: a missing or failing broker is logged and never fails the request
// that triggered it.
package events

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/pubsub"

	"vidtube/infrastructure/logger"
)

const (
	VideoCreated        = "video.created"
	VideoDeleted        = "video.deleted"
	VideoPublishToggled = "video.publish_toggled"
)

type VideoEvent struct {
	Type       string    `json:"type"`
	VideoID    string    `json:"video_id"`
	Owner      string    `json:"owner"`
	OccurredAt time.Time `json:"occurred_at"`
}

type IVideoEvents interface {
	Publish(ctx context.Context, event VideoEvent)
}

type VideoEvents struct {
	client *pubsub.Client
	topic  string
}

func NewVideoEvents(client *pubsub.Client, topic string) IVideoEvents {
	return &VideoEvents{client: client, topic: topic}
}

func (p *VideoEvents) Publish(ctx context.Context, event VideoEvent) {
	if p.client == nil {
		logger.GetLogger().WithField("event", event.Type).Debug("PubSub client is nil - skipping event")
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while marshalling event")
		return
	}

	topic := p.client.Topic(p.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while checking topic")
		return
	}
	if !exists {
		if _, err := p.client.CreateTopic(ctx, p.topic); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while creating topic")
			return
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while publishing event")
		return
	}
	logger.GetLogger().
		WithField("server ID", serverID).
		WithField("event", event.Type).
		Info("Event published")
}
