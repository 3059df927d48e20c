// Package events provides a NATS JetStream EventPublisher.
//
// Registration and formation events are published as JSON messages on the
// teammate.> subject space, giving downstream consumers (dashboards, audit
// trails) a durable feed of intake activity without coupling them to the
// coordinator.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Subjects used by the publisher.
const (
	// SubjectParticipantRegistered carries participantRegisteredEvent
	// payloads.
	SubjectParticipantRegistered = "teammate.participant.registered"

	// SubjectTeamsFormed carries teamsFormedEvent payloads.
	SubjectTeamsFormed = "teammate.teams.formed"

	defaultStreamName = "TEAMMATE"
)

// NATSPublisher implements types.EventPublisher on a JetStream stream.
type NATSPublisher struct {
	js     jetstream.JetStream
	stream string
}

var _ types.EventPublisher = (*NATSPublisher)(nil)

// NATSPublisherOption configures a NATSPublisher.
type NATSPublisherOption func(*NATSPublisher)

// WithStreamName overrides the default "TEAMMATE" stream name.
func WithStreamName(name string) NATSPublisherOption {
	return func(p *NATSPublisher) {
		p.stream = name
	}
}

// NewNATSPublisher creates a publisher and ensures its stream exists.
//
// Parameters:
//   - ctx: Context for the stream create/update call
//   - nc: Connected NATS client with JetStream enabled
//   - opts: Optional configuration (WithStreamName)
//
// Returns:
//   - *NATSPublisher: Publisher ready for concurrent use
//   - error: JetStream initialization or stream creation failure
func NewNATSPublisher(ctx context.Context, nc *nats.Conn, opts ...NATSPublisherOption) (*NATSPublisher, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &NATSPublisher{js: js, stream: defaultStreamName}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     p.stream,
		Subjects: []string{"teammate.>"},
	})
	if err != nil {
		return nil, fmt.Errorf("ensure stream %s: %w", p.stream, err)
	}

	return p, nil
}

type participantRegisteredEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type teamSummary struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type teamsFormedEvent struct {
	TeamCount int           `json:"teamCount"`
	Teams     []teamSummary `json:"teams"`
}

// PublishParticipantRegistered publishes a registration event.
func (p *NATSPublisher) PublishParticipantRegistered(ctx context.Context, participant *types.Participant) error {
	payload, err := json.Marshal(participantRegisteredEvent{
		ID:    participant.ID(),
		Name:  participant.Name(),
		Email: participant.Email(),
	})
	if err != nil {
		return fmt.Errorf("encode registration event: %w", err)
	}

	if _, err := p.js.Publish(ctx, SubjectParticipantRegistered, payload); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectParticipantRegistered, err)
	}

	return nil
}

// PublishTeamsFormed publishes a formation event summarizing every team.
func (p *NATSPublisher) PublishTeamsFormed(ctx context.Context, teams []*types.Team) error {
	event := teamsFormedEvent{TeamCount: len(teams)}
	for _, team := range teams {
		summary := teamSummary{ID: team.ID(), Name: team.Name()}
		for _, m := range team.Members() {
			summary.Members = append(summary.Members, m.ID())
		}
		event.Teams = append(event.Teams, summary)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode formation event: %w", err)
	}

	if _, err := p.js.Publish(ctx, SubjectTeamsFormed, payload); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectTeamsFormed, err)
	}

	return nil
}
