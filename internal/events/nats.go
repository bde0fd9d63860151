package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NatsPublisher publishes JSON events on NATS core subjects.
type NatsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

// Connect dials url and wraps the connection.
func Connect(url string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("manadabook-graph"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return NewNatsPublisher(nc), nil
}

func (p *NatsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	msg, err := NewMsg(subject, payload)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.nc.PublishMsg(msg)
}

func (p *NatsPublisher) Close() {
	p.nc.Close()
}

// NewMsg encodes payload into a NATS message for subject.
func NewMsg(subject string, payload any) (*nats.Msg, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", subject, err)
	}
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set("Content-Type", "application/json")
	return msg, nil
}
