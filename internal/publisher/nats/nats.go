// Package nats is implementation of publisher over NATS.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/publisher"
)

var log = logrus.WithField("layer", "publisher").WithField("package", "nats")

type pub struct {
	nc *nats.Conn
}

// New returns publisher over nc.
func New(nc *nats.Conn) publisher.Publisher {
	return pub{nc: nc}
}

// Connect connects to NATS server with url.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("plutus"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return nc, nil
}

func (p pub) Publish(ctx context.Context, subject string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	log.WithField("subject", subject).Debug("event published")

	return nil
}
