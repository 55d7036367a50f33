// Package publisher contains interface of event publisher.
package publisher

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=./mock/publisher.go -package=mock -source=publisher.go

const subjectPrefix = "plutus"

// Publisher publishes events.
type Publisher interface {
	// Publish encodes v and publishes it to subject.
	Publish(ctx context.Context, subject string, v interface{}) error
}

// MessagesSubject returns subject new messages for address are published to.
func MessagesSubject(address string) string {
	return fmt.Sprintf("%s.messages.%s", subjectPrefix, address)
}

// ChainSubject returns subject chain events with name are published to.
func ChainSubject(event string) string {
	return fmt.Sprintf("%s.chain.%s", subjectPrefix, event)
}

type noop struct{}

// Noop returns publisher which drops every event.
func Noop() Publisher {
	return noop{}
}

func (noop) Publish(context.Context, string, interface{}) error {
	return nil
}
