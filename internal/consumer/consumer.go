// Package consumer contains interface of chain events consumer.
package consumer

import (
	"context"

	"github.com/Decentr-net/plutus/internal/api"
)

// Consumer consumes events of the contracts.
type Consumer interface {
	api.Pinger

	Run(ctx context.Context) error
}
