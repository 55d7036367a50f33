// Package chain is implementation of consumer which polls logs of the contracts from an ethereum node.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/consumer"
	"github.com/Decentr-net/plutus/internal/contract/ethereum"
	"github.com/Decentr-net/plutus/internal/publisher"
	"github.com/Decentr-net/plutus/internal/storage"
)

var log = logrus.WithField("layer", "consumer").WithField("package", "chain")

const (
	defaultBatchSize    = 1000
	defaultPollInterval = 5 * time.Second
)

// Fetcher is a part of ethclient.Client used by consumer.
type Fetcher interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q geth.FilterQuery) ([]types.Log, error)
}

// Config ...
type Config struct {
	Contracts []common.Address
	// From is the first block to process when nothing is processed yet.
	From uint64
	// Confirmations is how many blocks should be on top of block before it is processed.
	Confirmations uint64
	BatchSize     uint64
	PollInterval  time.Duration
}

// Meta is reported by health check.
type Meta struct {
	Height uint64 `json:"height"`
	Head   uint64 `json:"head"`
}

type chain struct {
	f   Fetcher
	s   storage.Storage
	p   publisher.Publisher
	cfg Config

	height uint64
	head   uint64
}

// New returns new consumer.
func New(f Fetcher, s storage.Storage, p publisher.Publisher, cfg Config) consumer.Consumer {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}

	return &chain{
		f:   f,
		s:   s,
		p:   p,
		cfg: cfg,
	}
}

func (c *chain) Name() string {
	return "consumer"
}

// Ping fails when node is unavailable.
func (c *chain) Ping(ctx context.Context) (interface{}, error) {
	head, err := c.f.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	return Meta{
		Height: atomic.LoadUint64(&c.height),
		Head:   head,
	}, nil
}

func (c *chain) Run(ctx context.Context) error {
	if err := c.init(ctx); err != nil {
		return err
	}

	t := time.NewTicker(c.cfg.PollInterval)
	defer t.Stop()

	for {
		for {
			done, err := c.next(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				log.WithError(err).Error("failed to process blocks")
				break
			}

			if done {
				break
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (c *chain) init(ctx context.Context) error {
	h, err := c.s.GetHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get height: %w", err)
	}

	if h == 0 && c.cfg.From > 1 {
		h = c.cfg.From - 1
		if err := c.s.SetHeight(ctx, h); err != nil {
			return fmt.Errorf("failed to set initial height: %w", err)
		}
	}

	atomic.StoreUint64(&c.height, h)
	log.WithField("height", h).Info("consumer is started")

	return nil
}

// next processes the next batch of blocks. It returns true when there are no confirmed blocks to process.
func (c *chain) next(ctx context.Context) (bool, error) {
	head, err := c.f.BlockNumber(ctx)
	if err != nil {
		return true, fmt.Errorf("failed to get block number: %w", err)
	}

	if head < c.cfg.Confirmations {
		return true, nil
	}
	head -= c.cfg.Confirmations
	atomic.StoreUint64(&c.head, head)

	h, err := c.s.GetHeight(ctx)
	if err != nil {
		return true, fmt.Errorf("failed to get height: %w", err)
	}
	atomic.StoreUint64(&c.height, h)

	if head <= h {
		return true, nil
	}

	from, to := h+1, h+c.cfg.BatchSize
	if to > head {
		to = head
	}

	l := log.WithField("from", from).WithField("to", to)

	err = c.s.WithLockedHeight(ctx, from, to, func(storage.Storage) error {
		logs, err := c.f.FilterLogs(ctx, geth.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: c.cfg.Contracts,
		})
		if err != nil {
			return fmt.Errorf("failed to filter logs: %w", err)
		}

		for _, v := range logs {
			if err := c.publish(ctx, v); err != nil {
				return err
			}
		}

		l.WithField("logs", len(logs)).Debug("blocks processed")
		return nil
	})

	switch {
	case err == nil:
		atomic.StoreUint64(&c.height, to)
		return to == head, nil
	case errors.Is(err, storage.ErrRequestedHeightIsTooLow):
		l.Debug("blocks are processed by another consumer")
		return false, nil
	default:
		return true, err
	}
}

func (c *chain) publish(ctx context.Context, l types.Log) error {
	e, err := ethereum.DecodeEvent(l)
	if err != nil {
		if errors.Is(err, ethereum.ErrUnknownEvent) {
			log.WithField("tx", l.TxHash.Hex()).Debug("skip unknown log")
			return nil
		}
		return fmt.Errorf("failed to decode log: %w", err)
	}

	if err := c.p.Publish(ctx, publisher.ChainSubject(e.Name), e); err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Name, err)
	}

	return nil
}
