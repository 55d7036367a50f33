//go:build integration
// +build integration

package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Decentr-net/plutus/internal/publisher"
)

func setup(t *testing.T) *nats.Conn {
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2.10-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForLog("Server is ready"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Terminate(ctx) }) // nolint:errcheck

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "4222")
	require.NoError(t, err)

	nc, err := Connect(fmt.Sprintf("nats://%s:%s", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	return nc
}

func TestPub_Publish(t *testing.T) {
	nc := setup(t)

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(publisher.ChainSubject("*"), ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() // nolint:errcheck

	require.NoError(t, New(nc).Publish(context.Background(), publisher.ChainSubject("PostLiked"), map[string]uint64{"post_id": 1}))

	select {
	case msg := <-ch:
		require.Equal(t, "plutus.chain.PostLiked", msg.Subject)

		var v map[string]uint64
		require.NoError(t, json.Unmarshal(msg.Data, &v))
		require.EqualValues(t, 1, v["post_id"])
	case <-time.After(5 * time.Second):
		t.Fatal("message is not received")
	}
}
