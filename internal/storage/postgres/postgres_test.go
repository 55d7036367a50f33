//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/storage"
)

const (
	alice = "0x00000000000000000000000000000000000000A1"
	bob   = "0x00000000000000000000000000000000000000B0"
	carol = "0x00000000000000000000000000000000000000C0"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx) // nolint:errcheck
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `UPDATE height SET height=0`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM message`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM upload`)
	require.NoError(t, err)
}

func createMessage(t *testing.T, from, to, body string, at time.Time) uint64 {
	id, err := s.CreateMessage(ctx, &entities.Message{From: from, To: to, Body: body, CreatedAt: at})
	require.NoError(t, err)
	return id
}

func TestPg_GetHeight(t *testing.T) {
	defer cleanup(t)

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, h)

	require.NoError(t, s.SetHeight(ctx, 10))

	h, err = s.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 10, h)
}

func TestPg_WithLockedHeight_Errors(t *testing.T) {
	defer cleanup(t)

	noop := func(storage.Storage) error { return nil }

	require.True(t, errors.Is(s.WithLockedHeight(ctx, 0, 10, noop), storage.ErrRequestedHeightIsTooLow))
	require.True(t, errors.Is(s.WithLockedHeight(ctx, 2, 10, noop), storage.ErrRequestedHeightIsTooHigh))

	errTest := errors.New("test")
	require.ErrorIs(t, s.WithLockedHeight(ctx, 1, 10, func(storage.Storage) error { return errTest }), errTest)

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, h)
}

func TestPg_WithLockedHeight(t *testing.T) {
	defer cleanup(t)

	mu := sync.Mutex{}

	// Lock mutex to be sure if routine is started
	mu.Lock()
	go require.NoError(t, s.WithLockedHeight(ctx, 1, 5, func(locked storage.Storage) error {
		mu.Unlock()                        // allow main routine execution
		time.Sleep(time.Millisecond * 500) // next WithLockedHeight or GetHeight should wait

		h, err := locked.GetHeight(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 0, h)

		return nil
	}))

	mu.Lock() // there we lock to prevent execution continuing

	go func() {
		mu.Lock()         // wait until second WithLockedHeight will start
		defer mu.Unlock() // allow test to finish

		h, err := s.GetHeight(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 9, h)
	}()

	require.NoError(t, s.WithLockedHeight(ctx, 6, 9, func(locked storage.Storage) error {
		mu.Unlock()                        // allow second routine to start
		time.Sleep(time.Millisecond * 500) // to be sure that second routine is started and GetHeight is called

		h, err := locked.GetHeight(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 5, h)

		return nil
	}))

	mu.Lock() // do not finish until second routine will finish
}

func TestPg_CreateMessage_Constraints(t *testing.T) {
	defer cleanup(t)

	_, err := s.CreateMessage(ctx, &entities.Message{From: alice, To: alice, Body: "hi", CreatedAt: time.Now()})
	require.True(t, errors.Is(err, storage.ErrConstraintViolation))

	_, err = s.CreateMessage(ctx, &entities.Message{From: alice, To: bob, Body: "", CreatedAt: time.Now()})
	require.True(t, errors.Is(err, storage.ErrConstraintViolation))
}

func TestPg_ListMessages(t *testing.T) {
	defer cleanup(t)

	now := time.Unix(1700000000, 0)

	id1 := createMessage(t, alice, bob, "1", now)
	id2 := createMessage(t, bob, alice, "2", now.Add(time.Second))
	createMessage(t, alice, carol, "3", now.Add(2*time.Second))
	id4 := createMessage(t, alice, bob, "4", now.Add(3*time.Second))

	m, err := s.ListMessages(ctx, storage.ListMessagesParams{A: bob, B: alice, Limit: 10})
	require.NoError(t, err)
	require.Len(t, m, 3)
	assert.Equal(t, []uint64{id4, id2, id1}, []uint64{m[0].ID, m[1].ID, m[2].ID})
	assert.Equal(t, alice, m[0].From)
	assert.Equal(t, bob, m[0].To)
	assert.Equal(t, "4", m[0].Body)
	assert.True(t, now.Add(3*time.Second).Equal(m[0].CreatedAt))
	assert.Nil(t, m[0].ReadAt)

	m, err = s.ListMessages(ctx, storage.ListMessagesParams{A: alice, B: bob, Before: id4, Limit: 1})
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, id2, m[0].ID)
}

func TestPg_ListConversations(t *testing.T) {
	defer cleanup(t)

	now := time.Unix(1700000000, 0)

	createMessage(t, bob, alice, "1", now)
	createMessage(t, bob, alice, "2", now.Add(time.Second))
	createMessage(t, alice, carol, "3", now.Add(2*time.Second))
	createMessage(t, carol, bob, "4", now.Add(3*time.Second))

	c, err := s.ListConversations(ctx, alice)
	require.NoError(t, err)
	require.Len(t, c, 2)

	assert.Equal(t, carol, c[0].Peer)
	assert.Equal(t, "3", c[0].LastMessage.Body)
	assert.EqualValues(t, 0, c[0].Unread)

	assert.Equal(t, bob, c[1].Peer)
	assert.Equal(t, "2", c[1].LastMessage.Body)
	assert.EqualValues(t, 2, c[1].Unread)

	n, err := s.MarkRead(ctx, alice, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.MarkRead(ctx, alice, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	c, err = s.ListConversations(ctx, alice)
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.EqualValues(t, 0, c[1].Unread)
	assert.NotNil(t, c[1].LastMessage.ReadAt)

	c, err = s.ListConversations(ctx, "0x0000000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestPg_Uploads(t *testing.T) {
	defer cleanup(t)

	now := time.Unix(1700000000, 0)

	u := entities.Upload{CID: "bafk1", Name: "a.png", Size: 10, MIME: "image/png", Uploader: alice, CreatedAt: now}
	require.NoError(t, s.CreateUpload(ctx, &u))
	require.NoError(t, s.CreateUpload(ctx, &u))
	require.NoError(t, s.CreateUpload(ctx, &entities.Upload{
		CID: "bafk2", Name: "b.mp4", Size: 20, MIME: "video/mp4", Uploader: alice, CreatedAt: now.Add(time.Second),
	}))
	require.NoError(t, s.CreateUpload(ctx, &entities.Upload{
		CID: "bafk1", Name: "a.png", Size: 10, MIME: "image/png", Uploader: bob, CreatedAt: now,
	}))

	list, err := s.ListUploads(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bafk2", list[0].CID)
	assert.Equal(t, "bafk1", list[1].CID)
	assert.Equal(t, "a.png", list[1].Name)
	assert.EqualValues(t, 10, list[1].Size)
	assert.Equal(t, "image/png", list[1].MIME)
	assert.Equal(t, alice, list[1].Uploader)
	assert.True(t, now.Equal(list[1].CreatedAt))

	list, err = s.ListUploads(ctx, alice, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
