package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/plutus/internal/api"
	"github.com/Decentr-net/plutus/internal/auth"
	"github.com/Decentr-net/plutus/internal/consumer"
	"github.com/Decentr-net/plutus/internal/consumer/chain"
	"github.com/Decentr-net/plutus/internal/contract/ethereum"
	"github.com/Decentr-net/plutus/internal/media/pinata"
	mm "github.com/Decentr-net/plutus/internal/middleware"
	"github.com/Decentr-net/plutus/internal/middleware/memory"
	mredis "github.com/Decentr-net/plutus/internal/middleware/redis"
	"github.com/Decentr-net/plutus/internal/publisher"
	pnats "github.com/Decentr-net/plutus/internal/publisher/nats"
	"github.com/Decentr-net/plutus/internal/server"
	"github.com/Decentr-net/plutus/internal/service/impl"
	"github.com/Decentr-net/plutus/internal/storage"
	"github.com/Decentr-net/plutus/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	EthereumNode           string        `long:"ethereum.node" env:"ETHEREUM_NODE" default:"http://localhost:8545" description:"ethereum json-rpc endpoint"`
	EthereumCreatorProfile string        `long:"ethereum.creator_profile" env:"ETHEREUM_CREATOR_PROFILE" required:"true" description:"address of CreatorProfile contract"`
	EthereumContentPost    string        `long:"ethereum.content_post" env:"ETHEREUM_CONTENT_POST" required:"true" description:"address of ContentPost contract"`
	EthereumPollInterval   time.Duration `long:"ethereum.poll_interval" env:"ETHEREUM_POLL_INTERVAL" default:"1s" description:"interval between transaction receipt checks"`

	ConsumerDisabled      bool          `long:"consumer.disabled" env:"CONSUMER_DISABLED" description:"disables chain events consumer"`
	ConsumerFromBlock     uint64        `long:"consumer.from_block" env:"CONSUMER_FROM_BLOCK" default:"0" description:"the first block to process when nothing is processed yet"`
	ConsumerConfirmations uint64        `long:"consumer.confirmations" env:"CONSUMER_CONFIRMATIONS" default:"2" description:"count of blocks on top of block before it is processed"`
	ConsumerBatchSize     uint64        `long:"consumer.batch_size" env:"CONSUMER_BATCH_SIZE" default:"1000" description:"maximal count of blocks requested at once"`
	ConsumerPollInterval  time.Duration `long:"consumer.poll_interval" env:"CONSUMER_POLL_INTERVAL" default:"5s" description:"interval between checks of new blocks"`

	PinataJWT       string        `long:"pinata.jwt" env:"PINATA_JWT" required:"true" description:"pinata api key"`
	PinataUploadURL string        `long:"pinata.upload_url" env:"PINATA_UPLOAD_URL" default:"https://uploads.pinata.cloud/v3" description:"pinata upload api url"`
	PinataGateway   string        `long:"pinata.gateway" env:"PINATA_GATEWAY" default:"https://gateway.pinata.cloud/ipfs" description:"gateway content identifiers are resolved over"`
	PinataNetwork   string        `long:"pinata.network" env:"PINATA_NETWORK" default:"public" description:"pinata network" choice:"public" choice:"private"`
	PinataTimeout   time.Duration `long:"pinata.timeout" env:"PINATA_TIMEOUT" default:"2m" description:"timeout for requests to pinata"`

	AuthSecret   string        `long:"auth.secret" env:"AUTH_SECRET" required:"true" description:"secret to sign session tokens with"`
	AuthTokenTTL time.Duration `long:"auth.token_ttl" env:"AUTH_TOKEN_TTL" default:"24h" description:"lifetime of session token"`

	Redis string `long:"redis" env:"REDIS" description:"redis address for response cache, memory cache is used when empty"`
	NATS  string `long:"nats" env:"NATS" description:"nats url for events, events are not published when empty"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Plutus"
	parser.LongDescription = "Plutus creators subscriptions api"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          api.GetVersion(),
			ServerName:       "plutus",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := mustGetDB()
	s := postgres.New(db)

	ec := mustGetEthClient(ctx)

	pingers := []api.Pinger{
		api.SubjectPinger("postgres", db.PingContext),
		api.SubjectPinger("ethereum", func(ctx context.Context) error {
			_, err := ec.BlockNumber(ctx)
			return err
		}),
	}

	p, nc := mustGetPublisher()
	if nc != nil {
		defer nc.Close()

		pingers = append(pingers, api.SubjectPinger("nats", func(context.Context) error {
			if !nc.IsConnected() {
				return fmt.Errorf("connection is %s", nc.Status())
			}
			return nil
		}))
	}

	cache, cachePinger := mustGetCache()
	if cachePinger != nil {
		pingers = append(pingers, cachePinger)
	}

	var c consumer.Consumer
	if !opts.ConsumerDisabled {
		c = mustGetConsumer(ec, s, p)
		pingers = append(pingers, c)
	}

	svc := impl.New(
		ethereum.New(ec, ethereum.Config{
			CreatorProfile: mustParseAddress(opts.EthereumCreatorProfile),
			ContentPost:    mustParseAddress(opts.EthereumContentPost),
			PollInterval:   opts.EthereumPollInterval,
		}),
		s,
		pinata.New(pinata.Config{
			JWT:       opts.PinataJWT,
			UploadURL: opts.PinataUploadURL,
			Gateway:   opts.PinataGateway,
			Network:   opts.PinataNetwork,
			Timeout:   opts.PinataTimeout,
		}),
		p,
	)

	r := chi.NewMux()
	r.Get("/health", api.HealthHandler(5*time.Second, pingers...))
	server.SetupRouter(svc, auth.New([]byte(opts.AuthSecret), opts.AuthTokenTTL), cache, r, opts.RequestTimeout)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr, _ := errgroup.WithContext(ctx)
	if c != nil {
		gr.Go(func() error {
			return c.Run(ctx)
		})
	}
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server")
		}

		return errTerminated
	})

	logrus.WithField("addr", srv.Addr).Info("server started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("plutus unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func mustGetEthClient(ctx context.Context) *ethclient.Client {
	ec, err := ethclient.DialContext(ctx, opts.EthereumNode)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to ethereum node")
	}

	chainID, err := ec.ChainID(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get chain id")
	}

	logrus.WithField("chain_id", chainID.String()).Info("connected to ethereum node")

	return ec
}

func mustGetPublisher() (publisher.Publisher, *nats.Conn) {
	if opts.NATS == "" {
		logrus.Warn("empty nats url, events will not be published")
		return publisher.Noop(), nil
	}

	nc, err := pnats.Connect(opts.NATS)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to nats")
	}

	return pnats.New(nc), nc
}

func mustGetCache() (mm.Storage, api.Pinger) {
	if opts.Redis == "" {
		logrus.Info("empty redis address, memory cache is used")
		return memory.NewStorage(), nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: opts.Redis})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to ping redis")
	}

	return mredis.NewStorage(rdb), api.SubjectPinger("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
}

func mustGetConsumer(ec *ethclient.Client, s storage.Storage, p publisher.Publisher) consumer.Consumer {
	return chain.New(ec, s, p, chain.Config{
		Contracts: []common.Address{
			mustParseAddress(opts.EthereumCreatorProfile),
			mustParseAddress(opts.EthereumContentPost),
		},
		From:          opts.ConsumerFromBlock,
		Confirmations: opts.ConsumerConfirmations,
		BatchSize:     opts.ConsumerBatchSize,
		PollInterval:  opts.ConsumerPollInterval,
	})
}

func mustParseAddress(s string) common.Address {
	if !common.IsHexAddress(s) {
		logrus.Fatalf("invalid contract address %q", s)
	}

	return common.HexToAddress(s)
}
