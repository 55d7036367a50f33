package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/contract/ethereum"
	"github.com/Decentr-net/plutus/internal/media/pinata"
	"github.com/Decentr-net/plutus/internal/publisher"
	"github.com/Decentr-net/plutus/internal/service"
	"github.com/Decentr-net/plutus/internal/service/impl"
	"github.com/Decentr-net/plutus/internal/storage"
	"github.com/Decentr-net/plutus/internal/storage/postgres"
)

const weiDecimals = 18

// nolint:lll,gochecknoglobals
var opts = struct {
	EthereumNode           string `long:"ethereum.node" env:"ETHEREUM_NODE" default:"http://localhost:8545" description:"ethereum json-rpc endpoint"`
	EthereumCreatorProfile string `long:"ethereum.creator_profile" env:"ETHEREUM_CREATOR_PROFILE" required:"true" description:"address of CreatorProfile contract"`
	EthereumContentPost    string `long:"ethereum.content_post" env:"ETHEREUM_CONTENT_POST" required:"true" description:"address of ContentPost contract"`

	Keystore   string `long:"keystore" env:"KEYSTORE" default:"keystore" description:"path to encrypted keystore directory"`
	Account    string `long:"account" env:"ACCOUNT" description:"address of account to sign transactions with"`
	Passphrase string `long:"passphrase" env:"PASSPHRASE" description:"passphrase of account"`

	PinataJWT       string `long:"pinata.jwt" env:"PINATA_JWT" description:"pinata api key"`
	PinataUploadURL string `long:"pinata.upload_url" env:"PINATA_UPLOAD_URL" default:"https://uploads.pinata.cloud/v3" description:"pinata upload api url"`
	PinataGateway   string `long:"pinata.gateway" env:"PINATA_GATEWAY" default:"https://gateway.pinata.cloud/ipfs" description:"gateway content identifiers are resolved over"`

	Postgres string `long:"postgres" env:"POSTGRES" description:"postgres dsn, uploads are recorded for account when it is set"`

	Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"5m" description:"timeout of command including waiting for transaction"`
	LogLevel string        `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

type env struct {
	svc service.Service
	// wallet is nil when account is not set.
	wallet *ethereum.Wallet
	// uploader is an address uploads are recorded for, empty when postgres is not set.
	uploader string
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "plutusctl"
	parser.LongDescription = "Plutus command line client: manages creator profile, tiers, subscriptions and posts"

	addCommands(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// run builds service and runs f within timeout. Interrupt cancels f.
func run(needWallet bool, f func(ctx context.Context, e env) error) error {
	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ec, err := ethclient.DialContext(ctx, opts.EthereumNode)
	if err != nil {
		return fmt.Errorf("failed to connect to ethereum node: %w", err)
	}
	defer ec.Close()

	profile, err := parseContract(opts.EthereumCreatorProfile)
	if err != nil {
		return err
	}

	posts, err := parseContract(opts.EthereumContentPost)
	if err != nil {
		return err
	}

	var e env

	if opts.Account != "" {
		chainID, err := ec.ChainID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get chain id: %w", err)
		}

		e.wallet, err = ethereum.NewKeystoreWallet(opts.Keystore, opts.Account, opts.Passphrase, chainID)
		if err != nil {
			return err
		}

		logrus.WithField("account", e.wallet.Address()).Debug("account unlocked")
	} else if needWallet {
		return fmt.Errorf("--account is required")
	}

	var s storage.Storage
	if opts.Postgres != "" {
		db, err := sql.Open("postgres", opts.Postgres)
		if err != nil {
			return fmt.Errorf("failed to create postgres connection: %w", err)
		}
		defer db.Close() // nolint:errcheck

		s = postgres.New(db)

		if e.wallet != nil {
			e.uploader = e.wallet.Address()
		}
	}

	e.svc = impl.New(
		ethereum.New(ec, ethereum.Config{CreatorProfile: profile, ContentPost: posts}),
		s,
		pinata.New(pinata.Config{
			JWT:       opts.PinataJWT,
			UploadURL: opts.PinataUploadURL,
			Gateway:   opts.PinataGateway,
			Timeout:   opts.Timeout,
		}),
		publisher.Noop(),
	)

	return f(ctx, e)
}

// transact runs write with unlocked wallet and prints mined transaction.
func transact(write func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error)) error {
	return run(true, func(ctx context.Context, e env) error {
		logrus.Info("waiting for transaction to be mined")

		tx, err := write(ctx, e.svc, e.wallet)
		if err != nil {
			return err
		}

		logrus.Debug(spew.Sdump(tx))
		fmt.Printf("%s %s in block %d: %s\n", tx.Method, tx.Hash, tx.Block, tx.Status)

		return nil
	})
}

func parseContract(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid contract address %q", s)
	}

	return common.HexToAddress(s), nil
}

// parseETH converts amount of ether to wei. Empty string returns nil.
func parseETH(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	wei := d.Shift(weiDecimals)
	if !wei.IsInteger() || wei.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q: should be non-negative with at most %d decimals", s, weiDecimals)
	}

	return wei.BigInt(), nil
}

func formatETH(v *big.Int) string {
	if v == nil {
		return "0"
	}

	return decimal.NewFromBigInt(v, -weiDecimals).String()
}
