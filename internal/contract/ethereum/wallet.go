package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
)

// Wallet is a contract.Session which signs transactions with a local key.
type Wallet struct {
	transactor *bind.TransactOpts
}

// NewWallet wraps transactor into session.
func NewWallet(transactor *bind.TransactOpts) *Wallet {
	return &Wallet{transactor: transactor}
}

// NewKeystoreWallet unlocks account from an encrypted keystore directory.
func NewKeystoreWallet(dir, address, passphrase string, chainID *big.Int) (*Wallet, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid account address %q", address)
	}

	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)

	acc, err := ks.Find(accounts.Account{Address: common.HexToAddress(address)})
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := ks.Unlock(acc, passphrase); err != nil {
		return nil, fmt.Errorf("failed to unlock account: %w", err)
	}

	transactor, err := bind.NewKeyStoreTransactorWithChainID(ks, acc, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return NewWallet(transactor), nil
}

// Address returns checksummed wallet address.
func (w *Wallet) Address() string {
	return w.transactor.From.Hex()
}

func (w *Wallet) opts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	o := *w.transactor
	o.Context = ctx
	o.Value = value

	return &o
}
