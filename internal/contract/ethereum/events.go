package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrUnknownEvent is returned when log does not belong to known events.
var ErrUnknownEvent = errors.New("unknown event")

// Event is a decoded contract log.
type Event struct {
	Name     string                 `json:"name"`
	Contract string                 `json:"contract"`
	Block    uint64                 `json:"block"`
	TxHash   string                 `json:"tx_hash"`
	Index    uint                   `json:"log_index"`
	Removed  bool                   `json:"removed,omitempty"`
	Fields   map[string]interface{} `json:"fields"`
}

// EventNames returns names of events of both contracts by their topic.
func EventNames() map[common.Hash]string {
	out := make(map[common.Hash]string, len(creatorProfileABI.Events)+len(contentPostABI.Events))

	for _, a := range []abi.ABI{creatorProfileABI, contentPostABI} {
		for name, e := range a.Events {
			out[e.ID] = name
		}
	}

	return out
}

// DecodeEvent decodes log emitted by one of the contracts.
// Numbers are returned as decimal strings and addresses in checksum form.
func DecodeEvent(l types.Log) (*Event, error) {
	if len(l.Topics) == 0 {
		return nil, ErrUnknownEvent
	}

	e, err := findEvent(l.Topics[0])
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, len(e.Inputs))

	if len(l.Data) > 0 {
		if err := e.Inputs.NonIndexed().UnpackIntoMap(fields, l.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack %s data: %w", e.Name, err)
		}
	}

	var indexed abi.Arguments
	for _, v := range e.Inputs {
		if v.Indexed {
			indexed = append(indexed, v)
		}
	}

	if err := abi.ParseTopicsIntoMap(fields, indexed, l.Topics[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse %s topics: %w", e.Name, err)
	}

	for k, v := range fields {
		fields[k] = normalize(v)
	}

	return &Event{
		Name:     e.Name,
		Contract: l.Address.Hex(),
		Block:    l.BlockNumber,
		TxHash:   l.TxHash.Hex(),
		Index:    l.Index,
		Removed:  l.Removed,
		Fields:   fields,
	}, nil
}

func findEvent(topic common.Hash) (*abi.Event, error) {
	for _, a := range []abi.ABI{creatorProfileABI, contentPostABI} {
		if e, err := a.EventByID(topic); err == nil {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, topic.Hex())
}

func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case *big.Int:
		return v.String()
	case common.Address:
		return v.Hex()
	case common.Hash:
		return v.Hex()
	case [32]byte:
		return hexutil.Encode(v[:])
	case uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	default:
		return v
	}
}
