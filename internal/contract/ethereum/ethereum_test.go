package ethereum

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/validation"
)

var (
	profileAddress = common.HexToAddress("0x1000000000000000000000000000000000000001")
	postAddress    = common.HexToAddress("0x2000000000000000000000000000000000000002")
	creator        = common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	fan            = common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
)

// fakeBackend answers contract calls with abi packed results.
// Methods which are not overridden panic.
type fakeBackend struct {
	Backend

	mu       sync.Mutex
	results  map[string][]interface{}
	inputs   map[string][]interface{}
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		results:  map[string][]interface{}{},
		inputs:   map[string][]interface{}{},
		receipts: map[common.Hash]*types.Receipt{},
	}
}

func methodByID(data []byte) (*abi.Method, error) {
	if m, err := creatorProfileABI.MethodById(data[:4]); err == nil {
		return m, nil
	}

	return contentPostABI.MethodById(data[:4])
}

func (f *fakeBackend) CallContract(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
	m, err := methodByID(msg.Data)
	if err != nil {
		return nil, err
	}

	in, err := m.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.inputs[m.Name] = in

	out, ok := f.results[m.Name]
	if !ok {
		return nil, errors.New("execution reverted")
	}

	return m.Outputs.Pack(out...)
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, tx)

	return nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, h common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.receipts[h]
	if !ok {
		return nil, geth.NotFound
	}

	return r, nil
}

func newTestGateway(t *testing.T) (contract.Gateway, *fakeBackend) {
	b := newFakeBackend()

	return New(b, Config{
		CreatorProfile: profileAddress,
		ContentPost:    postAddress,
		PollInterval:   time.Millisecond,
	}), b
}

func newTestWallet(t *testing.T) *Wallet {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	require.NoError(t, err)

	opts.GasPrice = big.NewInt(1)
	opts.GasLimit = 100000
	opts.Nonce = big.NewInt(0)

	return NewWallet(opts)
}

func TestGateway_GetPost(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getPost"] = []interface{}{postDTO{
		Id:             big.NewInt(7),
		Creator:        creator,
		ContentHash:    "bafkcontent",
		PreviewHash:    "bafkpreview",
		Caption:        "caption",
		ContentType:    uint8(entities.ContentTypeVideo),
		AccessLevel:    uint8(entities.AccessLevelTierGated),
		RequiredTierId: big.NewInt(2),
		CreatedAt:      big.NewInt(1700000000),
		LikesCount:     big.NewInt(10),
		CommentsCount:  big.NewInt(3),
		IsActive:       true,
	}}

	p, err := g.GetPost(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, &entities.Post{
		ID:             7,
		Creator:        creator.Hex(),
		ContentRef:     "bafkcontent",
		PreviewRef:     "bafkpreview",
		Caption:        "caption",
		ContentType:    entities.ContentTypeVideo,
		AccessLevel:    entities.AccessLevelTierGated,
		RequiredTierID: 2,
		CreatedAt:      time.Unix(1700000000, 0).UTC(),
		LikesCount:     10,
		CommentsCount:  3,
		IsActive:       true,
	}, p)

	require.Len(t, b.inputs["getPost"], 1)
	assert.EqualValues(t, 7, b.inputs["getPost"][0].(*big.Int).Int64())
}

func TestGateway_GetPost_NotFound(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getPost"] = []interface{}{postDTO{
		Id:             big.NewInt(0),
		RequiredTierId: big.NewInt(0),
		CreatedAt:      big.NewInt(0),
		LikesCount:     big.NewInt(0),
		CommentsCount:  big.NewInt(0),
	}}

	_, err := g.GetPost(context.Background(), 1)
	require.True(t, errors.Is(err, contract.ErrNotFound))
}

func TestGateway_ReadError(t *testing.T) {
	g, _ := newTestGateway(t)

	_, err := g.GetPost(context.Background(), 1)
	require.Error(t, err)

	var re *contract.ReadError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "getPost", re.Method)
}

func TestGateway_InvalidAddress(t *testing.T) {
	g, b := newTestGateway(t)

	_, err := g.GetCreator(context.Background(), "not-an-address")
	require.True(t, validation.IsError(err))
	require.Empty(t, b.inputs)
}

func TestGateway_GetCreatorByUsername(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getCreatorByUsername"] = []interface{}{creator}
	b.results["getCreator"] = []interface{}{creatorDTO{
		Username:         "alice",
		DisplayName:      "Alice",
		Bio:              "bio",
		ProfileImage:     "bafkavatar",
		BannerImage:      "bafkbanner",
		IsVerified:       true,
		IsActive:         true,
		CreatedAt:        big.NewInt(1600000000),
		TotalSubscribers: big.NewInt(42),
		TotalEarnings:    big.NewInt(1e18),
		TipEarnings:      big.NewInt(5),
	}}

	c, err := g.GetCreatorByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, creator.Hex(), c.Address)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, "Alice", c.DisplayName)
	assert.True(t, c.IsVerified)
	assert.EqualValues(t, 42, c.TotalSubscribers)
	assert.Equal(t, "1000000000000000000", c.TotalEarnings.String())
	assert.Equal(t, time.Unix(1600000000, 0).UTC(), c.CreatedAt)
	assert.Equal(t, creator, b.inputs["getCreator"][0])
}

func TestGateway_GetCreatorByUsername_NotFound(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getCreatorByUsername"] = []interface{}{common.Address{}}

	_, err := g.GetCreatorByUsername(context.Background(), "nobody")
	require.True(t, errors.Is(err, contract.ErrNotFound))
	require.NotContains(t, b.inputs, "getCreator")
}

func TestGateway_GetCreatorTiers(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getCreatorTiers"] = []interface{}{[]tierDTO{
		{Name: "bronze", Description: "d1", Price: big.NewInt(100), IsActive: true},
		{Name: "silver", Description: "d2", Price: big.NewInt(200), IsActive: false},
	}}

	tiers, err := g.GetCreatorTiers(context.Background(), creator.Hex())
	require.NoError(t, err)

	assert.Equal(t, []*entities.Tier{
		{ID: 0, Name: "bronze", Description: "d1", Price: big.NewInt(100), IsActive: true},
		{ID: 1, Name: "silver", Description: "d2", Price: big.NewInt(200), IsActive: false},
	}, tiers)
}

func TestGateway_GetCreators(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getCreators"] = []interface{}{[]common.Address{creator, fan}}
	b.results["getTotalCreators"] = []interface{}{big.NewInt(2)}

	list, err := g.GetCreators(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{creator.Hex(), fan.Hex()}, list)

	total, err := g.GetTotalCreators(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestGateway_GetSubscription(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getSubscription"] = []interface{}{subscriptionDTO{
		TierId:    big.NewInt(1),
		StartTime: big.NewInt(100),
		EndTime:   big.NewInt(200),
		IsActive:  true,
	}}

	s, err := g.GetSubscription(context.Background(), fan.Hex(), creator.Hex())
	require.NoError(t, err)
	assert.Equal(t, &entities.Subscription{
		Subscriber: fan.Hex(),
		Creator:    creator.Hex(),
		TierID:     1,
		StartTime:  time.Unix(100, 0).UTC(),
		EndTime:    time.Unix(200, 0).UTC(),
		IsActive:   true,
	}, s)

	b.results["getSubscription"] = []interface{}{subscriptionDTO{
		TierId:    big.NewInt(0),
		StartTime: big.NewInt(0),
		EndTime:   big.NewInt(0),
	}}

	_, err = g.GetSubscription(context.Background(), fan.Hex(), creator.Hex())
	require.True(t, errors.Is(err, contract.ErrNotFound))
}

func TestGateway_GetPostComments(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["getPostComments"] = []interface{}{[]commentDTO{
		{Id: big.NewInt(1), PostId: big.NewInt(7), Commenter: fan, Content: "nice", CreatedAt: big.NewInt(10), IsActive: true},
	}}

	c, err := g.GetPostComments(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, &entities.Comment{
		ID:        1,
		PostID:    7,
		Commenter: fan.Hex(),
		Content:   "nice",
		CreatedAt: time.Unix(10, 0).UTC(),
		IsActive:  true,
	}, c[0])
}

func TestGateway_CanAccessPost_Anonymous(t *testing.T) {
	g, b := newTestGateway(t)

	b.results["canAccessPost"] = []interface{}{false}

	ok, err := g.CanAccessPost(context.Background(), 3, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, common.Address{}, b.inputs["canAccessPost"][1])
}

func TestGateway_Transact(t *testing.T) {
	g, b := newTestGateway(t)
	w := newTestWallet(t)

	tx, err := g.Subscribe(context.Background(), w, creator.Hex(), 2, big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, contract.TxPending, tx.Status)
	require.Equal(t, "subscribe", tx.Method)

	require.Len(t, b.sent, 1)
	sent := b.sent[0]
	assert.Equal(t, tx.Hash, sent.Hash().Hex())
	assert.Equal(t, profileAddress, *sent.To())
	assert.EqualValues(t, 1000, sent.Value().Int64())

	m, err := methodByID(sent.Data())
	require.NoError(t, err)
	require.Equal(t, "subscribe", m.Name)

	in, err := m.Inputs.Unpack(sent.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, creator, in[0])
	assert.EqualValues(t, 2, in[1].(*big.Int).Int64())
}

func TestGateway_Transact_Post(t *testing.T) {
	g, b := newTestGateway(t)
	w := newTestWallet(t)

	_, err := g.CreatePost(context.Background(), w, contract.CreatePostParams{
		ContentRef:     "bafkcontent",
		Caption:        "hello",
		ContentType:    entities.ContentTypeImage,
		AccessLevel:    entities.AccessLevelTierGated,
		RequiredTierID: 1,
	})
	require.NoError(t, err)

	require.Len(t, b.sent, 1)
	assert.Equal(t, postAddress, *b.sent[0].To())

	m, err := methodByID(b.sent[0].Data())
	require.NoError(t, err)
	require.Equal(t, "createPost", m.Name)

	in, err := m.Inputs.Unpack(b.sent[0].Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, "bafkcontent", in[0])
	assert.Equal(t, uint8(entities.ContentTypeImage), in[3])
	assert.Equal(t, uint8(entities.AccessLevelTierGated), in[4])
}

type foreignSession struct{}

func (foreignSession) Address() string { return fan.Hex() }

func TestGateway_Transact_UnsupportedSession(t *testing.T) {
	g, b := newTestGateway(t)

	_, err := g.LikePost(context.Background(), foreignSession{}, 1)

	var we *contract.WriteError
	require.True(t, errors.As(err, &we))
	require.Equal(t, "likePost", we.Method)
	require.Empty(t, b.sent)
}

func TestGateway_Wait(t *testing.T) {
	g, b := newTestGateway(t)
	w := newTestWallet(t)

	tx, err := g.LikePost(context.Background(), w, 1)
	require.NoError(t, err)

	go func() {
		time.Sleep(5 * time.Millisecond)

		b.mu.Lock()
		b.receipts[common.HexToHash(tx.Hash)] = &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(99),
		}
		b.mu.Unlock()
	}()

	res, err := g.Wait(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, contract.TxConfirmed, res.Status)
	require.EqualValues(t, 99, res.Block)
}

func TestGateway_Wait_Reverted(t *testing.T) {
	g, b := newTestGateway(t)

	tx := &contract.Tx{Method: "likePost", Hash: common.HexToHash("0x01").Hex(), Status: contract.TxPending}
	b.receipts[common.HexToHash(tx.Hash)] = &types.Receipt{Status: types.ReceiptStatusFailed}

	res, err := g.Wait(context.Background(), tx)
	require.True(t, errors.Is(err, contract.ErrReverted))
	require.Equal(t, contract.TxFailed, res.Status)
}

func TestGateway_Wait_Canceled(t *testing.T) {
	g, _ := newTestGateway(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Wait(ctx, &contract.Tx{Method: "likePost", Hash: common.HexToHash("0x02").Hex()})
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestEventNames(t *testing.T) {
	e := EventNames()

	names := make(map[string]bool, len(e))
	for _, v := range e {
		names[v] = true
	}

	for _, v := range []string{"PostCreated", "PostLiked", "CommentAdded", "CreatorRegistered", "Subscribed", "TipSent"} {
		assert.True(t, names[v], v)
	}
}

func TestDecodeEvent(t *testing.T) {
	liked := contentPostABI.Events["PostLiked"]
	e, err := DecodeEvent(types.Log{
		Address:     postAddress,
		Topics:      []common.Hash{liked.ID, common.BigToHash(big.NewInt(7)), common.BytesToHash(fan.Bytes())},
		BlockNumber: 10,
		Index:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, "PostLiked", e.Name)
	assert.Equal(t, postAddress.Hex(), e.Contract)
	assert.EqualValues(t, 10, e.Block)
	assert.EqualValues(t, 2, e.Index)
	assert.Equal(t, map[string]interface{}{"postId": "7", "user": fan.Hex()}, e.Fields)

	tip := creatorProfileABI.Events["TipSent"]
	data, err := tip.Inputs.NonIndexed().Pack(big.NewInt(1000))
	require.NoError(t, err)

	e, err = DecodeEvent(types.Log{
		Address: profileAddress,
		Topics:  []common.Hash{tip.ID, common.BytesToHash(fan.Bytes()), common.BytesToHash(creator.Bytes())},
		Data:    data,
	})
	require.NoError(t, err)

	assert.Equal(t, "TipSent", e.Name)
	assert.Equal(t, map[string]interface{}{"from": fan.Hex(), "creator": creator.Hex(), "amount": "1000"}, e.Fields)

	_, err = DecodeEvent(types.Log{Topics: []common.Hash{common.HexToHash("0x01")}})
	require.True(t, errors.Is(err, ErrUnknownEvent))

	_, err = DecodeEvent(types.Log{})
	require.True(t, errors.Is(err, ErrUnknownEvent))
}
