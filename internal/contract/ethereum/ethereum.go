// Package ethereum is implementation of contract gateway over an EVM node.
package ethereum

import (
	"context"
	_ "embed" // abi
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/validation"
)

var log = logrus.WithField("layer", "contract").WithField("package", "ethereum")

var errUnsupportedSession = errors.New("session is not an ethereum wallet")

//go:embed abi/CreatorProfile.json
var creatorProfileABIJSON string

//go:embed abi/ContentPost.json
var contentPostABIJSON string

// nolint:gochecknoglobals
var (
	creatorProfileABI = mustParseABI(creatorProfileABIJSON)
	contentPostABI    = mustParseABI(contentPostABIJSON)
)

const defaultPollInterval = time.Second

// Backend is a node connection. *ethclient.Client implements it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Config ...
type Config struct {
	CreatorProfile common.Address
	ContentPost    common.Address
	// PollInterval is an interval between receipt checks in Wait.
	PollInterval time.Duration
}

type gateway struct {
	b       Backend
	profile *bind.BoundContract
	posts   *bind.BoundContract

	pollInterval time.Duration
}

// New creates new instance of contract gateway.
func New(b Backend, c Config) contract.Gateway {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}

	return gateway{
		b:            b,
		profile:      bind.NewBoundContract(c.CreatorProfile, creatorProfileABI, b, b, b),
		posts:        bind.NewBoundContract(c.ContentPost, contentPostABI, b, b, b),
		pollInterval: c.PollInterval,
	}
}

type creatorDTO struct {
	Username         string
	DisplayName      string
	Bio              string
	ProfileImage     string
	BannerImage      string
	IsVerified       bool
	IsActive         bool
	CreatedAt        *big.Int
	TotalSubscribers *big.Int
	TotalEarnings    *big.Int
	TipEarnings      *big.Int
}

type tierDTO struct {
	Name        string
	Description string
	Price       *big.Int
	IsActive    bool
}

type subscriptionDTO struct {
	TierId    *big.Int // nolint:golint,stylecheck
	StartTime *big.Int
	EndTime   *big.Int
	IsActive  bool
}

type postDTO struct {
	Id             *big.Int // nolint:golint,stylecheck
	Creator        common.Address
	ContentHash    string
	PreviewHash    string
	Caption        string
	ContentType    uint8
	AccessLevel    uint8
	RequiredTierId *big.Int // nolint:golint,stylecheck
	CreatedAt      *big.Int
	LikesCount     *big.Int
	CommentsCount  *big.Int
	IsActive       bool
}

type commentDTO struct {
	Id        *big.Int // nolint:golint,stylecheck
	PostId    *big.Int // nolint:golint,stylecheck
	Commenter common.Address
	Content   string
	CreatedAt *big.Int
	IsActive  bool
}

func (g gateway) IsCreator(ctx context.Context, address string) (bool, error) {
	a, err := toAddress("address", address)
	if err != nil {
		return false, err
	}

	out, err := call(ctx, g.profile, "isCreator", a)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (g gateway) GetCreator(ctx context.Context, address string) (*entities.Creator, error) {
	a, err := toAddress("address", address)
	if err != nil {
		return nil, err
	}

	return g.getCreator(ctx, a)
}

func (g gateway) getCreator(ctx context.Context, a common.Address) (*entities.Creator, error) {
	out, err := call(ctx, g.profile, "getCreator", a)
	if err != nil {
		return nil, err
	}

	dto := *abi.ConvertType(out[0], new(creatorDTO)).(*creatorDTO)
	if isZero(dto.CreatedAt) {
		return nil, contract.ErrNotFound
	}

	return &entities.Creator{
		Address:          a.Hex(),
		Username:         dto.Username,
		DisplayName:      dto.DisplayName,
		Bio:              dto.Bio,
		ProfileImage:     dto.ProfileImage,
		BannerImage:      dto.BannerImage,
		IsVerified:       dto.IsVerified,
		IsActive:         dto.IsActive,
		CreatedAt:        toTime(dto.CreatedAt),
		TotalSubscribers: toUint64(dto.TotalSubscribers),
		TotalEarnings:    orZero(dto.TotalEarnings),
		TipEarnings:      orZero(dto.TipEarnings),
	}, nil
}

func (g gateway) GetCreatorByUsername(ctx context.Context, username string) (*entities.Creator, error) {
	if username == "" {
		return nil, validation.Errorf("username", "is empty")
	}

	out, err := call(ctx, g.profile, "getCreatorByUsername", username)
	if err != nil {
		return nil, err
	}

	a := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	if a == (common.Address{}) {
		return nil, contract.ErrNotFound
	}

	return g.getCreator(ctx, a)
}

func (g gateway) GetCreatorTiers(ctx context.Context, address string) ([]*entities.Tier, error) {
	a, err := toAddress("address", address)
	if err != nil {
		return nil, err
	}

	out, err := call(ctx, g.profile, "getCreatorTiers", a)
	if err != nil {
		return nil, err
	}

	dto := *abi.ConvertType(out[0], new([]tierDTO)).(*[]tierDTO)

	tiers := make([]*entities.Tier, len(dto))
	for i, v := range dto {
		tiers[i] = &entities.Tier{
			ID:          uint64(i),
			Name:        v.Name,
			Description: v.Description,
			Price:       orZero(v.Price),
			IsActive:    v.IsActive,
		}
	}

	return tiers, nil
}

func (g gateway) GetCreators(ctx context.Context, offset, limit uint64) ([]string, error) {
	out, err := call(ctx, g.profile, "getCreators", toBig(offset), toBig(limit))
	if err != nil {
		return nil, err
	}

	addresses := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)

	res := make([]string, len(addresses))
	for i, v := range addresses {
		res[i] = v.Hex()
	}

	return res, nil
}

func (g gateway) GetTotalCreators(ctx context.Context) (uint64, error) {
	out, err := call(ctx, g.profile, "getTotalCreators")
	if err != nil {
		return 0, err
	}

	return toUint64(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)), nil
}

func (g gateway) GetSubscription(ctx context.Context, subscriber, creator string) (*entities.Subscription, error) {
	s, err := toAddress("subscriber", subscriber)
	if err != nil {
		return nil, err
	}

	c, err := toAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	out, err := call(ctx, g.profile, "getSubscription", s, c)
	if err != nil {
		return nil, err
	}

	dto := *abi.ConvertType(out[0], new(subscriptionDTO)).(*subscriptionDTO)
	if isZero(dto.StartTime) {
		return nil, contract.ErrNotFound
	}

	return &entities.Subscription{
		Subscriber: s.Hex(),
		Creator:    c.Hex(),
		TierID:     toUint64(dto.TierId),
		StartTime:  toTime(dto.StartTime),
		EndTime:    toTime(dto.EndTime),
		IsActive:   dto.IsActive,
	}, nil
}

func (g gateway) GetPost(ctx context.Context, id uint64) (*entities.Post, error) {
	out, err := call(ctx, g.posts, "getPost", toBig(id))
	if err != nil {
		return nil, err
	}

	dto := *abi.ConvertType(out[0], new(postDTO)).(*postDTO)
	if isZero(dto.CreatedAt) {
		return nil, contract.ErrNotFound
	}

	return &entities.Post{
		ID:             toUint64(dto.Id),
		Creator:        dto.Creator.Hex(),
		ContentRef:     dto.ContentHash,
		PreviewRef:     dto.PreviewHash,
		Caption:        dto.Caption,
		ContentType:    entities.ContentType(dto.ContentType),
		AccessLevel:    entities.AccessLevel(dto.AccessLevel),
		RequiredTierID: toUint64(dto.RequiredTierId),
		CreatedAt:      toTime(dto.CreatedAt),
		LikesCount:     toUint64(dto.LikesCount),
		CommentsCount:  toUint64(dto.CommentsCount),
		IsActive:       dto.IsActive,
	}, nil
}

func (g gateway) GetCreatorPosts(ctx context.Context, creator string, offset, limit uint64) ([]uint64, error) {
	a, err := toAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	out, err := call(ctx, g.posts, "getCreatorPosts", a, toBig(offset), toBig(limit))
	if err != nil {
		return nil, err
	}

	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)

	res := make([]uint64, len(ids))
	for i, v := range ids {
		res[i] = toUint64(v)
	}

	return res, nil
}

func (g gateway) GetPostComments(ctx context.Context, postID, offset, limit uint64) ([]*entities.Comment, error) {
	out, err := call(ctx, g.posts, "getPostComments", toBig(postID), toBig(offset), toBig(limit))
	if err != nil {
		return nil, err
	}

	dto := *abi.ConvertType(out[0], new([]commentDTO)).(*[]commentDTO)

	res := make([]*entities.Comment, len(dto))
	for i, v := range dto {
		res[i] = &entities.Comment{
			ID:        toUint64(v.Id),
			PostID:    toUint64(v.PostId),
			Commenter: v.Commenter.Hex(),
			Content:   v.Content,
			CreatedAt: toTime(v.CreatedAt),
			IsActive:  v.IsActive,
		}
	}

	return res, nil
}

func (g gateway) HasLiked(ctx context.Context, postID uint64, address string) (bool, error) {
	a, err := toAddress("address", address)
	if err != nil {
		return false, err
	}

	out, err := call(ctx, g.posts, "hasLiked", toBig(postID), a)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (g gateway) CanAccessPost(ctx context.Context, postID uint64, address string) (bool, error) {
	// anonymous viewer is checked as zero address
	var a common.Address
	if address != "" {
		var err error
		if a, err = toAddress("address", address); err != nil {
			return false, err
		}
	}

	out, err := call(ctx, g.posts, "canAccessPost", toBig(postID), a)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (g gateway) RegisterCreator(ctx context.Context, s contract.Session, p contract.RegisterCreatorParams) (*contract.Tx, error) {
	return transact(ctx, s, g.profile, nil, "registerCreator",
		p.Username, p.DisplayName, p.Bio, p.ProfileImage, p.BannerImage,
	)
}

func (g gateway) UpdateProfile(ctx context.Context, s contract.Session, p contract.UpdateProfileParams) (*contract.Tx, error) {
	return transact(ctx, s, g.profile, nil, "updateProfile",
		p.DisplayName, p.Bio, p.ProfileImage, p.BannerImage,
	)
}

func (g gateway) CreateTier(ctx context.Context, s contract.Session, p contract.CreateTierParams) (*contract.Tx, error) {
	return transact(ctx, s, g.profile, nil, "createTier", p.Name, p.Description, orZero(p.Price))
}

func (g gateway) Subscribe(ctx context.Context, s contract.Session, creator string, tierID uint64, value *big.Int) (*contract.Tx, error) {
	a, err := toAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	return transact(ctx, s, g.profile, value, "subscribe", a, toBig(tierID))
}

func (g gateway) RenewSubscription(ctx context.Context, s contract.Session, creator string, value *big.Int) (*contract.Tx, error) {
	a, err := toAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	return transact(ctx, s, g.profile, value, "renewSubscription", a)
}

func (g gateway) TipCreator(ctx context.Context, s contract.Session, creator string, value *big.Int) (*contract.Tx, error) {
	a, err := toAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	return transact(ctx, s, g.profile, value, "tipCreator", a)
}

func (g gateway) CreatePost(ctx context.Context, s contract.Session, p contract.CreatePostParams) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "createPost",
		p.ContentRef, p.PreviewRef, p.Caption, uint8(p.ContentType), uint8(p.AccessLevel), toBig(p.RequiredTierID),
	)
}

func (g gateway) UpdatePost(ctx context.Context, s contract.Session, id uint64, caption, previewRef string) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "updatePost", toBig(id), caption, previewRef)
}

func (g gateway) DeletePost(ctx context.Context, s contract.Session, id uint64) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "deletePost", toBig(id))
}

func (g gateway) LikePost(ctx context.Context, s contract.Session, id uint64) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "likePost", toBig(id))
}

func (g gateway) UnlikePost(ctx context.Context, s contract.Session, id uint64) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "unlikePost", toBig(id))
}

func (g gateway) AddComment(ctx context.Context, s contract.Session, postID uint64, content string) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "addComment", toBig(postID), content)
}

func (g gateway) DeleteComment(ctx context.Context, s contract.Session, commentID uint64) (*contract.Tx, error) {
	return transact(ctx, s, g.posts, nil, "deleteComment", toBig(commentID))
}

func (g gateway) Wait(ctx context.Context, tx *contract.Tx) (*contract.Tx, error) {
	hash := common.HexToHash(tx.Hash)

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	l := log.WithField("tx", tx.Hash).WithField("method", tx.Method)

	for {
		receipt, err := g.b.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			out := *tx
			if receipt.BlockNumber != nil {
				out.Block = receipt.BlockNumber.Uint64()
			}

			if receipt.Status != types.ReceiptStatusSuccessful {
				out.Status = contract.TxFailed
				l.Warn("transaction reverted")
				return &out, &contract.WriteError{Method: tx.Method, TxHash: tx.Hash, Err: contract.ErrReverted}
			}

			out.Status = contract.TxConfirmed
			l.WithField("block", out.Block).Debug("transaction confirmed")
			return &out, nil
		case errors.Is(err, geth.NotFound):
			l.Trace("transaction is not mined yet")
		default:
			l.WithError(err).Debug("failed to get receipt")
		}

		select {
		case <-ctx.Done():
			return nil, &contract.WriteError{Method: tx.Method, TxHash: tx.Hash, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

func call(ctx context.Context, c *bind.BoundContract, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}

	if err := c.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, &contract.ReadError{Method: method, Err: err}
	}

	if len(out) == 0 {
		return nil, &contract.ReadError{Method: method, Err: errors.New("empty output")}
	}

	return out, nil
}

func transact(
	ctx context.Context,
	s contract.Session,
	c *bind.BoundContract,
	value *big.Int,
	method string,
	params ...interface{},
) (*contract.Tx, error) {
	w, ok := s.(*Wallet)
	if !ok || w == nil {
		return nil, &contract.WriteError{Method: method, Err: errUnsupportedSession}
	}

	tx, err := c.Transact(w.opts(ctx, value), method, params...)
	if err != nil {
		return nil, &contract.WriteError{Method: method, Err: err}
	}

	log.WithField("tx", tx.Hash().Hex()).WithField("method", method).Info("transaction sent")

	return &contract.Tx{
		Method: method,
		Hash:   tx.Hash().Hex(),
		Status: contract.TxPending,
	}, nil
}

func mustParseABI(s string) abi.ABI {
	a, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("failed to parse abi: %s", err))
	}

	return a
}

func toAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, validation.Errorf(field, "%q is not an address", s)
	}

	return common.HexToAddress(s), nil
}

func toBig(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

func toUint64(v *big.Int) uint64 {
	if v == nil || v.Sign() < 0 {
		return 0
	}

	if !v.IsUint64() {
		return math.MaxUint64
	}

	return v.Uint64()
}

func toTime(v *big.Int) time.Time {
	if isZero(v) || !v.IsInt64() {
		return time.Time{}
	}

	return time.Unix(v.Int64(), 0).UTC()
}

func isZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v
}
