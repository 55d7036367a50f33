package impl

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Decentr-net/plutus/internal/action"
	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/validation"
)

func (s srv) RegisterCreator(ctx context.Context, ss contract.Session, p contract.RegisterCreatorParams) (*contract.Tx, error) {
	if err := validateRegisterCreator(p); err != nil {
		return nil, err
	}

	return s.submit(ctx, key("register", ss), func() (*contract.Tx, error) {
		return s.c.RegisterCreator(ctx, ss, p)
	})
}

func (s srv) UpdateProfile(ctx context.Context, ss contract.Session, p contract.UpdateProfileParams) (*contract.Tx, error) {
	if err := validateProfile(p.DisplayName, p.Bio); err != nil {
		return nil, err
	}

	return s.submit(ctx, key("profile", ss), func() (*contract.Tx, error) {
		return s.c.UpdateProfile(ctx, ss, p)
	})
}

func (s srv) CreateTier(ctx context.Context, ss contract.Session, p contract.CreateTierParams) (*contract.Tx, error) {
	if err := validateCreateTier(p); err != nil {
		return nil, err
	}

	return s.submit(ctx, key("tier", ss), func() (*contract.Tx, error) {
		tiers, err := s.c.GetCreatorTiers(ctx, ss.Address())
		if err != nil {
			return nil, fmt.Errorf("failed to get tiers: %w", err)
		}

		if entities.ActiveTiersCount(tiers) >= entities.MaxActiveTiers {
			return nil, validation.Errorf("tier", "maximum of %d active tiers is reached", entities.MaxActiveTiers)
		}

		return s.c.CreateTier(ctx, ss, p)
	})
}

func (s srv) Subscribe(ctx context.Context, ss contract.Session, creator string, tierID uint64, value *big.Int) (*contract.Tx, error) {
	creator, err := s.parseCounterparty(ss, creator)
	if err != nil {
		return nil, err
	}

	if value != nil {
		if err := validatePositive("value", value); err != nil {
			return nil, err
		}
	}

	return s.submit(ctx, key("subscribe", ss, creator), func() (*contract.Tx, error) {
		tier, err := s.getActiveTier(ctx, creator, tierID)
		if err != nil {
			return nil, err
		}

		v, err := priceOrValue(tier, value)
		if err != nil {
			return nil, err
		}

		return s.c.Subscribe(ctx, ss, creator, tierID, v)
	})
}

func (s srv) Renew(ctx context.Context, ss contract.Session, creator string, value *big.Int) (*contract.Tx, error) {
	creator, err := s.parseCounterparty(ss, creator)
	if err != nil {
		return nil, err
	}

	if value != nil {
		if err := validatePositive("value", value); err != nil {
			return nil, err
		}
	}

	return s.submit(ctx, key("subscribe", ss, creator), func() (*contract.Tx, error) {
		sub, err := s.c.GetSubscription(ctx, ss.Address(), creator)
		if err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				return nil, validation.Errorf("creator", "no subscription to renew")
			}
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}

		tier, err := s.getActiveTier(ctx, creator, sub.TierID)
		if err != nil {
			return nil, err
		}

		v, err := priceOrValue(tier, value)
		if err != nil {
			return nil, err
		}

		return s.c.RenewSubscription(ctx, ss, creator, v)
	})
}

func (s srv) Tip(ctx context.Context, ss contract.Session, creator string, value *big.Int) (*contract.Tx, error) {
	creator, err := s.parseCounterparty(ss, creator)
	if err != nil {
		return nil, err
	}

	if err := validatePositive("value", value); err != nil {
		return nil, err
	}

	return s.submit(ctx, key("tip", ss, creator), func() (*contract.Tx, error) {
		return s.c.TipCreator(ctx, ss, creator, value)
	})
}

func (s srv) CreatePost(ctx context.Context, ss contract.Session, p contract.CreatePostParams) (*contract.Tx, error) {
	if err := validateCreatePost(p); err != nil {
		return nil, err
	}

	if p.AccessLevel != entities.AccessLevelTierGated {
		p.RequiredTierID = 0
	}

	return s.submit(ctx, key("post", ss), func() (*contract.Tx, error) {
		if p.AccessLevel == entities.AccessLevelTierGated {
			tiers, err := s.c.GetCreatorTiers(ctx, ss.Address())
			if err != nil {
				return nil, fmt.Errorf("failed to get tiers: %w", err)
			}

			if p.RequiredTierID >= uint64(len(tiers)) {
				return nil, validation.Errorf("requiredTierId", "tier %d does not exist", p.RequiredTierID)
			}
		}

		return s.c.CreatePost(ctx, ss, p)
	})
}

func (s srv) UpdatePost(ctx context.Context, ss contract.Session, id uint64, caption, previewRef string) (*contract.Tx, error) {
	if err := validateText("caption", caption, 0, maxCaptionLength); err != nil {
		return nil, err
	}

	return s.submit(ctx, key("post", ss, id), func() (*contract.Tx, error) {
		if err := s.checkPostOwner(ctx, ss, id); err != nil {
			return nil, err
		}

		return s.c.UpdatePost(ctx, ss, id, caption, previewRef)
	})
}

func (s srv) DeletePost(ctx context.Context, ss contract.Session, id uint64) (*contract.Tx, error) {
	return s.submit(ctx, key("post", ss, id), func() (*contract.Tx, error) {
		if err := s.checkPostOwner(ctx, ss, id); err != nil {
			return nil, err
		}

		return s.c.DeletePost(ctx, ss, id)
	})
}

func (s srv) ToggleLike(ctx context.Context, ss contract.Session, postID uint64) (action.LikeState, error) {
	read := func(ctx context.Context) (action.LikeState, error) {
		var state action.LikeState

		p, err := s.c.GetPost(ctx, postID)
		if err != nil {
			return state, fmt.Errorf("failed to get post: %w", err)
		}

		liked, err := s.c.HasLiked(ctx, postID, ss.Address())
		if err != nil {
			return state, fmt.Errorf("failed to get like: %w", err)
		}

		state.Liked, state.Count = liked, p.LikesCount
		return state, nil
	}

	k := key("like", ss, postID)
	if s.guard.Pending(k) {
		return action.LikeState{}, action.ErrPending
	}

	initial, err := read(ctx)
	if err != nil {
		return initial, err
	}

	write := func(ctx context.Context, like bool) error {
		var (
			tx  *contract.Tx
			err error
		)

		if like {
			tx, err = s.c.LikePost(ctx, ss, postID)
		} else {
			tx, err = s.c.UnlikePost(ctx, ss, postID)
		}
		if err != nil {
			return err
		}

		_, err = s.c.Wait(ctx, tx)
		return err
	}

	return action.NewLike(k, initial, s.guard).Toggle(ctx, write, read)
}

func (s srv) AddComment(ctx context.Context, ss contract.Session, postID uint64, content string) (*contract.Tx, error) {
	if err := validateText("content", content, 1, maxCommentLength); err != nil {
		return nil, err
	}

	return s.submit(ctx, key("comment", ss, postID), func() (*contract.Tx, error) {
		return s.c.AddComment(ctx, ss, postID, content)
	})
}

func (s srv) DeleteComment(ctx context.Context, ss contract.Session, commentID uint64) (*contract.Tx, error) {
	return s.submit(ctx, key("uncomment", ss, commentID), func() (*contract.Tx, error) {
		return s.c.DeleteComment(ctx, ss, commentID)
	})
}

// submit sends transaction unless the same action is pending and waits until it is mined.
func (s srv) submit(ctx context.Context, key string, send func() (*contract.Tx, error)) (*contract.Tx, error) {
	var tx *contract.Tx

	err := s.guard.Do(key, func() error {
		sent, err := send()
		if err != nil {
			return err
		}

		log.WithField("tx", sent.Hash).WithField("action", key).Debug("waiting for transaction")

		tx, err = s.c.Wait(ctx, sent)
		return err
	})

	return tx, err
}

func (s srv) parseCounterparty(ss contract.Session, creator string) (string, error) {
	creator, err := parseAddress("creator", creator)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(creator, ss.Address()) {
		return "", validation.Errorf("creator", "can not be yourself")
	}

	return creator, nil
}

func (s srv) getActiveTier(ctx context.Context, creator string, tierID uint64) (*entities.Tier, error) {
	tiers, err := s.c.GetCreatorTiers(ctx, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to get tiers: %w", err)
	}

	if tierID >= uint64(len(tiers)) {
		return nil, validation.Errorf("tierId", "tier %d does not exist", tierID)
	}

	if !tiers[tierID].IsActive {
		return nil, validation.Errorf("tierId", "tier %d is not active", tierID)
	}

	return tiers[tierID], nil
}

func (s srv) checkPostOwner(ctx context.Context, ss contract.Session, id uint64) error {
	p, err := s.c.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	if !strings.EqualFold(p.Creator, ss.Address()) {
		return validation.Errorf("id", "post %d belongs to another creator", id)
	}

	return nil
}

func priceOrValue(t *entities.Tier, value *big.Int) (*big.Int, error) {
	if value == nil {
		return new(big.Int).Set(t.Price), nil
	}

	if value.Cmp(t.Price) < 0 {
		return nil, validation.Errorf("value", "%s is less than tier price %s", value, t.Price)
	}

	return value, nil
}

func key(name string, ss contract.Session, target ...interface{}) string {
	parts := []string{name, strings.ToLower(ss.Address())}
	for _, v := range target {
		parts = append(parts, strings.ToLower(fmt.Sprint(v)))
	}

	return strings.Join(parts, ":")
}
