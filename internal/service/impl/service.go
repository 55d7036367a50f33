// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/plutus/internal/access"
	"github.com/Decentr-net/plutus/internal/action"
	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/publisher"
	"github.com/Decentr-net/plutus/internal/service"
	"github.com/Decentr-net/plutus/internal/storage"
	"github.com/Decentr-net/plutus/internal/subscription"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

type srv struct {
	c     contract.Gateway
	s     storage.Storage
	m     media.Uploader
	p     publisher.Publisher
	guard *action.Guard

	nowFunc func() time.Time
}

// New creates new instance of service.
func New(c contract.Gateway, s storage.Storage, m media.Uploader, p publisher.Publisher) service.Service {
	if p == nil {
		p = publisher.Noop()
	}

	return srv{
		c:       c,
		s:       s,
		m:       m,
		p:       p,
		guard:   action.NewGuard(),
		nowFunc: time.Now,
	}
}

func (s srv) GetCreatorPage(ctx context.Context, address, viewer string) (*service.CreatorPage, error) {
	address, err := parseAddress("address", address)
	if err != nil {
		return nil, err
	}

	viewer, err = parseOptionalAddress("viewer", viewer)
	if err != nil {
		return nil, err
	}

	var page service.CreatorPage
	l := log.WithField("creator", address)

	gr, gctx := errgroup.WithContext(ctx)

	gr.Go(func() error {
		c, err := s.c.GetCreator(gctx, address)
		if err != nil {
			return fmt.Errorf("failed to get creator: %w", err)
		}

		page.Creator = c
		page.ProfileImageURL = s.m.URL(c.ProfileImage)
		page.BannerImageURL = s.m.URL(c.BannerImage)
		return nil
	})

	gr.Go(func() error {
		tiers, err := s.c.GetCreatorTiers(gctx, address)
		if err != nil {
			l.WithError(err).Warn("failed to get tiers")
			page.TiersUnavailable = true
			return nil
		}

		page.Tiers = tiers
		return nil
	})

	if viewer != "" && viewer != address {
		gr.Go(func() error {
			sub, err := s.getSubscription(gctx, viewer, address)
			if err != nil {
				l.WithError(err).WithField("viewer", viewer).Warn("failed to get subscription")
				return nil
			}

			page.Subscription = sub
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return &page, nil
}

func (s srv) GetCreatorByUsername(ctx context.Context, username string) (*entities.Creator, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	c, err := s.c.GetCreatorByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	return c, nil
}

func (s srv) ListCreators(ctx context.Context, offset, limit uint64) (*service.CreatorList, error) {
	var (
		out       service.CreatorList
		addresses []string
	)

	gr, gctx := errgroup.WithContext(ctx)

	gr.Go(func() (err error) {
		addresses, err = s.c.GetCreators(gctx, offset, limit)
		if err != nil {
			return fmt.Errorf("failed to get creators: %w", err)
		}
		return nil
	})

	gr.Go(func() (err error) {
		out.Total, err = s.c.GetTotalCreators(gctx)
		if err != nil {
			return fmt.Errorf("failed to get total creators: %w", err)
		}
		return nil
	})

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	out.Creators = make([]*entities.Creator, len(addresses))

	gr, gctx = errgroup.WithContext(ctx)
	for i := range addresses {
		i := i
		gr.Go(func() error {
			c, err := s.c.GetCreator(gctx, addresses[i])
			if err != nil {
				return fmt.Errorf("failed to get creator %s: %w", addresses[i], err)
			}

			out.Creators[i] = c
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s srv) GetPost(ctx context.Context, id uint64, viewer string) (*service.PostView, error) {
	viewer, err := parseOptionalAddress("viewer", viewer)
	if err != nil {
		return nil, err
	}

	var (
		p         *entities.Post
		canSee    bool
		accessErr error
		liked     bool
	)

	l := log.WithField("post", id).WithField("viewer", viewer)
	gr, gctx := errgroup.WithContext(ctx)

	gr.Go(func() (err error) {
		p, err = s.c.GetPost(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}
		return nil
	})

	gr.Go(func() (err error) {
		canSee, accessErr = s.c.CanAccessPost(gctx, id, viewer)
		return nil
	})

	if viewer != "" {
		gr.Go(func() (err error) {
			liked, err = s.c.HasLiked(gctx, id, viewer)
			if err != nil {
				l.WithError(err).Warn("failed to check like")
				liked = false
			}
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	if !p.IsActive {
		return nil, fmt.Errorf("failed to get post: %w", contract.ErrNotFound)
	}

	if accessErr != nil {
		l.WithError(accessErr).Warn("failed to check access, evaluating locally")
		canSee = s.canAccessLocally(ctx, p, viewer)
	}

	v := s.newPostView(p, canSee && p.AccessLevel.Valid())
	v.Liked = liked

	return v, nil
}

// canAccessLocally evaluates access to p from viewer's subscription read from contract.
func (s srv) canAccessLocally(ctx context.Context, p *entities.Post, viewer string) bool {
	var sub *entities.Subscription

	if viewer != "" && !access.IsOwner(p, viewer) && p.AccessLevel != entities.AccessLevelPublic {
		v, err := s.c.GetSubscription(ctx, viewer, p.Creator)
		switch {
		case err == nil:
			sub = v
		case errors.Is(err, contract.ErrNotFound):
		default:
			log.WithError(err).WithField("viewer", viewer).Warn("failed to get subscription")
		}
	}

	return access.CanAccess(p, access.NewViewer(viewer, sub, s.nowFunc()))
}

func (s srv) ListCreatorPosts(ctx context.Context, creator, viewer string, offset, limit uint64) ([]*service.PostView, error) {
	creator, err := parseAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	viewer, err = parseOptionalAddress("viewer", viewer)
	if err != nil {
		return nil, err
	}

	var (
		ids []uint64
		sub *entities.Subscription
	)

	gr, gctx := errgroup.WithContext(ctx)

	gr.Go(func() (err error) {
		ids, err = s.c.GetCreatorPosts(gctx, creator, offset, limit)
		if err != nil {
			return fmt.Errorf("failed to get posts: %w", err)
		}
		return nil
	})

	if viewer != "" && viewer != creator {
		gr.Go(func() error {
			v, err := s.c.GetSubscription(gctx, viewer, creator)
			switch {
			case err == nil:
				sub = v
			case errors.Is(err, contract.ErrNotFound):
			default:
				log.WithError(err).WithField("viewer", viewer).Warn("failed to get subscription")
			}
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, len(ids))

	gr, gctx = errgroup.WithContext(ctx)
	for i := range ids {
		i := i
		gr.Go(func() error {
			p, err := s.c.GetPost(gctx, ids[i])
			if err != nil {
				if errors.Is(err, contract.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("failed to get post %d: %w", ids[i], err)
			}

			posts[i] = p
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	v := access.NewViewer(viewer, sub, s.nowFunc())

	out := make([]*service.PostView, 0, len(posts))
	for _, p := range posts {
		if p == nil || !p.IsActive {
			continue
		}

		out = append(out, s.newPostView(p, access.CanAccess(p, v)))
	}

	return out, nil
}

func (s srv) GetComments(ctx context.Context, postID, offset, limit uint64) ([]*entities.Comment, error) {
	c, err := s.c.GetPostComments(ctx, postID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	out := make([]*entities.Comment, 0, len(c))
	for _, v := range c {
		if v.IsActive {
			out = append(out, v)
		}
	}

	return out, nil
}

func (s srv) GetSubscriptionState(ctx context.Context, subscriber, creator string) (*service.SubscriptionView, error) {
	subscriber, err := parseAddress("subscriber", subscriber)
	if err != nil {
		return nil, err
	}

	creator, err = parseAddress("creator", creator)
	if err != nil {
		return nil, err
	}

	v, err := s.getSubscription(ctx, subscriber, creator)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, fmt.Errorf("failed to get subscription: %w", contract.ErrNotFound)
	}

	return v, nil
}

// getSubscription returns nil view when subscription does not exist.
func (s srv) getSubscription(ctx context.Context, subscriber, creator string) (*service.SubscriptionView, error) {
	sub, err := s.c.GetSubscription(ctx, subscriber, creator)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &service.SubscriptionView{
		Subscription: *sub,
		State:        subscription.Evaluate(*sub, s.nowFunc()),
	}, nil
}

func (s srv) newPostView(p *entities.Post, accessible bool) *service.PostView {
	post := *p

	v := service.PostView{
		Post:       &post,
		Accessible: accessible,
		PreviewURL: s.m.URL(p.PreviewRef),
	}

	if accessible {
		v.MediaURL = s.m.URL(p.ContentRef)
	} else {
		post.ContentRef = ""
	}

	return &v
}
