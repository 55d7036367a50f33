package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/service"
)

func addCommands(p *flags.Parser) {
	for _, v := range []struct {
		name, short string
		cmd         interface{}
	}{
		{"register", "registers account as a creator", &registerCommand{}},
		{"update-profile", "updates creator profile", &updateProfileCommand{}},
		{"create-tier", "creates subscription tier", &createTierCommand{}},
		{"subscribe", "subscribes to creator's tier", &subscribeCommand{}},
		{"renew", "renews subscription to creator", &renewCommand{}},
		{"tip", "sends tip to creator", &tipCommand{}},
		{"create-post", "creates post", &createPostCommand{}},
		{"update-post", "updates caption and preview of post", &updatePostCommand{}},
		{"delete-post", "deletes post", &deletePostCommand{}},
		{"like", "likes or unlikes post", &likeCommand{}},
		{"comment", "comments post", &commentCommand{}},
		{"delete-comment", "deletes comment", &deleteCommentCommand{}},
		{"upload", "pins file and prints its content identifier", &uploadCommand{}},
		{"creator", "prints creator page", &creatorCommand{}},
		{"post", "prints post as seen by account", &postCommand{}},
	} {
		if _, err := p.AddCommand(v.name, v.short, v.short, v.cmd); err != nil {
			logrus.WithError(err).Fatalf("failed to add %s command", v.name)
		}
	}
}

type profileFields struct {
	DisplayName  string `long:"display-name" description:"display name"`
	Bio          string `long:"bio" description:"bio"`
	ProfileImage string `long:"profile-image" description:"content identifier or url of profile image"`
	BannerImage  string `long:"banner-image" description:"content identifier or url of banner image"`
}

type registerCommand struct {
	Username string `long:"username" required:"true" description:"unique lowercase username"`
	profileFields
}

func (c *registerCommand) Execute([]string) error {
	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.RegisterCreator(ctx, s, contract.RegisterCreatorParams{
			Username:     c.Username,
			DisplayName:  c.DisplayName,
			Bio:          c.Bio,
			ProfileImage: c.ProfileImage,
			BannerImage:  c.BannerImage,
		})
	})
}

type updateProfileCommand struct {
	profileFields
}

func (c *updateProfileCommand) Execute([]string) error {
	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.UpdateProfile(ctx, s, contract.UpdateProfileParams{
			DisplayName:  c.DisplayName,
			Bio:          c.Bio,
			ProfileImage: c.ProfileImage,
			BannerImage:  c.BannerImage,
		})
	})
}

type createTierCommand struct {
	Name        string `long:"name" required:"true" description:"tier name"`
	Description string `long:"description" description:"tier description"`
	Price       string `long:"price" required:"true" description:"monthly price in ETH, e.g. 0.01"`
}

func (c *createTierCommand) Execute([]string) error {
	price, err := parseETH(c.Price)
	if err != nil {
		return err
	}

	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.CreateTier(ctx, s, contract.CreateTierParams{
			Name:        c.Name,
			Description: c.Description,
			Price:       price,
		})
	})
}

type subscribeCommand struct {
	Creator string `long:"creator" required:"true" description:"creator address"`
	Tier    uint64 `long:"tier" description:"tier index"`
	Value   string `long:"value" description:"amount in ETH, defaults to the tier price"`
}

func (c *subscribeCommand) Execute([]string) error {
	value, err := parseETH(c.Value)
	if err != nil {
		return err
	}

	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.Subscribe(ctx, s, c.Creator, c.Tier, value)
	})
}

type renewCommand struct {
	Creator string `long:"creator" required:"true" description:"creator address"`
	Value   string `long:"value" description:"amount in ETH, defaults to the price of subscribed tier"`
}

func (c *renewCommand) Execute([]string) error {
	value, err := parseETH(c.Value)
	if err != nil {
		return err
	}

	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.Renew(ctx, s, c.Creator, value)
	})
}

type tipCommand struct {
	Creator string `long:"creator" required:"true" description:"creator address"`
	Value   string `long:"value" required:"true" description:"amount in ETH"`
}

func (c *tipCommand) Execute([]string) error {
	value, err := parseETH(c.Value)
	if err != nil {
		return err
	}

	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.Tip(ctx, s, c.Creator, value)
	})
}

type createPostCommand struct {
	Content      string `long:"content" description:"content identifier, required unless type is text"`
	Preview      string `long:"preview" description:"content identifier of preview"`
	Caption      string `long:"caption" description:"caption"`
	Type         string `long:"type" default:"text" choice:"text" choice:"image" choice:"video" choice:"audio" choice:"mixed" description:"content type"`
	Access       string `long:"access" default:"public" choice:"public" choice:"subscribers" choice:"tier_gated" description:"access level"`
	RequiredTier uint64 `long:"required-tier" description:"tier index required for tier_gated access"`
}

func (c *createPostCommand) Execute([]string) error {
	t, err := entities.ParseContentType(c.Type)
	if err != nil {
		return err
	}

	l, err := entities.ParseAccessLevel(c.Access)
	if err != nil {
		return err
	}

	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.CreatePost(ctx, s, contract.CreatePostParams{
			ContentRef:     c.Content,
			PreviewRef:     c.Preview,
			Caption:        c.Caption,
			ContentType:    t,
			AccessLevel:    l,
			RequiredTierID: c.RequiredTier,
		})
	})
}

type updatePostCommand struct {
	ID      uint64 `long:"id" required:"true" description:"post id"`
	Caption string `long:"caption" description:"caption"`
	Preview string `long:"preview" description:"content identifier of preview"`
}

func (c *updatePostCommand) Execute([]string) error {
	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.UpdatePost(ctx, s, c.ID, c.Caption, c.Preview)
	})
}

type deletePostCommand struct {
	ID uint64 `long:"id" required:"true" description:"post id"`
}

func (c *deletePostCommand) Execute([]string) error {
	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.DeletePost(ctx, s, c.ID)
	})
}

type likeCommand struct {
	ID uint64 `long:"id" required:"true" description:"post id"`
}

func (c *likeCommand) Execute([]string) error {
	return run(true, func(ctx context.Context, e env) error {
		state, err := e.svc.ToggleLike(ctx, e.wallet, c.ID)
		if err != nil {
			return err
		}

		fmt.Printf("liked: %t, likes: %d\n", state.Liked, state.Count)
		return nil
	})
}

type commentCommand struct {
	ID      uint64 `long:"id" required:"true" description:"post id"`
	Content string `long:"content" required:"true" description:"comment text"`
}

func (c *commentCommand) Execute([]string) error {
	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.AddComment(ctx, s, c.ID, c.Content)
	})
}

type deleteCommentCommand struct {
	ID uint64 `long:"id" required:"true" description:"comment id"`
}

func (c *deleteCommentCommand) Execute([]string) error {
	return transact(func(ctx context.Context, svc service.Service, s contract.Session) (*contract.Tx, error) {
		return svc.DeleteComment(ctx, s, c.ID)
	})
}

type uploadCommand struct {
	Kind string `long:"kind" default:"content" choice:"avatar" choice:"banner" choice:"content" choice:"any" description:"upload policy"`
	Type string `long:"type" description:"MIME type, detected from content when empty"`
	Args struct {
		File string `positional-arg-name:"file" required:"true"`
	} `positional-args:"true"`
}

func (c *uploadCommand) Execute([]string) error {
	p, err := media.PolicyByKind(c.Kind)
	if err != nil {
		return err
	}

	f, err := os.Open(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	return run(false, func(ctx context.Context, e env) error {
		res, err := e.svc.Upload(ctx, e.uploader, media.File{
			Name:    filepath.Base(c.Args.File),
			Type:    c.Type,
			Size:    info.Size(),
			Content: f,
		}, p)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", res.CID, res.URL)
		return nil
	})
}

type creatorCommand struct {
	Args struct {
		Address string `positional-arg-name:"address" required:"true"`
	} `positional-args:"true"`
}

func (c *creatorCommand) Execute([]string) error {
	return run(false, func(ctx context.Context, e env) error {
		var viewer string
		if e.wallet != nil {
			viewer = e.wallet.Address()
		}

		page, err := e.svc.GetCreatorPage(ctx, c.Args.Address, viewer)
		if err != nil {
			return err
		}

		logrus.Debug(spew.Sdump(page))

		cr := page.Creator
		fmt.Printf("%s (@%s) %s\n", cr.DisplayName, cr.Username, cr.Address)
		fmt.Printf("subscribers: %d, earnings: %s ETH, tips: %s ETH\n",
			cr.TotalSubscribers, formatETH(cr.TotalEarnings), formatETH(cr.TipEarnings))

		if page.TiersUnavailable {
			fmt.Println("tiers are unavailable")
		}

		for _, t := range page.Tiers {
			if t.IsActive {
				fmt.Printf("tier %d: %s, %s ETH\n", t.ID, t.Name, formatETH(t.Price))
			}
		}

		if v := page.Subscription; v != nil {
			fmt.Printf("subscription: tier %d, %s, %d days remaining, ends %s\n",
				v.Subscription.TierID, v.State.Status, v.State.DaysRemaining,
				v.Subscription.EndTime.Format(time.RFC3339))
		}

		return nil
	})
}

type postCommand struct {
	Args struct {
		ID uint64 `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *postCommand) Execute([]string) error {
	return run(false, func(ctx context.Context, e env) error {
		var viewer string
		if e.wallet != nil {
			viewer = e.wallet.Address()
		}

		v, err := e.svc.GetPost(ctx, c.Args.ID, viewer)
		if err != nil {
			return err
		}

		logrus.Debug(spew.Sdump(v))

		fmt.Printf("post %d by %s (%s, %s)\n", v.Post.ID, v.Post.Creator, v.Post.ContentType, v.Post.AccessLevel)
		fmt.Printf("%s\n", v.Post.Caption)
		fmt.Printf("likes: %d, comments: %d, liked: %t\n", v.Post.LikesCount, v.Post.CommentsCount, v.Liked)

		if v.Accessible {
			fmt.Printf("media: %s\n", v.MediaURL)
		} else {
			fmt.Println("media: locked")
		}

		return nil
	})
}
