package impl

import (
	"context"
	"fmt"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/validation"
)

const maxUploadsLimit = 100

func (s srv) Upload(ctx context.Context, uploader string, f media.File, p media.Policy) (*media.Result, error) {
	uploader, err := parseOptionalAddress("uploader", uploader)
	if err != nil {
		return nil, err
	}

	res, err := s.m.Upload(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("failed to upload: %w", err)
	}

	if uploader == "" {
		return res, nil
	}

	// file is pinned already, so failed record is not an upload failure
	if err := s.s.CreateUpload(ctx, &entities.Upload{
		CID:       res.CID,
		Name:      res.Name,
		Size:      res.Size,
		MIME:      res.MIME,
		Uploader:  uploader,
		CreatedAt: s.nowFunc().UTC(),
	}); err != nil {
		log.WithError(err).WithField("cid", res.CID).Error("failed to record upload")
	}

	return res, nil
}

func (s srv) ListUploads(ctx context.Context, uploader string, limit uint16) ([]*entities.Upload, error) {
	uploader, err := parseAddress("uploader", uploader)
	if err != nil {
		return nil, err
	}

	if limit == 0 || limit > maxUploadsLimit {
		return nil, validation.Errorf("limit", "should be between 1 and %d", maxUploadsLimit)
	}

	u, err := s.s.ListUploads(ctx, uploader, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}

	return u, nil
}

func (s srv) SignedUploadURL(ctx context.Context) (string, error) {
	url, err := s.m.SignedURL(ctx, media.DefaultSignedURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to get signed url: %w", err)
	}

	return url, nil
}
