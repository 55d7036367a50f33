package impl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/validation"
)

func TestSrv_Upload(t *testing.T) {
	ctx := context.Background()
	f := media.File{Name: "a.png", Type: "image/png", Size: 1, Content: strings.NewReader("a")}
	res := &media.Result{CID: "bafk", URL: gateway + "/bafk", Size: 1, Name: "a.png", MIME: "image/png"}

	t.Run("recorded", func(t *testing.T) {
		s, m := newTestService(t)

		m.m.EXPECT().Upload(gomock.Any(), f, media.AvatarPolicy).Return(res, nil)
		m.s.EXPECT().CreateUpload(gomock.Any(), &entities.Upload{
			CID:       "bafk",
			Name:      "a.png",
			Size:      1,
			MIME:      "image/png",
			Uploader:  viewer,
			CreatedAt: now.UTC(),
		}).Return(errTest)

		r, err := s.Upload(ctx, viewer, f, media.AvatarPolicy)
		require.NoError(t, err)
		assert.Equal(t, res, r)
	})

	t.Run("anonymous", func(t *testing.T) {
		s, m := newTestService(t)

		m.m.EXPECT().Upload(gomock.Any(), f, media.DefaultPolicy).Return(res, nil)

		_, err := s.Upload(ctx, "", f, media.DefaultPolicy)
		require.NoError(t, err)
	})

	t.Run("rejected", func(t *testing.T) {
		s, m := newTestService(t)

		m.m.EXPECT().Upload(gomock.Any(), f, media.AvatarPolicy).Return(nil, validation.Errorf("file", "too big"))

		_, err := s.Upload(ctx, viewer, f, media.AvatarPolicy)
		require.True(t, validation.IsError(err))
	})
}

func TestSrv_ListUploads(t *testing.T) {
	s, m := newTestService(t)

	_, err := s.ListUploads(context.Background(), viewer, 0)
	require.True(t, validation.IsError(err))

	m.s.EXPECT().ListUploads(gomock.Any(), viewer, uint16(10)).Return([]*entities.Upload{{CID: "bafk"}}, nil)

	u, err := s.ListUploads(context.Background(), viewer, 10)
	require.NoError(t, err)
	require.Len(t, u, 1)
}

func TestSrv_SignedUploadURL(t *testing.T) {
	s, m := newTestService(t)

	m.m.EXPECT().SignedURL(gomock.Any(), media.DefaultSignedURLTTL).Return("", &media.UploadError{Status: 500, Err: errTest})

	_, err := s.SignedUploadURL(context.Background())

	var ue *media.UploadError
	require.True(t, errors.As(err, &ue))
}
