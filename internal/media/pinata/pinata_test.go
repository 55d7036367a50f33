package pinata

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/validation"
)

const gateway = "https://gateway.example/ipfs"

func newTestClient(url string) client {
	c := New(Config{
		JWT:       "secret",
		UploadURL: url + "/",
		Gateway:   gateway,
		Timeout:   time.Second,
	}).(client)
	c.nowFunc = func() time.Time { return time.Unix(1000, 0) }

	return c
}

func TestClient_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/files", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1024))
		assert.Equal(t, "public", r.FormValue("network"))

		f, h, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, "avatar.png", h.Filename)
		assert.Equal(t, "image/png", h.Header.Get("Content-Type"))

		b, err := ioutil.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "content", string(b))

		_, _ = w.Write([]byte(`{"data":{"id":"1","name":"avatar.png","cid":"bafkexample","size":7,"mime_type":"image/png"}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Upload(context.Background(), media.File{
		Name:    "avatar.png",
		Type:    "image/png",
		Size:    7,
		Content: strings.NewReader("content"),
	}, media.AvatarPolicy)
	require.NoError(t, err)

	assert.Equal(t, &media.Result{
		CID:  "bafkexample",
		URL:  gateway + "/bafkexample",
		Size: 7,
		Name: "avatar.png",
		MIME: "image/png",
	}, res)
}

func TestClient_Upload_ValidationSkipsRequest(t *testing.T) {
	var requests int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Upload(context.Background(), media.File{
		Name:    "avatar.png",
		Type:    "image/png",
		Size:    10*media.MB + 1,
		Content: strings.NewReader("content"),
	}, media.AvatarPolicy)
	require.True(t, validation.IsError(err))

	_, err = c.Upload(context.Background(), media.File{
		Name:    "clip.mp4",
		Type:    "video/mp4",
		Size:    1,
		Content: strings.NewReader("content"),
	}, media.BannerPolicy)
	require.True(t, validation.IsError(err))

	require.EqualValues(t, 0, atomic.LoadInt32(&requests))
}

func TestClient_Upload_ContentExceedsDeclaredSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := ioutil.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"cid":"bafkexample"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Upload(context.Background(), media.File{
		Name:    "a.txt",
		Type:    "text/plain",
		Size:    1,
		Content: strings.NewReader("content"),
	}, media.Policy{MaxSize: 4})
	require.Error(t, err)
	require.True(t, validation.IsError(err))
}

func TestClient_Upload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid key"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Upload(context.Background(), media.File{
		Name:    "a.txt",
		Type:    "text/plain",
		Size:    1,
		Content: strings.NewReader("a"),
	}, media.DefaultPolicy)

	var ue *media.UploadError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, http.StatusUnauthorized, ue.Status)
	require.Contains(t, ue.Error(), "invalid key")
}

func TestClient_Upload_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Upload(context.Background(), media.File{
		Name:    "a.txt",
		Type:    "text/plain",
		Size:    1,
		Content: strings.NewReader("a"),
	}, media.DefaultPolicy)

	var ue *media.UploadError
	require.True(t, errors.As(err, &ue))
	require.Zero(t, ue.Status)
}

func TestClient_SignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/sign", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req signRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 1000, req.Date)
		assert.EqualValues(t, 30, req.Expires)

		_, _ = w.Write([]byte(`{"data":"https://uploads.example/signed"}`))
	}))
	defer srv.Close()

	url, err := newTestClient(srv.URL).SignedURL(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, "https://uploads.example/signed", url)
}

func TestClient_SignedURL_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SignedURL(context.Background(), time.Minute)

	var ue *media.UploadError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, http.StatusInternalServerError, ue.Status)
}

func TestClient_URL(t *testing.T) {
	c := newTestClient("http://localhost")

	require.Equal(t, gateway+"/bafkexample", c.URL("bafkexample"))
	require.Equal(t, "https://cdn.example/a.png", c.URL("https://cdn.example/a.png"))
}
