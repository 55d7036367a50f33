package media

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/validation"
)

func TestResolveURL(t *testing.T) {
	const gateway = "https://gateway.pinata.cloud/ipfs"

	tt := []struct {
		ref      string
		expected string
	}{
		{ref: "bafkexample", expected: gateway + "/bafkexample"},
		{ref: "ipfs://bafkexample", expected: gateway + "/bafkexample"},
		{ref: "https://example.com/a.png", expected: "https://example.com/a.png"},
		{ref: "HTTP://example.com/a.png", expected: "HTTP://example.com/a.png"},
		{ref: "", expected: ""},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.expected, ResolveURL(gateway, tc.ref), tc.ref)
	}

	assert.Equal(t, gateway+"/bafkexample", ResolveURL(gateway+"/", "bafkexample"))
}

func TestMatchType(t *testing.T) {
	assert.True(t, MatchType("image/*", "image/png"))
	assert.True(t, MatchType("IMAGE/*", "image/png"))
	assert.True(t, MatchType("*/*", "video/mp4"))
	assert.True(t, MatchType("video/mp4", "video/mp4"))
	assert.False(t, MatchType("image/*", "video/mp4"))
	assert.False(t, MatchType("image/png", "image/jpeg"))
	assert.False(t, MatchType("image/*", "imagex/png"))
}

func TestPolicy_Prepare(t *testing.T) {
	tt := []struct {
		name   string
		policy Policy
		file   File
		valid  bool
	}{
		{
			name:   "ok",
			policy: AvatarPolicy,
			file:   File{Name: "a.png", Type: "image/png", Size: MB, Content: strings.NewReader("x")},
			valid:  true,
		},
		{
			name:   "too_big",
			policy: AvatarPolicy,
			file:   File{Name: "a.png", Type: "image/png", Size: 10*MB + 1, Content: strings.NewReader("x")},
		},
		{
			name:   "exactly_max",
			policy: BannerPolicy,
			file:   File{Name: "a.png", Type: "image/png", Size: 20 * MB, Content: strings.NewReader("x")},
			valid:  true,
		},
		{
			name:   "wrong_type",
			policy: AvatarPolicy,
			file:   File{Name: "a.mp4", Type: "video/mp4", Size: 1, Content: strings.NewReader("x")},
		},
		{
			name:   "type_with_params",
			policy: ContentPolicy,
			file:   File{Name: "a.txt", Type: "text/plain; charset=utf-8", Size: 1, Content: strings.NewReader("x")},
			valid:  true,
		},
		{
			name:   "default_policy_any_type",
			policy: Policy{},
			file:   File{Name: "a.bin", Type: "application/octet-stream", Size: 100 * MB, Content: strings.NewReader("x")},
			valid:  true,
		},
		{
			name:   "default_policy_too_big",
			policy: Policy{},
			file:   File{Name: "a.bin", Type: "application/octet-stream", Size: 100*MB + 1, Content: strings.NewReader("x")},
		},
		{
			name:   "missing_content",
			policy: DefaultPolicy,
			file:   File{Name: "a.bin"},
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.policy.Prepare(tc.file)
			if tc.valid {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, validation.IsError(err))
		})
	}
}

func TestPolicy_Prepare_Sniff(t *testing.T) {
	png := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 32)

	f, err := AvatarPolicy.Prepare(File{Name: "a", Size: int64(len(png)), Content: strings.NewReader(png)})
	require.NoError(t, err)
	require.Equal(t, "image/png", f.Type)

	b, err := ioutil.ReadAll(f.Content)
	require.NoError(t, err)
	require.Equal(t, png, string(b))

	_, err = AvatarPolicy.Prepare(File{Name: "a", Size: 5, Content: strings.NewReader("hello")})
	require.True(t, validation.IsError(err))
}

func TestPolicy_Prepare_LimitsContent(t *testing.T) {
	p := Policy{MaxSize: 4}

	f, err := p.Prepare(File{Name: "a.txt", Type: "text/plain", Size: 4, Content: strings.NewReader("abcd")})
	require.NoError(t, err)

	b, err := ioutil.ReadAll(f.Content)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(b))

	f, err = p.Prepare(File{Name: "a.txt", Type: "text/plain", Size: 1, Content: strings.NewReader("abcdefg")})
	require.NoError(t, err)

	b, err = ioutil.ReadAll(f.Content)
	require.Error(t, err)
	assert.True(t, validation.IsError(err))
	assert.Equal(t, "abcd", string(b))

	f, err = p.Prepare(File{Name: "a", Size: 1, Content: strings.NewReader("hello world")})
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", f.Type)

	_, err = ioutil.ReadAll(f.Content)
	assert.True(t, validation.IsError(err))
}

func TestPolicyByKind(t *testing.T) {
	p, err := PolicyByKind("avatar")
	require.NoError(t, err)
	require.Equal(t, AvatarPolicy, p)

	p, err = PolicyByKind("")
	require.NoError(t, err)
	require.Equal(t, ContentPolicy, p)

	_, err = PolicyByKind("unknown")
	require.True(t, validation.IsError(err))
}
