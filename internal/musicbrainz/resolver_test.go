package musicbrainz_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/musicbrainz"
)

const artistMBID = "b10bbbfc-cf9e-42e0-be17-e2c3e1d2600d"

func newTestClient(t *testing.T, handler http.Handler) *musicbrainz.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := musicbrainz.NewClient(srv.URL, "DramaSeed/test", time.Millisecond, 16, nil)
	t.Cleanup(c.Close)
	return c
}

func artistHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/2/artist/"+artistMBID, r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))
		assert.Equal(t, "DramaSeed/test", r.Header.Get("User-Agent"))
		fmt.Fprintf(w, `{
			"id": %q,
			"name": "Hans Müller",
			"sort-name": "Müller, Hans",
			"type": "Person",
			"disambiguation": "German narrator"
		}`, artistMBID)
	})
}

func TestResolveEntityFromURL(t *testing.T) {
	client := newTestClient(t, artistHandler(t))
	resolver := musicbrainz.NewResolver(client)

	res, err := resolver.ResolveEntity(context.Background(),
		"https://musicbrainz.org/artist/"+artistMBID, []string{"artist"})
	require.NoError(t, err)

	assert.Equal(t, "artist", res.Type)
	assert.Equal(t, artistMBID, res.MBID)
	assert.Equal(t, "Hans Müller", res.Name)
	assert.Equal(t, "Person: Müller, Hans (German narrator)", res.Tooltip)
}

func TestResolveEntityBareMBIDUsesAllowedType(t *testing.T) {
	client := newTestClient(t, artistHandler(t))
	resolver := musicbrainz.NewResolver(client)

	res, err := resolver.ResolveEntity(context.Background(), artistMBID, []string{"artist"})
	require.NoError(t, err)
	assert.Equal(t, "artist", res.Type)
}

func TestResolveEntityDisallowedType(t *testing.T) {
	client := newTestClient(t, artistHandler(t))
	resolver := musicbrainz.NewResolver(client)

	_, err := resolver.ResolveEntity(context.Background(),
		"https://musicbrainz.org/artist/"+artistMBID, []string{"label"})
	assert.True(t, errors.Is(err, errors.ErrDisallowedType))
}

func TestResolveEntityGarbageInput(t *testing.T) {
	client := newTestClient(t, artistHandler(t))
	resolver := musicbrainz.NewResolver(client)

	_, err := resolver.ResolveEntity(context.Background(), "Hans Müller", []string{"artist"})
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestResolveEntityUpstreamFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Not Found"}`, http.StatusNotFound)
	}))
	resolver := musicbrainz.NewResolver(client)

	_, err := resolver.ResolveEntity(context.Background(),
		"https://musicbrainz.org/artist/"+artistMBID, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUpstream))
	assert.Contains(t, err.Error(), "404")
}

func TestResolveEntityTitleFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id": %q, "title": "Der Phantomsee"}`, artistMBID)
	}))
	resolver := musicbrainz.NewResolver(client)

	res, err := resolver.ResolveEntity(context.Background(),
		"https://musicbrainz.org/release-group/"+artistMBID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Der Phantomsee", res.Name)
	assert.Equal(t, "Release Group: Der Phantomsee", res.Tooltip)
}
