package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDatasets(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/seasons":
			io.WriteString(w, "part\ttitle_en\n1\tEast Blue\n")
		case "/episodes":
			io.WriteString(w, "arc_title\tarc_part\ttitle_en\tdescription_en\nEast Blue\t1\tRomance Dawn\tdesc\n")
		case "/releases":
			io.WriteString(w, "One Pace Episode\tRelease Date\nEpisode 01\t2021-03-06\n")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := NewClient(Sources{
		Seasons:  server.URL + "/seasons",
		Episodes: server.URL + "/episodes",
		Releases: server.URL + "/releases",
	}, WithHTTPClient(server.Client()))

	ctx := context.Background()
	ds, err := c.Datasets(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.Seasons, 1)
	assert.Len(t, ds.Episodes, 1)
	assert.Len(t, ds.Releases, 1)
	assert.Equal(t, int64(3), hits.Load())

	// a second call is served from the session cache
	_, err = c.Datasets(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), hits.Load())
}

func TestClientDatasetsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/releases" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, "a\tb\n1\t2\n")
	}))
	defer server.Close()

	c := NewClient(Sources{
		Seasons:  server.URL + "/seasons",
		Episodes: server.URL + "/episodes",
		Releases: server.URL + "/releases",
	}, WithHTTPClient(server.Client()))

	_, err := c.Datasets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "releases")
}
