package dict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsIsCaseInsensitive(t *testing.T) {
	d := New([]string{"cat", "Jesting", " tea "})
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("cat"))
	assert.True(t, d.Contains("JESTING"))
	assert.True(t, d.Contains("TEA"))
	assert.False(t, d.Contains("DOG"))
	assert.Equal(t, 3, d.Len())
}

func TestFallbackIsPlayable(t *testing.T) {
	d := Fallback()
	assert.Greater(t, d.Len(), 100)
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("JESTING"))
}

func TestLoadFromSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alpha\nbeta\ngamma\n"))
	}))
	defer server.Close()

	d := Load(context.Background(), []string{server.URL})
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("ALPHA"))
	assert.True(t, d.Contains("GAMMA"))
}

func TestLoadMergesSources(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alpha\n"))
	}))
	defer first.Close()
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("beta\n"))
	}))
	defer second.Close()

	d := Load(context.Background(), []string{first.URL, second.URL})
	assert.True(t, d.Contains("ALPHA"))
	assert.True(t, d.Contains("BETA"))
}

func TestLoadFallsBackWhenAllSourcesFail(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	d := Load(context.Background(), []string{broken.URL, "http://127.0.0.1:1/nope"})
	require.Greater(t, d.Len(), 0)
	assert.True(t, d.Contains("CAT"))
}
