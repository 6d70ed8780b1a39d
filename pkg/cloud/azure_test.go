package cloud

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAzureProber_SendsMetadataHeader(t *testing.T) {
	var gotHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/metadata/instance", func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Metadata")
		w.Write([]byte(`{"compute":{"azEnvironment":"AzurePublicCloud"}}`))
	})

	cfg, _ := newIMDS(t, mux)

	p := &AzureProber{}
	platform, ok := p.Probe(context.Background(), cfg)

	assert.True(t, ok)
	assert.Equal(t, Azure, platform)
	assert.Equal(t, "true", gotHeader)
}

func TestAzureProber_CaseInsensitiveMatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metadata/instance", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AZURE metadata service"))
	})

	cfg, _ := newIMDS(t, mux)

	p := &AzureProber{}
	_, ok := p.Probe(context.Background(), cfg)

	assert.True(t, ok)
}

func TestAzureProber_Non2xx(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metadata/instance", func(w http.ResponseWriter, r *http.Request) {
		// Body mentions azure, but the status disqualifies the response
		// under either policy.
		http.Error(w, "azure says no", http.StatusBadRequest)
	})

	cfg, _ := newIMDS(t, mux)
	for _, policy := range []MatchPolicy{MatchBodySubstring, MatchAnyStatusOK} {
		cfg.AzureMatch = policy

		p := &AzureProber{}
		_, ok := p.Probe(context.Background(), cfg)

		assert.False(t, ok)
	}
}
