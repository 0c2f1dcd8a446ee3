package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.IncrementSubmissions(OutcomeCreated)
	m.IncrementSubmissions(OutcomeCreated)
	m.IncrementSubmissions(OutcomeInvalid)
	m.IncrementListings()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeCollision)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Listings))
}

// TestIndependentRegistries expects that two instances can coexist, as they do in tests that
// build several routers.
func TestIndependentRegistries(t *testing.T) {
	first := New()
	second := New()
	first.IncrementListings()
	assert.Equal(t, 0.0, testutil.ToFloat64(second.Listings))
}

func TestHandler(t *testing.T) {
	m := New()
	m.IncrementSubmissions(OutcomeFailed)

	server := httptest.NewServer(m.Handler())
	defer server.Close()
	res, err := http.Get(server.URL)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `inquiry_submissions_total{outcome="failed"} 1`)
	assert.Contains(t, string(body), "inquiry_listings_total 0")
}
