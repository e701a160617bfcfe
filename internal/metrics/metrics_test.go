package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRun(t *testing.T) {
	updated := testutil.ToFloat64(Runs.WithLabelValues(OutcomeUpdated))
	failed := testutil.ToFloat64(Runs.WithLabelValues(OutcomeFailed))
	written := testutil.ToFloat64(FilesWritten)

	ObserveRun(time.Now(), 3, nil)
	ObserveRun(time.Now(), 0, errors.New("boom"))

	assert.Equal(t, updated+1, testutil.ToFloat64(Runs.WithLabelValues(OutcomeUpdated)))
	assert.Equal(t, failed+1, testutil.ToFloat64(Runs.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, written+3, testutil.ToFloat64(FilesWritten))
}

func TestHandler(t *testing.T) {
	Failures.WithLabelValues("fetch").Inc()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pont_failures_total{stage="fetch"}`)
}
