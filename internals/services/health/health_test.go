package health

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/apiclient"
)

type scriptedAPI struct {
	mu      sync.Mutex
	results []apiclient.Result
	calls   int
}

func (s *scriptedAPI) Fetch(context.Context, string, url.Values) apiclient.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r
}

func ok() apiclient.Result {
	r, _ := apiclient.Normalize(200, []byte(`{"collections":[]}`))
	return r
}

func backend(status int) apiclient.Result {
	r := apiclient.Failure(&apiclient.AppError{Kind: apiclient.KindBackend, Status: status, Message: "status"})
	r.Status = status
	return r
}

func transport() apiclient.Result {
	return apiclient.Failure(&apiclient.AppError{Kind: apiclient.KindTransport, Message: "connection refused", Cause: errors.New("dial")})
}

func TestProbe(t *testing.T) {
	api := &scriptedAPI{results: []apiclient.Result{ok(), backend(401), backend(503), transport()}}
	m := NewMonitor(api, "")

	assert.False(t, m.Last().Checked)

	st := m.Probe(context.Background())
	assert.True(t, st.Up)
	assert.Equal(t, 200, st.HTTP)

	st = m.Probe(context.Background())
	assert.True(t, st.Up, "an anonymous 401 still means the backend answers")

	st = m.Probe(context.Background())
	assert.False(t, st.Up)
	assert.Equal(t, 503, st.HTTP)

	st = m.Probe(context.Background())
	assert.False(t, st.Up)
	assert.Equal(t, "connection refused", st.Message)

	last := m.Last()
	assert.True(t, last.Checked)
	assert.False(t, last.Up)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	m := NewMonitor(&scriptedAPI{results: []apiclient.Result{ok()}}, "")
	require.Error(t, m.Start("not a schedule"))
	m.Stop()
}
