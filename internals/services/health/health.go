// file: internals/services/health/health.go
package health

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/listview"
)

// Status is the last observation of the backend.
type Status struct {
	Up        bool          `json:"up"`
	Checked   bool          `json:"checked"`
	HTTP      int           `json:"http_status"`
	Latency   time.Duration `json:"latency_ns"`
	Message   string        `json:"message,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}

// Monitor probes the API base on a cron schedule and keeps the latest Status.
type Monitor struct {
	api      listview.Fetcher
	endpoint string
	timeout  time.Duration

	mu   sync.RWMutex
	last Status

	cron *cron.Cron
}

func NewMonitor(api listview.Fetcher, endpoint string) *Monitor {
	return &Monitor{api: api, endpoint: endpoint, timeout: 10 * time.Second}
}

// Probe runs one check now. Any answer below 500 counts as up: an anonymous 401 still
// proves the backend is there.
func (m *Monitor) Probe(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	res := m.api.Fetch(ctx, m.endpoint, nil)
	st := Status{Checked: true, HTTP: res.Status, Latency: time.Since(start), CheckedAt: time.Now()}

	switch {
	case res.Success:
		st.Up = true
	case res.Err != nil && res.Err.Kind == apiclient.KindBackend && res.Err.Status < 500:
		st.Up = true
	default:
		st.Message = res.Message()
	}

	m.mu.Lock()
	prev := m.last
	m.last = st
	m.mu.Unlock()

	if prev.Checked && prev.Up != st.Up {
		log.Printf("[HEALTH] backend up=%v (status=%d) %s", st.Up, st.HTTP, st.Message)
	}
	return st
}

func (m *Monitor) Last() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

// Start schedules the probe and runs the first one immediately in the background.
func (m *Monitor) Start(schedule string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() { m.Probe(context.Background()) }); err != nil {
		return err
	}
	m.cron = c
	c.Start()
	go m.Probe(context.Background())
	log.Printf("[HEALTH] started schedule=%q", schedule)
	return nil
}

// Stop waits for a running probe to finish.
func (m *Monitor) Stop() {
	if m.cron == nil {
		return
	}
	<-m.cron.Stop().Done()
}
