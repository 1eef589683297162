package upstream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Status is the last observed state of the content API.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusUp      Status = "up"
	StatusDown    Status = "down"
)

// probePath is a cheap read endpoint; any 2xx means the API is serving.
const probePath = "/hero/"

// Probe periodically checks whether the content API is reachable and keeps
// the latest observation for the health endpoint. A failed check is logged
// and recorded, never fatal: the edge keeps serving fallback content.
type Probe struct {
	baseURL    string
	httpClient *http.Client
	cron       *cron.Cron

	mu        sync.RWMutex
	status    Status
	checkedAt time.Time
}

// NewProbe creates a probe for the given content API base URL.
func NewProbe(baseURL string) *Probe {
	return &Probe{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		status: StatusUnknown,
	}
}

// Start schedules the probe with a cron expression (with seconds).
func (p *Probe) Start(spec string) error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(spec, p.check); err != nil {
		return err
	}

	log.Printf("[info] upstream probe started spec=%q url=%s", spec, p.baseURL)
	c.Start()
	p.cron = c
	return nil
}

// Stop halts the schedule. In-flight checks finish on their own.
func (p *Probe) Stop() {
	if p.cron != nil {
		p.cron.Stop()
	}
}

// Check runs a single probe immediately.
func (p *Probe) Check() {
	p.check()
}

func (p *Probe) check() {
	status := StatusDown

	resp, err := p.httpClient.Get(p.baseURL + probePath)
	if err != nil {
		log.Printf("[warn] upstream probe url=%s error=%v", p.baseURL, err)
	} else {
		resp.Body.Close()
		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			status = StatusUp
		} else {
			log.Printf("[warn] upstream probe url=%s status=%d", p.baseURL, resp.StatusCode)
		}
	}

	p.mu.Lock()
	p.status = status
	p.checkedAt = time.Now().UTC()
	p.mu.Unlock()
}

// Status returns the last observation and when it was made. Before the first
// tick the status is StatusUnknown and the time is zero.
func (p *Probe) Status() (Status, time.Time) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status, p.checkedAt
}
