// Package intake implements the lead-capture form controller: it gathers a
// draft submission, posts it to the access-request endpoint, and drives the
// idle → submitting → success/error lifecycle the way the site's modal
// does, including the post-success redirect to the scheduling destination.
package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Draft is the client-held, not-yet-persisted form data. The UI collects a
// single industry choice but stores it as a one-element specialties
// sequence, matching the wire shape the endpoint expects.
type Draft struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
}

// Status is the controller's submission lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Doer issues the HTTP request; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Tracker fires a conversion-tracking event. Best-effort: errors and
// panics are swallowed, never affecting the success path.
type Tracker func(event string)

// Navigator performs the one-way navigation to the scheduling destination.
type Navigator func(url string)

// Controller drives one lead-capture form instance. Safe for concurrent
// use; while a submission is in flight further Submit calls are no-ops.
type Controller struct {
	endpoint      string
	doer          Doer
	tracker       Tracker
	navigate      Navigator
	redirectURL   string
	redirectDelay time.Duration

	mu       sync.Mutex
	draft    Draft
	status   Status
	inFlight bool
	lastErr  error
}

// Option configures a Controller.
type Option func(*Controller)

// WithDoer replaces the HTTP client.
func WithDoer(d Doer) Option { return func(c *Controller) { c.doer = d } }

// WithTracker sets the conversion-tracking capability.
func WithTracker(t Tracker) Option { return func(c *Controller) { c.tracker = t } }

// WithNavigator sets the navigation capability used after success.
func WithNavigator(n Navigator) Option { return func(c *Controller) { c.navigate = n } }

// WithRedirect sets the scheduling destination and the delay before the
// controller navigates there after a successful submission.
func WithRedirect(url string, delay time.Duration) Option {
	return func(c *Controller) {
		c.redirectURL = url
		c.redirectDelay = delay
	}
}

// New creates a Controller posting to the given endpoint.
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		doer:     http.DefaultClient,
		tracker:  func(string) {},
		navigate: func(string) {},
		status:   StatusIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetField mutates the in-memory draft. No validation happens here; the
// server is the single validation authority.
func (c *Controller) SetField(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch field {
	case "name":
		c.draft.Name = value
	case "email":
		c.draft.Email = value
	case "phone":
		c.draft.Phone = value
	case "industry":
		// single select stored as a one-element sequence
		c.draft.Specialties = []string{value}
	}
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.draft
	d.Specialties = append([]string(nil), c.draft.Specialties...)
	return d
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the error recorded by the last failed submission.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Submit serializes the draft and posts it to the endpoint. While a
// submission is in flight repeated calls are no-ops, so a double-click
// sends exactly one request. On success the draft is cleared, the tracker
// fires, and navigation to the scheduling destination is scheduled. On
// failure the draft is kept intact so the user can correct and resubmit.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true
	c.status = StatusSubmitting
	draft := c.draft
	c.mu.Unlock()

	err := c.post(ctx, draft)

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		c.status = StatusError
		c.lastErr = err
		c.mu.Unlock()
		return err
	}
	c.status = StatusSuccess
	c.lastErr = nil
	c.draft = Draft{}
	c.mu.Unlock()

	c.track("Lead")
	if c.redirectURL != "" {
		time.AfterFunc(c.redirectDelay, func() {
			c.navigate(c.redirectURL)
		})
	}
	return nil
}

// post issues the HTTP request and maps non-2xx responses to errors.
func (c *Controller) post(ctx context.Context, draft Draft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("submit request: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("submit request: unexpected status %d", res.StatusCode)
	}
	return nil
}

// track fires the conversion event, swallowing anything it throws.
func (c *Controller) track(event string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("conversion_tracking_failed", "event", event, "panic", r)
		}
	}()
	c.tracker(event)
}
