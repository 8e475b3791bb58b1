package intake

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// blockingDoer holds every request until released, counting them.
type blockingDoer struct {
	requests int32
	release  chan struct{}
	status   int
}

func (d *blockingDoer) Do(req *http.Request) (*http.Response, error) {
	atomic.AddInt32(&d.requests, 1)
	<-d.release
	rec := httptest.NewRecorder()
	rec.WriteHeader(d.status)
	return rec.Result(), nil
}

type errorDoer struct{ err error }

func (d *errorDoer) Do(*http.Request) (*http.Response, error) { return nil, d.err }

// TestSubmit_SuccessClearsDraft verifies the success path: draft cleared,
// status success, tracker fired.
func TestSubmit_SuccessClearsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type=%q", ct)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	var tracked []string
	c := New(srv.URL,
		WithDoer(srv.Client()),
		WithTracker(func(e string) { tracked = append(tracked, e) }),
	)
	c.SetField("name", "Jane Smith")
	c.SetField("email", "jane@x.com")
	c.SetField("industry", "retail")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Status() != StatusSuccess {
		t.Errorf("status=%q", c.Status())
	}
	if d := c.Draft(); d.Name != "" || d.Email != "" || len(d.Specialties) != 0 {
		t.Errorf("draft not cleared: %+v", d)
	}
	if len(tracked) != 1 || tracked[0] != "Lead" {
		t.Errorf("tracked=%v", tracked)
	}
}

// TestSubmit_FailureKeepsDraft verifies the draft survives both HTTP
// errors and transport errors so the user can retry without retyping.
func TestSubmit_FailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, WithDoer(srv.Client()))
	c.SetField("name", "Jane Smith")
	c.SetField("email", "jane@x.com")

	if err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
	if c.Status() != StatusError {
		t.Errorf("status=%q", c.Status())
	}
	if d := c.Draft(); d.Name != "Jane Smith" || d.Email != "jane@x.com" {
		t.Errorf("draft lost: %+v", d)
	}

	// Transport failure behaves the same.
	c2 := New("http://unreachable.invalid", WithDoer(&errorDoer{err: errors.New("dial refused")}))
	c2.SetField("name", "Jane Smith")
	if err := c2.Submit(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
	if d := c2.Draft(); d.Name != "Jane Smith" {
		t.Errorf("draft lost: %+v", d)
	}
}

// TestSubmit_InFlightGuard verifies two concurrent submits send exactly
// one HTTP request.
func TestSubmit_InFlightGuard(t *testing.T) {
	doer := &blockingDoer{release: make(chan struct{}), status: http.StatusCreated}
	c := New("http://example.com/api/access-request", WithDoer(doer))
	c.SetField("name", "Jane Smith")
	c.SetField("email", "jane@x.com")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Submit(context.Background())
	}()

	// Wait for the first submit to be in flight.
	for atomic.LoadInt32(&doer.requests) == 0 {
		time.Sleep(time.Millisecond)
	}

	// The duplicate click: must be a no-op.
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("duplicate Submit: %v", err)
	}

	close(doer.release)
	wg.Wait()

	if n := atomic.LoadInt32(&doer.requests); n != 1 {
		t.Fatalf("requests=%d, want exactly 1", n)
	}
	if c.Status() != StatusSuccess {
		t.Errorf("status=%q", c.Status())
	}
}

// TestSubmit_SchedulesRedirect verifies the post-success navigation fires
// after the configured delay.
func TestSubmit_SchedulesRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	navigated := make(chan string, 1)
	c := New(srv.URL,
		WithDoer(srv.Client()),
		WithRedirect("https://calendly.com/getcxlus/free-consultation-to-implement-zuzz", time.Millisecond),
		WithNavigator(func(url string) { navigated <- url }),
	)
	c.SetField("name", "Jane Smith")
	c.SetField("email", "jane@x.com")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case url := <-navigated:
		if url != "https://calendly.com/getcxlus/free-consultation-to-implement-zuzz" {
			t.Errorf("url=%q", url)
		}
	case <-time.After(time.Second):
		t.Fatal("navigation never fired")
	}
}

// TestSubmit_TrackerPanicDoesNotBreakSuccess verifies a broken analytics
// sink cannot affect the success path.
func TestSubmit_TrackerPanicDoesNotBreakSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL,
		WithDoer(srv.Client()),
		WithTracker(func(string) { panic("fbq is not defined") }),
	)
	c.SetField("name", "Jane Smith")
	c.SetField("email", "jane@x.com")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Status() != StatusSuccess {
		t.Errorf("status=%q", c.Status())
	}
}
