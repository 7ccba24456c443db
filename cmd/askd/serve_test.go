package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

// startTestServer serves h on a loopback listener.
func startTestServer(t *testing.T, h http.Handler) (*http.Server, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: h}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Close() })
	return srv, "http://" + ln.Addr().String()
}

type result struct {
	status int
	body   string
	err    error
}

func fire(url string) <-chan result {
	ch := make(chan result, 1)
	go func() {
		resp, err := http.Get(url)
		if err != nil {
			ch <- result{err: err}
			return
		}
		b, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		ch <- result{status: resp.StatusCode, body: string(b)}
	}()
	return ch
}

func TestDrainLetsInFlightRequestFinish(t *testing.T) {
	base, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	started := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-time.After(200 * time.Millisecond):
			_, _ = w.Write([]byte("done"))
		case <-base.Done():
			http.Error(w, "canceled", http.StatusInternalServerError)
		}
	})
	srv, url := startTestServer(t, h)
	res := fire(url)
	<-started

	if err := drain(srv, cancelBase, 2*time.Second); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if base.Err() != nil {
		t.Fatal("handler work canceled although the request finished within the grace period")
	}
	r := <-res
	if r.err != nil || r.status != http.StatusOK || r.body != "done" {
		t.Fatalf("in-flight request: %+v", r)
	}
}

func TestDrainCancelsWorkAfterGrace(t *testing.T) {
	base, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	started := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-base.Done()
		http.Error(w, "server shutting down", http.StatusInternalServerError)
	})
	srv, url := startTestServer(t, h)
	res := fire(url)
	<-started

	err := drain(srv, cancelBase, 50*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("drain err = %v, want deadline exceeded", err)
	}
	if base.Err() == nil {
		t.Fatal("handler work not canceled after the grace period")
	}
	r := <-res
	if r.err == nil && r.status != http.StatusInternalServerError {
		t.Fatalf("expected an error response or a closed connection, got %+v", r)
	}
}
