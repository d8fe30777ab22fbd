package downloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/famomatic/clipper/internal/types"
)

func TestFetchReturnsFullBuffer(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	got, err := f.Fetch(context.Background(), srv.URL, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("buffer mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestFetchForwardsCookieCredentials(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	creds := types.Credentials("SID=xyz")
	if _, err := f.Fetch(context.Background(), srv.URL, creds); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotCookie != string(creds) {
		t.Errorf("cookie header = %q, want verbatim pass-through", gotCookie)
	}
}

func TestFetchNonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	buf, err := f.Fetch(context.Background(), srv.URL, "")
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if buf != nil {
		t.Error("partial buffer returned alongside error")
	}
}

func TestFetchEmptyBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	_, err := f.Fetch(context.Background(), srv.URL, "")
	if !errors.Is(err, ErrEmptyTransfer) {
		t.Fatalf("err = %v, want ErrEmptyTransfer", err)
	}
}

func TestFetchRejectsOversizeContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1024")
		w.Write(bytes.Repeat([]byte{1}, 1024))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), WithMaxBytes(512))
	_, err := f.Fetch(context.Background(), srv.URL, "")
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestFetchRejectsOversizeChunkedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No Content-Length; stream past the cap.
		flusher := w.(http.Flusher)
		for i := 0; i < 8; i++ {
			w.Write(bytes.Repeat([]byte{2}, 256))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), WithMaxBytes(512))
	_, err := f.Fetch(context.Background(), srv.URL, "")
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestFetchTruncatedTransferFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("server does not support hijacking")
		}
		conn, bw, err := hj.Hijack()
		if err != nil {
			t.Fatalf("hijack: %v", err)
		}
		defer conn.Close()
		// Promise 100 bytes, deliver 10.
		fmt.Fprint(bw, "HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\n")
		bw.WriteString(strings.Repeat("x", 10))
		bw.Flush()
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	buf, err := f.Fetch(context.Background(), srv.URL, "")
	if !errors.Is(err, types.ErrTruncatedTransfer) {
		t.Fatalf("err = %v, want ErrTruncatedTransfer", err)
	}
	if buf != nil {
		t.Error("partial buffer returned alongside error")
	}
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(srv.Client())
	_, err := f.Fetch(ctx, srv.URL, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
