package pokeapi

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls   int32
	rec     *Record
	err     error
	release chan struct{}
}

func (s *stubFetcher) Fetch(ctx context.Context, id string) (*Record, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.release != nil {
		<-s.release
	}
	return s.rec, s.err
}

func TestLoaderReady(t *testing.T) {
	f := &stubFetcher{rec: &Record{Name: "bulbasaur"}}
	l := NewLoader(f, "1")
	assert.Equal(t, Pending, l.Result().Status)

	res := l.Load(context.Background())
	require.Equal(t, Ready, res.Status)
	assert.Equal(t, "bulbasaur", res.Record.Name)

	again := l.Load(context.Background())
	assert.Equal(t, res, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestLoaderFailedKeepsMessage(t *testing.T) {
	f := &stubFetcher{err: &FetchError{Kind: ErrorNetwork, Err: errors.New("connection refused")}}
	l := NewLoader(f, "1")

	res := l.Load(context.Background())
	assert.Equal(t, Failed, res.Status)
	assert.Nil(t, res.Record)
	assert.Equal(t, "Network error: connection refused", res.Message)
	assert.Equal(t, "failed", res.Status.String())
}

func TestLoaderNilRecordIsFailure(t *testing.T) {
	l := NewLoader(&stubFetcher{}, "1")
	res := l.Load(context.Background())
	assert.Equal(t, Failed, res.Status)
	assert.Equal(t, "Failed to fetch data", res.Message)
}

func TestLoaderStartDeliversOnce(t *testing.T) {
	f := &stubFetcher{rec: &Record{Name: "ivysaur"}}
	l := NewLoader(f, "2")
	got := make(chan Result, 2)

	l.Start(context.Background(), func(r Result) { got <- r })
	l.Start(context.Background(), func(r Result) { got <- r })

	select {
	case r := <-got:
		assert.Equal(t, Ready, r.Status)
	case <-time.After(time.Second):
		t.Fatal("expected a result")
	}
	select {
	case <-got:
		t.Fatal("expected a single delivery")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestLoaderDisposeDropsLateResult(t *testing.T) {
	f := &stubFetcher{rec: &Record{Name: "venusaur"}, release: make(chan struct{})}
	l := NewLoader(f, "3")
	delivered := make(chan Result, 1)

	l.Start(context.Background(), func(r Result) { delivered <- r })
	l.Dispose()
	close(f.release)

	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res := l.Load(waitCtx)
	assert.Equal(t, Ready, res.Status)

	select {
	case <-delivered:
		t.Fatal("expected result to be dropped after dispose")
	case <-time.After(50 * time.Millisecond):
	}
}
