package pokeapi

import (
	"context"
	"errors"
	"sync"
)

type Status int

const (
	Pending Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Result is what a view sees of the fetch: either still pending, the record,
// or a message. Ready and Failed are terminal.
type Result struct {
	Status  Status
	Record  *Record
	Message string
}

// Loader fetches one resource at most once and remembers the outcome.
type Loader struct {
	fetcher Fetcher
	id      string

	mu       sync.Mutex
	started  bool
	disposed bool
	result   Result
	done     chan struct{}
}

func NewLoader(fetcher Fetcher, id string) *Loader {
	return &Loader{fetcher: fetcher, id: id, done: make(chan struct{})}
}

func (l *Loader) Result() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result
}

// Start runs the fetch in the background. onDone is called once with the
// terminal result unless Dispose ran first. Later calls are no-ops.
func (l *Loader) Start(ctx context.Context, onDone func(Result)) {
	l.mu.Lock()
	if l.started || l.disposed {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	go func() {
		res := l.run(ctx)
		l.mu.Lock()
		disposed := l.disposed
		l.mu.Unlock()
		if disposed || onDone == nil {
			return
		}
		onDone(res)
	}()
}

// Load fetches synchronously, or waits for a fetch already started.
func (l *Loader) Load(ctx context.Context) Result {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		select {
		case <-l.done:
			return l.Result()
		case <-ctx.Done():
			return Result{Status: Failed, Message: ctx.Err().Error()}
		}
	}
	l.started = true
	l.mu.Unlock()
	return l.run(ctx)
}

// Dispose drops any result that has not been delivered yet.
func (l *Loader) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disposed = true
}

func (l *Loader) run(ctx context.Context) Result {
	rec, err := l.fetcher.Fetch(ctx, l.id)
	res := Result{Status: Ready, Record: rec}
	switch {
	case err != nil:
		res = Result{Status: Failed, Message: errorMessage(err)}
	case rec == nil:
		res = Result{Status: Failed, Message: (&FetchError{Kind: ErrorEmpty}).Error()}
	}
	l.mu.Lock()
	l.result = res
	l.mu.Unlock()
	close(l.done)
	return res
}

func errorMessage(err error) string {
	var ferr *FetchError
	if errors.As(err, &ferr) {
		return ferr.Error()
	}
	return err.Error()
}
