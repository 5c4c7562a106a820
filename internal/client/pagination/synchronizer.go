// Package pagination implements the client-side accumulation of a remote
// paginated list: pages are fetched one at a time for a fixed filter,
// collected in order, and flattened into a deduplicated item view.
//
// Responses are matched against the filter generation that requested them;
// a response belonging to a superseded filter is dropped when it arrives,
// so the latest Load always wins without cancelling in-flight requests.
package pagination

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/messmate/internal/logging"
)

const (
	// InitialPageLimit is the page-1 size. The first page is deliberately
	// larger than the rest so first paint covers a useful chunk of the
	// list without extra round trips.
	InitialPageLimit = 30

	// NextPageLimit is the size of every page after the first.
	NextPageLimit = 20
)

// Item is an element with a stable identity used for deduplication.
type Item interface {
	Key() int64
}

// Filter scopes one pagination sequence. Changing any field starts the
// sequence over from page 1. UserID 0 means all users; Type applies to
// expense listings only.
type Filter struct {
	Month  string
	UserID int64
	Type   string
	SortBy string
	Order  string
}

// Page is one fetched slice of the remote list. TotalItems and TotalPages
// are the server's authoritative counts for the whole filtered collection.
// Stats is non-nil only when the server attached summary statistics.
type Page[T Item, S any] struct {
	Items      []T
	Number     int
	Limit      int
	TotalItems int
	TotalPages int
	Stats      *S
}

// FetchFunc retrieves one page of the remote list for the given filter.
type FetchFunc[T Item, S any] func(ctx context.Context, f Filter, page, limit int) (*Page[T, S], error)

// Synchronizer accumulates pages for the current filter. It is safe for
// concurrent use; state transitions happen under an internal mutex while
// fetches run outside it.
type Synchronizer[T Item, S any] struct {
	fetch FetchFunc[T, S]
	log   logging.Logger

	mu              sync.Mutex
	filter          Filter
	loaded          bool
	pages           []*Page[T, S]
	gen             uint64
	fetchingInitial bool
	fetchingNext    bool
	lastErr         error
}

// New constructs a Synchronizer around the given page fetcher.
func New[T Item, S any](fetch FetchFunc[T, S], log logging.Logger) *Synchronizer[T, S] {
	return &Synchronizer[T, S]{fetch: fetch, log: log}
}

// Load starts a fresh sequence for f: accumulated pages are discarded and
// page 1 is fetched with the larger initial limit. A Load issued while an
// older fetch is still in flight supersedes it; the older response is
// dropped on arrival.
func (s *Synchronizer[T, S]) Load(ctx context.Context, f Filter) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.filter = f
	s.pages = nil
	s.loaded = false
	s.lastErr = nil
	s.fetchingInitial = true
	s.fetchingNext = false
	s.mu.Unlock()

	page, err := s.fetch(ctx, f, 1, InitialPageLimit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// A newer Load took over while this fetch was in flight.
		s.log.Debug(ctx, "discarding stale page response", "page", 1)
		return nil
	}

	s.fetchingInitial = false
	if err != nil {
		s.lastErr = err
		return err
	}

	s.pages = []*Page[T, S]{page}
	s.loaded = true
	return nil
}

// LoadMore fetches the page after the last accumulated one under the
// current filter. It is a no-op when a fetch is already running or the
// last page indicates the collection is exhausted. A failure leaves the
// accumulated pages untouched.
func (s *Synchronizer[T, S]) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.fetchingInitial || s.fetchingNext || !s.loaded {
		s.mu.Unlock()
		return nil
	}
	last := s.pages[len(s.pages)-1]
	if last.Number >= last.TotalPages {
		s.mu.Unlock()
		return nil
	}
	gen := s.gen
	f := s.filter
	next := last.Number + 1
	s.fetchingNext = true
	s.mu.Unlock()

	page, err := s.fetch(ctx, f, next, NextPageLimit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.Debug(ctx, "discarding stale page response", "page", next)
		return nil
	}

	s.fetchingNext = false
	if err != nil {
		s.lastErr = err
		return err
	}

	s.pages = append(s.pages, page)
	return nil
}

// Refresh refetches page 1 for the current filter. The accumulated pages
// stay visible until the fresh page arrives; on success they are replaced
// by the fresh page 1 alone, so callers must LoadMore again to regain
// scroll depth. On failure the stale pages are dropped along with the
// sequence.
func (s *Synchronizer[T, S]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if !s.loaded {
		f := s.filter
		s.mu.Unlock()
		return s.Load(ctx, f)
	}
	s.gen++
	gen := s.gen
	f := s.filter
	s.lastErr = nil
	s.fetchingInitial = true
	s.fetchingNext = false
	s.mu.Unlock()

	page, err := s.fetch(ctx, f, 1, InitialPageLimit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.Debug(ctx, "discarding stale refresh response")
		return nil
	}

	s.fetchingInitial = false
	if err != nil {
		s.pages = nil
		s.loaded = false
		s.lastErr = err
		return err
	}

	s.pages = []*Page[T, S]{page}
	s.loaded = true
	return nil
}

// Items flattens all accumulated pages into a single slice, keeping only
// the first occurrence of each identity in fetch order. The view is
// recomputed on every call; list sizes are small enough that this beats
// maintaining an incremental index.
func (s *Synchronizer[T, S]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{})
	var items []T
	for _, p := range s.pages {
		for _, it := range p.Items {
			if _, ok := seen[it.Key()]; ok {
				continue
			}
			seen[it.Key()] = struct{}{}
			items = append(items, it)
		}
	}
	return items
}

// Stats returns the summary attached to page 1, or the zero value when
// absent. Later pages' stats are ignored: the server sends the same
// summary on every page of one filter, so only the first copy is read.
func (s *Synchronizer[T, S]) Stats() S {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero S
	if len(s.pages) == 0 || s.pages[0].Stats == nil {
		return zero
	}
	return *s.pages[0].Stats
}

// HasMore reports whether the server holds pages beyond the accumulated
// ones for the current filter.
func (s *Synchronizer[T, S]) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pages) == 0 {
		return false
	}
	last := s.pages[len(s.pages)-1]
	return last.Number < last.TotalPages
}

// TotalItems returns the server's count for the whole filtered collection,
// or 0 before the first page arrives.
func (s *Synchronizer[T, S]) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pages) == 0 {
		return 0
	}
	return s.pages[0].TotalItems
}

// Filter returns the filter of the current sequence.
func (s *Synchronizer[T, S]) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// FetchingInitial reports whether a Load or Refresh fetch is in flight.
func (s *Synchronizer[T, S]) FetchingInitial() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchingInitial
}

// FetchingNext reports whether a LoadMore fetch is in flight.
func (s *Synchronizer[T, S]) FetchingNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchingNext
}

// LastError returns the most recent fetch failure for the current
// sequence, or nil. It is cleared by the next Load or Refresh.
func (s *Synchronizer[T, S]) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
