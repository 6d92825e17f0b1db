// Package viewmodel holds the embeddable UI-state machines that sit between
// the rest client and a rendering surface: a paginated list view and a
// create/edit form controller. Each instance owns its state exclusively; two
// views never share a controller.
package viewmodel

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"heritageloom/internal/domain/entity"
	"heritageloom/internal/rest"
)

type ListState int

const (
	ListIdle ListState = iota
	ListLoading
	ListLoaded
	ListFailed
)

// ListView drives one paginated, filterable collection. Writes never touch
// the local slice: after any create/update/delete the owner calls Refetch,
// because the backend is the sole source of truth.
type ListView[T any] struct {
	client *rest.Client[T]

	mu       sync.Mutex
	seq      uint64
	state    ListState
	page     int
	filters  url.Values
	items    []T
	pageInfo *entity.PageInfo
	err      error
}

func NewListView[T any](client *rest.Client[T], filters url.Values) *ListView[T] {
	return &ListView[T]{
		client:  client,
		page:    1,
		filters: cloneValues(filters),
	}
}

// Load fetches the current page with the current filters. If a newer Load
// was issued while this one was in flight, the stale result is discarded
// wholesale so rapid page-flipping can never regress the view.
func (v *ListView[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	mySeq := v.seq
	v.state = ListLoading
	query := cloneValues(v.filters)
	if v.client.Endpoint().Paginated {
		query.Set("page", strconv.Itoa(v.page))
	}
	v.mu.Unlock()

	result, err := v.client.List(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()
	if mySeq != v.seq {
		// superseded by a newer request; whichever Load issued it owns the state
		return nil
	}
	if err != nil {
		// keep the last loaded items so a transient failure does not blank
		// a populated list
		v.state = ListFailed
		v.err = err
		return err
	}
	v.state = ListLoaded
	v.err = nil
	v.items = result.Items
	v.pageInfo = result.Page
	return nil
}

// SetPage moves to page n and reloads. Out-of-range pages are ignored
// silently, leaving the current page untouched.
func (v *ListView[T]) SetPage(ctx context.Context, n int) error {
	v.mu.Lock()
	if n < 1 || n > v.totalPagesLocked() || n == v.page {
		v.mu.Unlock()
		return nil
	}
	v.page = n
	v.mu.Unlock()
	return v.Load(ctx)
}

// SetFilter replaces the filter set, resets to page 1, and reloads.
func (v *ListView[T]) SetFilter(ctx context.Context, filters url.Values) error {
	v.mu.Lock()
	v.filters = cloneValues(filters)
	v.page = 1
	v.mu.Unlock()
	return v.Load(ctx)
}

// Refetch re-runs the last query. Called after every successful write.
func (v *ListView[T]) Refetch(ctx context.Context) error {
	return v.Load(ctx)
}

// Retry re-issues the last failed fetch without requiring a remount.
func (v *ListView[T]) Retry(ctx context.Context) error {
	return v.Load(ctx)
}

func (v *ListView[T]) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ListView[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items
}

func (v *ListView[T]) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// PageInfo reports the last pagination envelope. Unpaginated endpoints get a
// synthesized single page so callers can clamp uniformly.
func (v *ListView[T]) PageInfo() entity.PageInfo {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pageInfo != nil {
		return *v.pageInfo
	}
	return entity.PageInfo{
		Page:         1,
		TotalPages:   1,
		TotalResults: len(v.items),
		PerPage:      len(v.items),
	}
}

func (v *ListView[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *ListView[T]) totalPagesLocked() int {
	if v.pageInfo != nil && v.pageInfo.TotalPages > 0 {
		return v.pageInfo.TotalPages
	}
	return 1
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
