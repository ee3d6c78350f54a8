package pagination

import (
	"context"
	"iter"

	"github.com/moznion/go-optional"

	"robinhood/pkg/core"
	"robinhood/pkg/dispatch"
	"robinhood/pkg/endpoint"
)

// Iterator yields the elements of a paged list one at a time, fetching
// the next page through the dispatcher when the current one runs out.
// Only one page is held in memory. An Iterator is not safe for concurrent
// use.
type Iterator[T any] struct {
	d           *dispatch.Dispatcher
	requireAuth bool

	page  []T
	next  optional.Option[string]
	index int
}

// NewIterator starts at the first element of first. Follow-up pages are
// fetched with authentication iff requireAuth is set, matching the request
// that produced first.
func NewIterator[T any](first *Envelope[T], d *dispatch.Dispatcher, requireAuth bool) *Iterator[T] {
	it := &Iterator[T]{
		d:           d,
		requireAuth: requireAuth,
	}
	if first != nil {
		it.page = first.Results
		it.next = first.Next
	}
	return it
}

// HasNext reports whether the current page has unread elements or another
// page is linked.
func (it *Iterator[T]) HasNext() bool {
	return it.index < len(it.page) || it.next.IsSome()
}

// Next returns the next element. It fails with ErrorTypeNoNextPage once
// the list is exhausted. A failed page fetch returns the dispatcher's error
// and leaves the iterator where it was, so Next may be called again.
//
// Empty pages are skipped. A run of empty pages that links back to a page
// already visited fails with ErrorTypeDecode instead of looping.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T

	var visited map[string]struct{}
	for it.index >= len(it.page) {
		if it.next.IsNone() {
			return zero, core.NewError(core.ErrorTypeNoNextPage, "no next page")
		}

		url := it.next.Unwrap()
		if _, seen := visited[url]; seen {
			return zero, core.Errorf(core.ErrorTypeDecode, "page cursor %q repeats", url)
		}

		env, err := it.fetch(ctx, url)
		if err != nil {
			return zero, err
		}
		if visited == nil {
			visited = make(map[string]struct{})
		}
		visited[url] = struct{}{}
		it.page = env.Results
		it.next = env.Next
		it.index = 0
	}

	v := it.page[it.index]
	it.index++
	return v, nil
}

// All returns a sequence over the remaining elements. It stops after the
// last element or after yielding the first fetch error.
func (it *Iterator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.HasNext() {
			v, err := it.Next(ctx)
			if core.IsNoNextPage(err) {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains the iterator. On error it returns the elements read so
// far together with the error.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for v, err := range it.All(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (it *Iterator[T]) fetch(ctx context.Context, url string) (*Envelope[T], error) {
	req := endpoint.NextPage(url, false)
	if it.requireAuth {
		if err := req.AddAuthToken(it.d.Tokens()); err != nil {
			return nil, err
		}
	}

	env, err := dispatch.Do[Envelope[T]](ctx, it.d, req)
	if err != nil {
		return nil, err
	}
	return &env, nil
}
