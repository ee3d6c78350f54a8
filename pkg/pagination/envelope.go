// Package pagination walks list resources that are split across pages
// linked by a "next" URL.
package pagination

import (
	"github.com/bytedance/sonic"
	"github.com/moznion/go-optional"
)

// Envelope is one page of a list resource.
type Envelope[T any] struct {
	Results  []T
	Next     optional.Option[string]
	Previous optional.Option[string]
	Count    optional.Option[int]
}

type rawEnvelope[T any] struct {
	Results  []T     `json:"results"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Count    *int    `json:"count"`
}

// UnmarshalJSON implements json.Unmarshaler. A missing, null or empty
// cursor decodes to None.
func (e *Envelope[T]) UnmarshalJSON(data []byte) error {
	var raw rawEnvelope[T]
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Results = raw.Results
	e.Next = cursor(raw.Next)
	e.Previous = cursor(raw.Previous)
	e.Count = optional.None[int]()
	if raw.Count != nil {
		e.Count = optional.Some(*raw.Count)
	}
	return nil
}

// HasNextPage reports whether another page follows this one.
func (e *Envelope[T]) HasNextPage() bool {
	return e != nil && e.Next.IsSome()
}

func cursor(s *string) optional.Option[string] {
	if s == nil || *s == "" {
		return optional.None[string]()
	}
	return optional.Some(*s)
}
