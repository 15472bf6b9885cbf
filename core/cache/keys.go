// ABOUTME: Deterministic cache key construction scoped to the UTC calendar day
// ABOUTME: Guarantees logically-identical requests produce identical keys

package cache

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// KeyBuilder assembles cache keys of the form
//
//	{namespace}:{YYYY-MM-DD}:{sorted,comma-joined,lowercased list}:{scalar}
//
// List parameters are lower-cased, sorted and comma-joined so two
// set-equal requests produce the same key regardless of input ordering
// or case. Scalar parameters are appended in call order. The UTC date
// component scopes every key to a calendar day.
//
// The format is load-bearing: existing cached data was written under
// these exact keys.
type KeyBuilder struct {
	parts []string
}

// NewKey starts a key in the given namespace dated today (UTC).
func NewKey(namespace string) *KeyBuilder {
	return NewKeyAt(namespace, time.Now())
}

// NewKeyAt starts a key in the given namespace dated at t (UTC).
func NewKeyAt(namespace string, t time.Time) *KeyBuilder {
	return &KeyBuilder{
		parts: []string{namespace, t.UTC().Format("2006-01-02")},
	}
}

// List appends a list parameter: items are trimmed, lower-cased, sorted
// and comma-joined into a single component.
func (b *KeyBuilder) List(values []string) *KeyBuilder {
	canonical := make([]string, 0, len(values))
	for _, v := range values {
		canonical = append(canonical, strings.ToLower(strings.TrimSpace(v)))
	}
	sort.Strings(canonical)
	b.parts = append(b.parts, strings.Join(canonical, ","))
	return b
}

// Scalar appends a scalar parameter, lower-cased.
func (b *KeyBuilder) Scalar(value interface{}) *KeyBuilder {
	b.parts = append(b.parts, strings.ToLower(fmt.Sprint(value)))
	return b
}

// String renders the key.
func (b *KeyBuilder) String() string {
	return strings.Join(b.parts, ":")
}
