package errkit

import "fmt"

type retryEntry struct {
	typ     *Type
	message string
	atMs    int64
}

// RetryCollector accumulates a sequence of errors absorbed by a retry
// loop and renders them as a single summary, grounded on pgBackRest's
// ErrorRetry object. The first error added becomes the loop's reported
// type and headline message; every subsequent error is folded into a
// detail line, grouped by message text (not type), in the order each
// distinct message first appeared.
type RetryCollector struct {
	clock   Clock
	detail  bool
	entries []retryEntry
}

// NewRetryCollector creates an empty collector. detail controls whether
// Message renders per-retry detail lines or the single
// "[RETRY DETAIL OMITTED]" placeholder; production callers typically
// leave it disabled to avoid leaking message content that may include
// sensitive data into logs, enabling it only for diagnostic builds.
func NewRetryCollector(clock Clock, detail bool) *RetryCollector {
	if clock == nil {
		clock = SystemClock
	}
	return &RetryCollector{clock: clock, detail: detail}
}

// Add records an absorbed error.
func (c *RetryCollector) Add(t *Type, message string) {
	c.entries = append(c.entries, retryEntry{typ: t, message: message, atMs: c.clock.NowMillis()})
}

// Type returns the type of the first error added, or nil if nothing has
// been added.
func (c *RetryCollector) Type() *Type {
	if len(c.entries) == 0 {
		return nil
	}
	return c.entries[0].typ
}

// Message renders the collector's summary.
func (c *RetryCollector) Message() string {
	if len(c.entries) == 0 {
		return ""
	}

	headline := c.entries[0].message
	if len(c.entries) == 1 {
		return headline
	}

	if !c.detail {
		return headline + "\n[RETRY DETAIL OMITTED]"
	}

	type group struct {
		typ     *Type
		message string
		count   int
		minMs   int64
		maxMs   int64
	}
	var order []string
	byMessage := map[string]*group{}

	for _, e := range c.entries[1:] {
		g, ok := byMessage[e.message]
		if !ok {
			g = &group{typ: e.typ, message: e.message, minMs: e.atMs, maxMs: e.atMs}
			byMessage[e.message] = g
			order = append(order, e.message)
		}
		g.count++
		if e.atMs < g.minMs {
			g.minMs = e.atMs
		}
		if e.atMs > g.maxMs {
			g.maxMs = e.atMs
		}
	}

	result := headline
	for _, msg := range order {
		g := byMessage[msg]
		if g.count == 1 {
			result += fmt.Sprintf("\n    [%s] on retry at %dms: %s", g.typ.Name, g.minMs, g.message)
		} else {
			result += fmt.Sprintf("\n    [%s] on %d retries from %d-%dms: %s", g.typ.Name, g.count, g.minMs, g.maxMs, g.message)
		}
	}
	return result
}
