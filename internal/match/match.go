package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DayFormat is the calendar-day form used everywhere results are grouped
// and displayed, e.g. "20 February 2016".
const DayFormat = "02 January 2006"

// Match represents one completed match from the HLTV results listing.
// Maps holds either a resolved format label (e.g. "Mirage") or the
// space-joined list of maps played in a best-of-N series.
type Match struct {
	Timestamp    int64  `json:"-"`
	TeamOne      string `json:"team_one"`
	TeamOneScore int    `json:"team_one_score"`
	TeamTwo      string `json:"team_two"`
	TeamTwoScore int    `json:"team_two_score"`
	Event        string `json:"event"`
	Maps         string `json:"maps"`
}

// Results is an insertion-ordered collection of matches keyed by their
// Unix-millisecond timestamp. Order follows document order on the source
// page, not timestamp value.
type Results struct {
	order   []int64
	byStamp map[int64]*Match
}

// NewResults creates an empty Results collection.
func NewResults() *Results {
	return &Results{
		byStamp: make(map[int64]*Match),
	}
}

// Add inserts a match keyed by its timestamp. A duplicate timestamp
// replaces the earlier match in place, keeping its position.
func (r *Results) Add(m *Match) {
	if _, exists := r.byStamp[m.Timestamp]; !exists {
		r.order = append(r.order, m.Timestamp)
	}
	r.byStamp[m.Timestamp] = m
}

// Get returns the match for a timestamp, if present.
func (r *Results) Get(timestamp int64) (*Match, bool) {
	m, ok := r.byStamp[timestamp]
	return m, ok
}

// Len returns the number of matches in the collection.
func (r *Results) Len() int {
	return len(r.order)
}

// Matches returns the matches in insertion order.
func (r *Results) Matches() []*Match {
	matches := make([]*Match, 0, len(r.order))
	for _, ts := range r.order {
		matches = append(matches, r.byStamp[ts])
	}
	return matches
}

// MarshalJSON encodes the collection as a single JSON object whose keys
// are decimal-string timestamps in insertion order.
func (r *Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ts := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.FormatInt(ts, 10))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.byStamp[ts])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the object form produced by MarshalJSON,
// preserving key order.
func (r *Results) UnmarshalJSON(data []byte) error {
	r.order = nil
	r.byStamp = make(map[int64]*Match)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing timestamp key %q: %w", key, err)
		}

		var m Match
		if err := dec.Decode(&m); err != nil {
			return fmt.Errorf("decoding match %q: %w", key, err)
		}
		m.Timestamp = ts
		r.Add(&m)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// DayString formats a time as a calendar-day string.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

// Day converts a Unix-millisecond timestamp to its local calendar-day
// string. Two timestamps fall on the same day iff their Day strings are
// equal.
func Day(millis int64) string {
	return DayString(time.UnixMilli(millis))
}
