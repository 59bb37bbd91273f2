package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/visa-protocol/visa-go/pkg/constants"
	"github.com/visa-protocol/visa-go/pkg/trace"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByOperation map[trace.Operation]int
	EventsByAttribute map[constants.AttributeID]int
	AttributeNames    map[constants.AttributeID]string
	Sessions          map[string]*SessionStats
	Failures          int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Failures  int
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOperation: make(map[trace.Operation]int),
		EventsByAttribute: make(map[constants.AttributeID]int),
		AttributeNames:    make(map[constants.AttributeID]string),
		Sessions:          make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	stats.print(w)
	return nil
}

func (s *Stats) add(event trace.Event) {
	s.TotalEvents++
	s.EventsByOperation[event.Operation]++
	s.EventsByAttribute[event.AttributeID]++
	if event.AttributeName != "" {
		s.AttributeNames[event.AttributeID] = event.AttributeName
	}
	if event.Error != "" {
		s.Failures++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Error != "" {
		sess.Failures++
	}
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
}

func (s *Stats) print(w io.Writer) {
	fmt.Fprintf(w, "Total events: %d\n", s.TotalEvents)
	if s.TotalEvents == 0 {
		return
	}

	fmt.Fprintf(w, "Time range:   %s - %s\n",
		s.TimeRange.Start.UTC().Format(time.RFC3339),
		s.TimeRange.End.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Failures:     %d\n", s.Failures)

	fmt.Fprintln(w, "\nBy operation:")
	for _, op := range []trace.Operation{trace.OpGet, trace.OpSet} {
		if n := s.EventsByOperation[op]; n > 0 {
			fmt.Fprintf(w, "  %-3s %d\n", op, n)
		}
	}

	fmt.Fprintln(w, "\nBy attribute:")
	ids := make([]constants.AttributeID, 0, len(s.EventsByAttribute))
	for id := range s.EventsByAttribute {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		name := s.AttributeNames[id]
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "  %s %-28s %d\n", id, name, s.EventsByAttribute[id])
	}

	fmt.Fprintln(w, "\nSessions:")
	sessIDs := make([]string, 0, len(s.Sessions))
	for id := range s.Sessions {
		sessIDs = append(sessIDs, id)
	}
	sort.Strings(sessIDs)
	for _, id := range sessIDs {
		sess := s.Sessions[id]
		fmt.Fprintf(w, "  %s  events=%d failures=%d duration=%s\n",
			shortenSessionID(id), sess.Events, sess.Failures,
			sess.LastSeen.Sub(sess.FirstSeen).Round(time.Millisecond))
	}
}
