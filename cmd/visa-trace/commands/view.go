// Package commands implements the visa-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/visa-protocol/visa-go/pkg/attributes"
	"github.com/visa-protocol/visa-go/pkg/constants"
	"github.com/visa-protocol/visa-go/pkg/trace"
)

// RunView prints events matching the filter in human-readable format.
func RunView(path string, filter trace.Filter, w io.Writer) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
	return nil
}

// formatEvent writes one line per access:
//
//	timestamp [sess:id] OP  id NAME = value
//	timestamp [sess:id] OP  id NAME ! error
func formatEvent(w io.Writer, event trace.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	name := event.AttributeName
	if name == "" {
		name = "-"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s", ts, shortenSessionID(event.SessionID), event.Operation, event.AttributeID, name)
	if event.Error != "" {
		fmt.Fprintf(w, " ! %s", event.Error)
	} else if event.Value != nil {
		fmt.Fprintf(w, " = %v", event.Value)
	}
	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseOperationFlag converts an operation flag value to a trace.Operation.
func ParseOperationFlag(s string) (trace.Operation, error) {
	switch strings.ToLower(s) {
	case "get", "read":
		return trace.OpGet, nil
	case "set", "write":
		return trace.OpSet, nil
	default:
		return 0, fmt.Errorf("unknown operation %q (supported: get, set)", s)
	}
}

// ParseAttributeFlag converts an attribute flag value (hex id or VISA
// name) to an attribute id.
func ParseAttributeFlag(s string) (constants.AttributeID, error) {
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid attribute id %q: %w", s, err)
		}
		return constants.AttributeID(n), nil
	}
	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "VI_ATTR_") {
		name = "VI_ATTR_" + name
	}
	d, ok := attributes.LookupName(name)
	if !ok {
		return 0, fmt.Errorf("unknown attribute %q", s)
	}
	return d.AttrID(), nil
}
