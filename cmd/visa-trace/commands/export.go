package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/visa-protocol/visa-go/pkg/trace"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the JSON export shape with readable field names.
type jsonEvent struct {
	Timestamp     string `json:"timestamp"`
	SessionID     string `json:"session_id"`
	Operation     string `json:"operation"`
	AttributeID   string `json:"attribute_id"`
	AttributeName string `json:"attribute_name,omitempty"`
	Value         any    `json:"value,omitempty"`
	Error         string `json:"error,omitempty"`
}

func exportJSONL(reader *trace.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		row := jsonEvent{
			Timestamp:     event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			SessionID:     event.SessionID,
			Operation:     event.Operation.String(),
			AttributeID:   event.AttributeID.String(),
			AttributeName: event.AttributeName,
			Value:         event.Value,
			Error:         event.Error,
		}
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *trace.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "operation", "attribute_id", "attribute_name", "value", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		value := ""
		if event.Value != nil {
			value = fmt.Sprintf("%v", event.Value)
		}
		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Operation.String(),
			event.AttributeID.String(),
			event.AttributeName,
			value,
			event.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
