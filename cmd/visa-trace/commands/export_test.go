package commands

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/visa-protocol/visa-go/pkg/constants"
	"github.com/visa-protocol/visa-go/pkg/trace"
)

// writeTestTrace writes a small trace file with events from two sessions
// and returns its path.
func writeTestTrace(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.vtrace")
	logger, err := trace.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create trace file: %v", err)
	}
	defer logger.Close()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for _, event := range []trace.Event{
		{
			Timestamp:     base,
			SessionID:     "session-a",
			Operation:     trace.OpSet,
			AttributeID:   constants.AttrIDAsrlBaud,
			AttributeName: "VI_ATTR_ASRL_BAUD",
			Value:         "115200",
		},
		{
			Timestamp:     base.Add(time.Second),
			SessionID:     "session-a",
			Operation:     trace.OpGet,
			AttributeID:   constants.AttrIDAsrlBaud,
			AttributeName: "VI_ATTR_ASRL_BAUD",
			Value:         "115200",
		},
		{
			Timestamp:     base.Add(2 * time.Second),
			SessionID:     "session-b",
			Operation:     trace.OpSet,
			AttributeID:   constants.AttrIDTermchar,
			AttributeName: "VI_ATTR_TERMCHAR",
			Error:         "operation not permitted",
		},
	} {
		logger.Log(event)
	}
	return path
}

func TestRunExportJSONL(t *testing.T) {
	path := writeTestTrace(t)
	output := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", output); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	var rows []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var row map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		rows = append(rows, row)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0]["operation"] != "SET" || rows[0]["attribute_name"] != "VI_ATTR_ASRL_BAUD" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[0]["attribute_id"] != "0x3FFF0021" {
		t.Errorf("expected hex attribute id, got %v", rows[0]["attribute_id"])
	}
	if rows[2]["error"] != "operation not permitted" {
		t.Errorf("expected error in last row, got %v", rows[2])
	}
	if _, ok := rows[2]["value"]; ok {
		t.Errorf("failed event should omit the value field: %v", rows[2])
	}
}

func TestRunExportCSV(t *testing.T) {
	path := writeTestTrace(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", output); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	if strings.Join(records[0], ",") != "timestamp,session_id,operation,attribute_id,attribute_name,value,error" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "SET" || records[1][5] != "115200" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[3][6] != "operation not permitted" {
		t.Errorf("expected error column in last row: %v", records[3])
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	path := writeTestTrace(t)
	err := RunExport(path, "xml", "")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
