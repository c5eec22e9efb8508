package export

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/okravchuk/matoblik/internal/domain"
)

func sampleOperations() []domain.MaterialOperation {
	base := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return []domain.MaterialOperation{
		{
			ID:         1,
			IdentityID: 1,
			Username:   "alice",
			Position:   domain.PositionTester,
			Subject:    "bolt",
			Quantity:   10,
			Sender:     "WarehouseA",
			Receiver:   "LineB",
			Action:     "transferred",
			Timestamp:  base,
		},
		{
			ID:         2,
			IdentityID: 2,
			Username:   "bohdan",
			Position:   domain.PositionDeveloper,
			Subject:    "cable",
			Quantity:   3,
			Sender:     "LineB",
			Receiver:   "WarehouseA",
			Action:     "received",
			Timestamp:  base.Add(time.Hour),
		},
	}
}

func TestOperationsRoundTrip(t *testing.T) {
	operations := sampleOperations()

	data, err := Operations(operations)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("produced document does not parse: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	if err != nil {
		t.Fatalf("reading rows failed: %v", err)
	}

	if len(rows) != len(operations)+1 {
		t.Fatalf("expected %d rows got %d", len(operations)+1, len(rows))
	}

	for i, label := range Header {
		if rows[0][i] != label {
			t.Fatalf("header column %d: expected %q got %q", i, label, rows[0][i])
		}
	}

	for i, op := range operations {
		row := rows[i+1]
		want := []string{
			op.Username,
			op.Position,
			op.Subject,
			strconv.Itoa(op.Quantity),
			op.Sender,
			op.Receiver,
			op.Action,
		}
		for col, value := range want {
			if row[col] != value {
				t.Fatalf("row %d column %d: expected %q got %q", i+1, col, value, row[col])
			}
		}
		if row[7] == "" {
			t.Fatalf("row %d: expected a timestamp cell", i+1)
		}
	}
}

func TestOperationsTimestampIsDatetimeTyped(t *testing.T) {
	data, err := Operations(sampleOperations())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("produced document does not parse: %v", err)
	}
	defer file.Close()

	// a datetime cell stores an excel serial number, not text
	raw, err := file.GetCellValue(sheetName, "H2", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("reading cell failed: %v", err)
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		t.Fatalf("expected a serial number in the timestamp cell, got %q", raw)
	}
}

func TestOperationsEmptyLedger(t *testing.T) {
	data, err := Operations(nil)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("produced document does not parse: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	if err != nil {
		t.Fatalf("reading rows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d rows", len(rows))
	}
}
