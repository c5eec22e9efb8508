package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/okravchuk/matoblik/internal/domain"
)

// Filename and ContentType describe the attachment the report is served as.
const (
	Filename    = "material_accounting_operations.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Sheet1"
)

// Header is the fixed first row of the report, kept verbatim from the legacy
// system for downstream consumers.
var Header = []string{
	"Користувач",
	"Посада",
	"Предмет",
	"Кількість",
	"Постачальник",
	"Отримувач",
	"Дія",
	"Timestamp",
}

// Operations renders the given operations, in order, into a single-sheet
// XLSX document. Quantity is written as an integer cell and the timestamp as
// a datetime-typed cell. The input is not mutated.
func Operations(operations []domain.MaterialOperation) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	header := make([]any, len(Header))
	for i, label := range Header {
		header[i] = label
	}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, op := range operations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			op.Username,
			op.Position,
			op.Subject,
			op.Quantity,
			op.Sender,
			op.Receiver,
			op.Action,
			op.Timestamp,
		}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
