package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/marmos91/dittofs-ufs/pkg/optional"
)

// TableRenderer is implemented by types that can render themselves as a table.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// PrintTable writes data as a borderless, left-aligned table.
func PrintTable(w io.Writer, data TableRenderer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(data.Rows())
	table.Render()
	return nil
}

// FieldTable lists optional fields with their presence.
//
//	FIELD       SET  VALUE
//	user        yes  alice
//	group       no
type FieldTable struct {
	rows [][]string
}

// NewFieldTable creates an empty FieldTable.
func NewFieldTable() *FieldTable {
	return &FieldTable{}
}

// Add appends a field. Absent values render with an empty value column;
// a present empty string renders as "".
func (t *FieldTable) Add(name string, v optional.Value[string]) *FieldTable {
	s, ok := v.Get()
	switch {
	case !ok:
		t.rows = append(t.rows, []string{name, "no", ""})
	case s == "":
		t.rows = append(t.rows, []string{name, "yes", `""`})
	default:
		t.rows = append(t.rows, []string{name, "yes", s})
	}
	return t
}

// Headers implements TableRenderer.
func (t *FieldTable) Headers() []string {
	return []string{"Field", "Set", "Value"}
}

// Rows implements TableRenderer.
func (t *FieldTable) Rows() [][]string {
	return t.rows
}
