package components

import (
	"cwc-viewer/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const matchColumnWidth = 180

// MatchColumns are the table headings, in column order.
var MatchColumns = []string{"Date", "Time", "Club1", "Club2", "Venue"}

// MatchTable lists matches one per row.
type MatchTable struct {
	table *widget.Table
	rows  []models.Match

	matchSelectedHandler func(models.Match)
}

// NewMatchTable creates an empty match table
func NewMatchTable() *MatchTable {
	mt := &MatchTable{}

	mt.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(mt.rows), len(MatchColumns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row < 0 || id.Row >= len(mt.rows) {
				label.SetText("")
				return
			}
			label.SetText(CellText(mt.rows[id.Row], id.Col))
		},
	)
	mt.table.ShowHeaderColumn = false
	mt.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	}
	mt.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		if id.Col >= 0 && id.Col < len(MatchColumns) {
			label.SetText(MatchColumns[id.Col])
		}
	}

	mt.table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(mt.rows) {
			return
		}
		if mt.matchSelectedHandler != nil {
			mt.matchSelectedHandler(mt.rows[id.Row])
		}
	}

	for col := range MatchColumns {
		mt.table.SetColumnWidth(col, matchColumnWidth)
	}

	return mt
}

// SetRows replaces the table contents and drops any cell selection.
func (mt *MatchTable) SetRows(rows []models.Match) {
	if equalMatches(mt.rows, rows) {
		return
	}
	mt.rows = append([]models.Match(nil), rows...)
	mt.table.UnselectAll()
	mt.table.Refresh()
}

func (mt *MatchTable) SetMatchSelectedHandler(handler func(models.Match)) {
	mt.matchSelectedHandler = handler
}

// RowCount returns the number of rows shown.
func (mt *MatchTable) RowCount() int {
	return len(mt.rows)
}

// GetWidget returns the table widget
func (mt *MatchTable) GetWidget() fyne.CanvasObject {
	return mt.table
}

// CellText returns the text of column col for match m.
func CellText(m models.Match, col int) string {
	switch col {
	case 0:
		return m.Date
	case 1:
		return m.Time
	case 2:
		return m.HomeClub
	case 3:
		return m.AwayClub
	case 4:
		return m.VenueCity
	default:
		return ""
	}
}

func equalMatches(a, b []models.Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
