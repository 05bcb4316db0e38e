package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/textutil"
)

var reNonNumeric = regexp.MustCompile(`[^0-9.]`)

// cellAmount parses a cell's numeric content after stripping everything but
// digits and the decimal point.
func cellAmount(content string) (float64, bool) {
	stripped := reNonNumeric.ReplaceAllString(content, "")
	if stripped == "" || stripped == "." {
		return 0, false
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// findNumericCellInRow walks the cells of one row in descending column
// order and returns the original text of the first cell whose numeric
// content is at least min. Original formatting (thousands separators) is
// preserved on the returned value.
func findNumericCellInRow(table docintel.Table, rowIndex int, min float64) (string, bool) {
	row := make([]docintel.Cell, 0, table.ColumnCount)
	for _, c := range table.Cells {
		if c.RowIndex == rowIndex {
			row = append(row, c)
		}
	}
	sort.Slice(row, func(i, j int) bool { return row[i].ColumnIndex < row[j].ColumnIndex })

	for i := len(row) - 1; i >= 0; i-- {
		if v, ok := cellAmount(row[i].Content); ok && v >= min {
			return strings.TrimSpace(row[i].Content), true
		}
	}
	return "", false
}

// scanTablesForAmount hunts every detected table for a row whose label cell
// contains one of the keywords (on lower-cased, whitespace-collapsed text)
// and harvests that row's rightmost plausible numeric cell. The first
// qualifying table+row wins; there is no table-wide ranking.
func scanTablesForAmount(tables []docintel.Table, keywords []string, min float64) (string, bool) {
	for _, table := range tables {
		seen := make(map[int]bool, table.RowCount)
		for _, cell := range table.Cells {
			if seen[cell.RowIndex] {
				continue
			}
			norm := strings.ToLower(textutil.CollapseWhitespace(cell.Content))
			if !containsAny(norm, keywords...) {
				continue
			}
			seen[cell.RowIndex] = true
			if amount, ok := findNumericCellInRow(table, cell.RowIndex, min); ok {
				return amount, true
			}
		}
	}
	return "", false
}
