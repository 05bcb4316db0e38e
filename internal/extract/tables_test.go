package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaaryaa/identity-engine/internal/docintel"
)

func salaryTable() docintel.Table {
	return docintel.Table{
		RowCount:    2,
		ColumnCount: 3,
		Cells: []docintel.Cell{
			{RowIndex: 0, ColumnIndex: 0, Content: "Sl. No."},
			{RowIndex: 0, ColumnIndex: 1, Content: "Particulars"},
			{RowIndex: 0, ColumnIndex: 2, Content: "Amount"},
			{RowIndex: 1, ColumnIndex: 0, Content: "1"},
			{RowIndex: 1, ColumnIndex: 1, Content: "Gross Salary"},
			{RowIndex: 1, ColumnIndex: 2, Content: "12,45,000.00"},
		},
	}
}

func TestFindNumericCellInRow(t *testing.T) {
	t.Run("returns original formatting", func(t *testing.T) {
		got, ok := findNumericCellInRow(salaryTable(), 1, minTableAmount)
		assert.True(t, ok)
		assert.Equal(t, "12,45,000.00", got)
	})

	t.Run("scans right to left", func(t *testing.T) {
		table := docintel.Table{
			RowCount:    1,
			ColumnCount: 3,
			Cells: []docintel.Cell{
				{RowIndex: 0, ColumnIndex: 0, Content: "5,00,000"},
				{RowIndex: 0, ColumnIndex: 1, Content: "note"},
				{RowIndex: 0, ColumnIndex: 2, Content: "7,50,000"},
			},
		}
		got, ok := findNumericCellInRow(table, 0, minTableAmount)
		assert.True(t, ok)
		assert.Equal(t, "7,50,000", got)
	})

	t.Run("serial numbers below floor are skipped", func(t *testing.T) {
		table := docintel.Table{
			RowCount:    1,
			ColumnCount: 3,
			Cells: []docintel.Cell{
				{RowIndex: 0, ColumnIndex: 0, Content: "8,40,000"},
				{RowIndex: 0, ColumnIndex: 1, Content: "Taxable Income"},
				{RowIndex: 0, ColumnIndex: 2, Content: "2"},
			},
		}
		got, ok := findNumericCellInRow(table, 0, minTableAmount)
		assert.True(t, ok)
		assert.Equal(t, "8,40,000", got)
	})

	t.Run("row without plausible number", func(t *testing.T) {
		_, ok := findNumericCellInRow(salaryTable(), 0, minTableAmount)
		assert.False(t, ok)
	})
}

func TestScanTablesForAmount(t *testing.T) {
	t.Run("keyword row harvested", func(t *testing.T) {
		got, ok := scanTablesForAmount([]docintel.Table{salaryTable()}, form16AmountKeywords, minTableAmount)
		assert.True(t, ok)
		assert.Equal(t, "12,45,000.00", got)
	})

	t.Run("keyword match is whitespace and case insensitive", func(t *testing.T) {
		table := docintel.Table{
			RowCount:    1,
			ColumnCount: 2,
			Cells: []docintel.Cell{
				{RowIndex: 0, ColumnIndex: 0, Content: "  TAXABLE\n INCOME  "},
				{RowIndex: 0, ColumnIndex: 1, Content: "9,10,000"},
			},
		}
		got, ok := scanTablesForAmount([]docintel.Table{table}, form16AmountKeywords, minTableAmount)
		assert.True(t, ok)
		assert.Equal(t, "9,10,000", got)
	})

	t.Run("first qualifying table wins", func(t *testing.T) {
		second := docintel.Table{
			RowCount:    1,
			ColumnCount: 2,
			Cells: []docintel.Cell{
				{RowIndex: 0, ColumnIndex: 0, Content: "Gross Salary"},
				{RowIndex: 0, ColumnIndex: 1, Content: "99,00,000"},
			},
		}
		got, ok := scanTablesForAmount([]docintel.Table{salaryTable(), second}, form16AmountKeywords, minTableAmount)
		assert.True(t, ok)
		assert.Equal(t, "12,45,000.00", got)
	})

	t.Run("no keyword rows", func(t *testing.T) {
		table := docintel.Table{
			RowCount:    1,
			ColumnCount: 2,
			Cells: []docintel.Cell{
				{RowIndex: 0, ColumnIndex: 0, Content: "House Rent Allowance"},
				{RowIndex: 0, ColumnIndex: 1, Content: "1,20,000"},
			},
		}
		_, ok := scanTablesForAmount([]docintel.Table{table}, form16AmountKeywords, minTableAmount)
		assert.False(t, ok)
	})
}
