package salesboard

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/common/dateutil"
	"github.com/viglianco/go-sales-ledger/internal/ledger"
	"github.com/viglianco/go-sales-ledger/internal/models"
)

const (
	anchorMark   = "*"
	unsyncedMark = "!"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	amountStyle   = cellStyle.Align(lipgloss.Right)
	unsyncedStyle = cellStyle.Foreground(lipgloss.Color("9"))
)

var renderHeaders = []string{
	"", "Fecha", "Lote", "Ventas", "Saldo inicial", "Anulado", "Pagos", "Débitos",
	"Gastos", "Vales", "Saldo final", "Total rendición",
}

// Render draws the projection as a table, ascending by date. The anchor row is marked with "*"
// and rows listed in pending are marked with "!".
func Render(p ledger.Projection, pending map[models.ManualEntryKey]error) string {
	rows := make([][]string, 0, p.Len())
	for _, row := range p.Rows() {
		mark := ""
		if row.Anchor {
			mark = anchorMark
		}
		if _, ok := pending[models.ManualEntryKey{BatchID: row.Record.BatchID, Date: row.Record.Date}]; ok {
			mark += unsyncedMark
		}

		v := row.Values
		rows = append(rows, []string{
			mark,
			dateutil.FormatNullableDate(&row.Record.Date, common.DateFormatDDMMYYYYWithSlash),
			strconv.FormatInt(row.Record.BatchID, 10),
			ledger.Format(row.Record.Sales),
			ledger.Format(row.OpeningBalance),
			ledger.Format(v.Anulado),
			ledger.Format(v.Payments),
			ledger.Format(v.Debits),
			ledger.Format(v.Expenses),
			ledger.Format(v.Vouchers),
			ledger.Format(row.ClosingBalance),
			ledger.Format(row.SettlementTotal),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(renderHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 && row >= 0 && row < len(rows) && strings.HasSuffix(rows[row][0], unsyncedMark):
				return unsyncedStyle
			case col >= 3:
				return amountStyle
			}
			return cellStyle
		})

	return t.String()
}
