package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/viglianco/go-sales-ledger/internal/common"
)

// ManualField names a manually entered column of a daily row.
type ManualField string

const (
	ManualFieldAnulado        ManualField = "anulado"
	ManualFieldPayments       ManualField = "payments"
	ManualFieldDebits         ManualField = "debits"
	ManualFieldExpenses       ManualField = "expenses"
	ManualFieldVouchers       ManualField = "vouchers"
	ManualFieldClosingBalance ManualField = "closingBalance"
	ManualFieldOpeningBalance ManualField = "openingBalance"
)

// PersistedManualFields are sent with every upsert; the opening balance only travels with the anchor row.
var PersistedManualFields = []ManualField{
	ManualFieldAnulado,
	ManualFieldPayments,
	ManualFieldDebits,
	ManualFieldExpenses,
	ManualFieldVouchers,
	ManualFieldClosingBalance,
}

var AllManualFields = append(PersistedManualFields[:len(PersistedManualFields):len(PersistedManualFields)], ManualFieldOpeningBalance)

// legacy column names used by the spreadsheet exports
var manualFieldAliases = map[string]ManualField{
	"fc_inicial": ManualFieldOpeningBalance,
	"fcinicial":  ManualFieldOpeningBalance,
	"fc_final":   ManualFieldClosingBalance,
	"fcfinal":    ManualFieldClosingBalance,
	"pagos":      ManualFieldPayments,
	"debitos":    ManualFieldDebits,
	"gastos":     ManualFieldExpenses,
	"vales":      ManualFieldVouchers,
}

func ParseManualField(s string) (ManualField, error) {
	key := strings.TrimSpace(s)
	for _, f := range AllManualFields {
		if strings.EqualFold(string(f), key) {
			return f, nil
		}
	}
	if f, ok := manualFieldAliases[strings.ToLower(key)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownManualField, s)
}

func (f ManualField) String() string {
	return string(f)
}

// ManualFields holds the stored manual values of a row. A nil field was never entered.
type ManualFields struct {
	Anulado        *decimal.Decimal
	Payments       *decimal.Decimal
	Debits         *decimal.Decimal
	Expenses       *decimal.Decimal
	Vouchers       *decimal.Decimal
	ClosingBalance *decimal.Decimal
	OpeningBalance *decimal.Decimal
}

func (m ManualFields) Get(f ManualField) *decimal.Decimal {
	switch f {
	case ManualFieldAnulado:
		return m.Anulado
	case ManualFieldPayments:
		return m.Payments
	case ManualFieldDebits:
		return m.Debits
	case ManualFieldExpenses:
		return m.Expenses
	case ManualFieldVouchers:
		return m.Vouchers
	case ManualFieldClosingBalance:
		return m.ClosingBalance
	case ManualFieldOpeningBalance:
		return m.OpeningBalance
	}
	return nil
}

func (m *ManualFields) Set(f ManualField, v *decimal.Decimal) {
	switch f {
	case ManualFieldAnulado:
		m.Anulado = v
	case ManualFieldPayments:
		m.Payments = v
	case ManualFieldDebits:
		m.Debits = v
	case ManualFieldExpenses:
		m.Expenses = v
	case ManualFieldVouchers:
		m.Vouchers = v
	case ManualFieldClosingBalance:
		m.ClosingBalance = v
	case ManualFieldOpeningBalance:
		m.OpeningBalance = v
	}
}
