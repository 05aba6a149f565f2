package entity

import "github.com/shopspring/decimal"

// DefaultTaxRate tasa usada cuando el registro no trae tax_rate.
var DefaultTaxRate = decimal.NewFromFloat(0.2)

// Financials libro único de ingresos/gastos. NetIncome, Tax y ProfitAfterTax son derivados:
// nunca se editan directamente, se recalculan con Recompute tras cada mutación.
type Financials struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	NetIncome      decimal.Decimal `json:"net_income"`
	Tax            decimal.Decimal `json:"tax"`
	ProfitAfterTax decimal.Decimal `json:"profit_after_tax"`
	Currency       string          `json:"currency,omitempty"`
}

// NewFinancials libro vacío con la tasa indicada.
func NewFinancials(taxRate decimal.Decimal) Financials {
	f := Financials{TaxRate: taxRate}
	f.Recompute()
	return f
}

// Recompute deriva net_income = revenue - expenses; tax = max(0, net × rate); profit = net - tax.
// Una tasa en cero se reemplaza por DefaultTaxRate.
func (f *Financials) Recompute() {
	if f.TaxRate.IsZero() {
		f.TaxRate = DefaultTaxRate
	}
	f.NetIncome = f.Revenue.Sub(f.Expenses)
	f.Tax = decimal.Max(decimal.Zero, f.NetIncome.Mul(f.TaxRate))
	f.ProfitAfterTax = f.NetIncome.Sub(f.Tax)
}
