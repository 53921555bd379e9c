package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Tipos de descuento global.
const (
	DiscountPercentage = entity.DiscountPercentage
	DiscountFixed      = entity.DiscountFixed
)

// Line datos de entrada de una línea.
type Line struct {
	Quantity        decimal.Decimal
	UnitPriceHT     decimal.Decimal
	DiscountPercent decimal.Decimal
	TVARate         decimal.Decimal // porcentaje, ej. 20
}

// LineTotals importes calculados de una línea, redondeados a 2 decimales.
type LineTotals struct {
	DiscountAmount decimal.Decimal
	TotalHT        decimal.Decimal
	TotalTVA       decimal.Decimal
	TotalTTC       decimal.Decimal
}

// Totals importes de la cabecera del documento.
type Totals struct {
	Lines          []LineTotals
	TotalHT        decimal.Decimal // suma de líneas antes del descuento global
	DiscountAmount decimal.Decimal // descuento global
	NetHT          decimal.Decimal
	TotalTVA       decimal.Decimal
	TotalTTC       decimal.Decimal
	DepositAmount  decimal.Decimal
}

// ComputeLine HT = cantidad × precio unitario − descuento de línea; IVA según la tasa de la línea.
func ComputeLine(l Line) LineTotals {
	gross := l.Quantity.Mul(l.UnitPriceHT)
	discount := decimal.Zero
	if l.DiscountPercent.IsPositive() {
		pct := decimal.Min(l.DiscountPercent, hundred)
		discount = gross.Mul(pct).Div(hundred).Round(2)
	}
	ht := gross.Sub(discount).Round(2)
	tva := ht.Mul(l.TVARate).Div(hundred).Round(2)
	return LineTotals{
		DiscountAmount: discount,
		TotalHT:        ht,
		TotalTVA:       tva,
		TotalTTC:       ht.Add(tva),
	}
}

// Compute calcula líneas y totales del documento.
// El descuento global se reparte proporcionalmente sobre el IVA de las líneas;
// un descuento fijo nunca supera el total HT.
func Compute(lines []Line, discountType string, discountValue, depositPercent decimal.Decimal) Totals {
	t := Totals{Lines: make([]LineTotals, 0, len(lines))}
	lineTVA := decimal.Zero
	for _, l := range lines {
		lt := ComputeLine(l)
		t.Lines = append(t.Lines, lt)
		t.TotalHT = t.TotalHT.Add(lt.TotalHT)
		lineTVA = lineTVA.Add(lt.TotalTVA)
	}

	if discountValue.IsPositive() {
		switch discountType {
		case DiscountPercentage:
			pct := decimal.Min(discountValue, hundred)
			t.DiscountAmount = t.TotalHT.Mul(pct).Div(hundred).Round(2)
		case DiscountFixed:
			t.DiscountAmount = decimal.Min(discountValue, t.TotalHT).Round(2)
		}
	}
	t.NetHT = t.TotalHT.Sub(t.DiscountAmount).Round(2)

	t.TotalTVA = lineTVA
	if t.DiscountAmount.IsPositive() && t.TotalHT.IsPositive() {
		t.TotalTVA = lineTVA.Mul(t.NetHT).Div(t.TotalHT).Round(2)
	}
	t.TotalTTC = t.NetHT.Add(t.TotalTVA).Round(2)

	if depositPercent.IsPositive() {
		pct := decimal.Min(depositPercent, hundred)
		t.DepositAmount = t.TotalTTC.Mul(pct).Div(hundred).Round(2)
	}
	return t
}
