// Package afip contiene las reglas de dominio de la facturación argentina:
// cálculo de importes por línea y por comprobante, derivación del concepto,
// elegibilidad de diarios y la validación previa a confirmar ante AFIP.
package afip

import (
	"github.com/shopspring/decimal"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
)

// NoRounding indica que el cálculo no debe redondear (línea sin factura
// asociada, sin precisión de moneda conocida).
const NoRounding int32 = -1

// TaxFilter selecciona el subconjunto de impuestos de una línea a aplicar.
type TaxFilter func(entity.Tax) bool

// LineFilter selecciona las líneas de un comprobante a agregar.
type LineFilter func(entity.InvoiceLine) bool

// Filtros canónicos.
var (
	AllTaxes     TaxFilter  = func(entity.Tax) bool { return true }
	AllExceptVAT TaxFilter  = func(t entity.Tax) bool { return !t.IsVAT() }
	AllLines     LineFilter = func(entity.InvoiceLine) bool { return true }
)

// TaxDetail es un impuesto aplicado, con su base imponible y monto.
type TaxDetail struct {
	TaxID  string
	Name   string
	Base   decimal.Decimal
	Amount decimal.Decimal
}

// Amounts es el resultado del cálculo de importes de una línea o comprobante.
// Invariante: AmountTax = AmountTotal - AmountUntaxed, exacto al centavo.
type Amounts struct {
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
	Taxes         []TaxDetail
}

// computeAll aplica los impuestos porcentuales sobre price*quantity y devuelve
// el neto, el total con impuestos y el detalle por impuesto. Es el equivalente
// de la utilidad de impuestos de la plataforma contable.
func computeAll(price, quantity decimal.Decimal, taxes []entity.Tax, precision int32) (total, totalIncluded decimal.Decimal, details []TaxDetail) {
	base := price.Mul(quantity)
	total = base
	totalIncluded = base
	for _, t := range taxes {
		amount := base.Mul(t.Rate)
		if precision != NoRounding {
			amount = amount.Round(precision)
		}
		totalIncluded = totalIncluded.Add(amount)
		details = append(details, TaxDetail{TaxID: t.ID, Name: t.Name, Base: base, Amount: amount})
	}
	return total, totalIncluded, details
}

// effectivePrice aplica el descuento porcentual al precio unitario.
func effectivePrice(line entity.InvoiceLine) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(line.Discount.Div(decimal.NewFromInt(100)))
	return line.UnitPrice.Mul(factor)
}

// filterTaxes devuelve los impuestos de la línea que pasan el filtro.
func filterTaxes(taxes []entity.Tax, filter TaxFilter) []entity.Tax {
	out := make([]entity.Tax, 0, len(taxes))
	for _, t := range taxes {
		if filter(t) {
			out = append(out, t)
		}
	}
	return out
}

// ComputeLineAmounts calcula los importes de una línea aplicando taxFilter.
// precision es la precisión de la moneda del comprobante (NoRounding si la
// línea no pertenece a un comprobante). AmountTax se obtiene como diferencia
// de los totales ya redondeados, nunca como redondeo independiente, para que
// el impuesto de línea y el agregado concilien al centavo.
func ComputeLineAmounts(line entity.InvoiceLine, taxFilter TaxFilter, precision int32) Amounts {
	price := effectivePrice(line)
	total, totalIncluded, details := computeAll(price, line.Quantity, filterTaxes(line.Taxes, taxFilter), precision)
	if precision != NoRounding {
		total = total.Round(precision)
		totalIncluded = totalIncluded.Round(precision)
	}
	return Amounts{
		AmountUntaxed: total,
		AmountTax:     totalIncluded.Sub(total),
		AmountTotal:   totalIncluded,
		Taxes:         details,
	}
}

// ComputeInvoiceAmounts agrega los importes de las líneas que pasan lineFilter.
// La agregación es aditiva y no depende del orden de las líneas, de modo que
// un subconjunto puede gravarse distinto (líneas exentas) sin romper totales.
func ComputeInvoiceAmounts(lines []entity.InvoiceLine, lineFilter LineFilter, taxFilter TaxFilter, precision int32) Amounts {
	var sum Amounts
	for _, line := range lines {
		if !lineFilter(line) {
			continue
		}
		a := ComputeLineAmounts(line, taxFilter, precision)
		sum.AmountUntaxed = sum.AmountUntaxed.Add(a.AmountUntaxed)
		sum.AmountTax = sum.AmountTax.Add(a.AmountTax)
		sum.AmountTotal = sum.AmountTotal.Add(a.AmountTotal)
		sum.Taxes = append(sum.Taxes, a.Taxes...)
	}
	return sum
}

// DisplayPrices son los cuatro precios derivados que se muestran por línea:
// unitario y subtotal, con y sin IVA.
type DisplayPrices struct {
	PriceUnitVATIncluded        decimal.Decimal
	PriceSubtotalVATIncluded    decimal.Decimal
	PriceUnitNotVATIncluded     decimal.Decimal
	PriceSubtotalNotVATIncluded decimal.Decimal
}

// priceCalc devuelve el total con los impuestos filtrados para una cantidad
// dada (el precio "IVA incluido" usa AllTaxes; "sin IVA" usa AllExceptVAT).
func priceCalc(line entity.InvoiceLine, taxFilter TaxFilter, quantity decimal.Decimal, precision int32) decimal.Decimal {
	price := effectivePrice(line)
	_, totalIncluded, _ := computeAll(price, quantity, filterTaxes(line.Taxes, taxFilter), precision)
	if precision != NoRounding {
		totalIncluded = totalIncluded.Round(precision)
	}
	return totalIncluded
}

// ComputeDisplayPrices calcula los cuatro precios derivados de la línea:
// el mismo cálculo de importes invocado con cantidad forzada a 1 (unitario)
// o la cantidad de la línea (subtotal).
func ComputeDisplayPrices(line entity.InvoiceLine, precision int32) DisplayPrices {
	one := decimal.NewFromInt(1)
	return DisplayPrices{
		PriceUnitVATIncluded:        priceCalc(line, AllTaxes, one, precision),
		PriceSubtotalVATIncluded:    priceCalc(line, AllTaxes, line.Quantity, precision),
		PriceUnitNotVATIncluded:     priceCalc(line, AllExceptVAT, one, precision),
		PriceSubtotalNotVATIncluded: priceCalc(line, AllExceptVAT, line.Quantity, precision),
	}
}
