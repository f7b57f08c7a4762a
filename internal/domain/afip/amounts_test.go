package afip_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: impuestos y líneas de prueba. Precisión 2 = moneda ARS.
// ──────────────────────────────────────────────────────────────────────────────

const pesos = int32(2)

func iva21() entity.Tax {
	return entity.Tax{ID: "iva21", Name: "IVA 21%", TaxGroup: entity.TaxGroupVAT, Rate: decimal.RequireFromString("0.21")}
}

func percepcionIIBB() entity.Tax {
	return entity.Tax{ID: "iibb", Name: "Percepción IIBB", TaxGroup: "IIBB", Rate: decimal.RequireFromString("0.035")}
}

func lineaDe(unitPrice, quantity, discount string, taxes ...entity.Tax) entity.InvoiceLine {
	return entity.InvoiceLine{
		ProductKind: entity.ProductKindGoods,
		Quantity:    decimal.RequireFromString(quantity),
		UnitPrice:   decimal.RequireFromString(unitPrice),
		Discount:    decimal.RequireFromString(discount),
		Taxes:       taxes,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeLineAmounts
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLineAmounts_CasoBasico(t *testing.T) {
	// 3 x $10.01 + IVA 21%: base 30.03, impuesto 6.3063 → 6.31 redondeado.
	line := lineaDe("10.01", "3", "0", iva21())

	a := afip.ComputeLineAmounts(line, afip.AllTaxes, pesos)

	assert.True(t, a.AmountUntaxed.Equal(decimal.RequireFromString("30.03")), "neto: %s", a.AmountUntaxed)
	assert.True(t, a.AmountTotal.Equal(decimal.RequireFromString("36.34")), "total: %s", a.AmountTotal)
	assert.True(t, a.AmountTax.Equal(decimal.RequireFromString("6.31")), "impuesto: %s", a.AmountTax)
	require.Len(t, a.Taxes, 1)
	assert.Equal(t, "iva21", a.Taxes[0].TaxID)
}

// El impuesto se obtiene como diferencia de totales redondeados, nunca como
// redondeo independiente: la identidad debe sostenerse al centavo siempre.
func TestComputeLineAmounts_IdentidadImpuestoIgualTotalMenosNeto(t *testing.T) {
	casos := []entity.InvoiceLine{
		lineaDe("10.01", "3", "0", iva21()),
		lineaDe("1.115", "7", "0", iva21(), percepcionIIBB()),
		lineaDe("999.99", "1", "12.5", iva21()),
		lineaDe("0.01", "1", "0", iva21()),
		lineaDe("100", "2", "100", iva21()), // descuento total
		lineaDe("55.55", "3", "33.33"),      // sin impuestos
	}
	for _, line := range casos {
		a := afip.ComputeLineAmounts(line, afip.AllTaxes, pesos)
		assert.True(t, a.AmountTax.Equal(a.AmountTotal.Sub(a.AmountUntaxed)),
			"identidad rota: tax=%s total=%s neto=%s", a.AmountTax, a.AmountTotal, a.AmountUntaxed)
	}
}

func TestComputeLineAmounts_DescuentoAplicaSobrePrecioUnitario(t *testing.T) {
	// $200 con 25% de descuento = $150 efectivos, 2 unidades = $300 neto.
	line := lineaDe("200", "2", "25", iva21())

	a := afip.ComputeLineAmounts(line, afip.AllTaxes, pesos)

	assert.True(t, a.AmountUntaxed.Equal(decimal.RequireFromString("300")))
	assert.True(t, a.AmountTotal.Equal(decimal.RequireFromString("363")))
}

func TestComputeLineAmounts_FiltroSinIVA(t *testing.T) {
	line := lineaDe("100", "1", "0", iva21(), percepcionIIBB())

	a := afip.ComputeLineAmounts(line, afip.AllExceptVAT, pesos)

	// Solo la percepción IIBB (3.5%) entra en el cálculo.
	assert.True(t, a.AmountTax.Equal(decimal.RequireFromString("3.5")), "impuesto: %s", a.AmountTax)
	require.Len(t, a.Taxes, 1)
	assert.Equal(t, "iibb", a.Taxes[0].TaxID)
}

func TestComputeLineAmounts_SinPrecisionNoRedondea(t *testing.T) {
	line := lineaDe("1.115", "3", "0", iva21())

	a := afip.ComputeLineAmounts(line, afip.AllTaxes, afip.NoRounding)

	// 3.345 * 1.21 = 4.04745, sin redondear.
	assert.True(t, a.AmountUntaxed.Equal(decimal.RequireFromString("3.345")), "neto: %s", a.AmountUntaxed)
	assert.True(t, a.AmountTotal.Equal(decimal.RequireFromString("4.04745")), "total: %s", a.AmountTotal)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeInvoiceAmounts
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeInvoiceAmounts_EsLaSumaDeSusLineas(t *testing.T) {
	lines := []entity.InvoiceLine{
		lineaDe("10.01", "3", "0", iva21()),
		lineaDe("55.55", "2", "10", iva21(), percepcionIIBB()),
		lineaDe("7", "1", "0"),
	}

	total := afip.ComputeInvoiceAmounts(lines, afip.AllLines, afip.AllTaxes, pesos)

	var wantUntaxed, wantTax, wantTotal decimal.Decimal
	var wantTaxLines int
	for _, line := range lines {
		a := afip.ComputeLineAmounts(line, afip.AllTaxes, pesos)
		wantUntaxed = wantUntaxed.Add(a.AmountUntaxed)
		wantTax = wantTax.Add(a.AmountTax)
		wantTotal = wantTotal.Add(a.AmountTotal)
		wantTaxLines += len(a.Taxes)
	}
	assert.True(t, total.AmountUntaxed.Equal(wantUntaxed))
	assert.True(t, total.AmountTax.Equal(wantTax))
	assert.True(t, total.AmountTotal.Equal(wantTotal))
	assert.Len(t, total.Taxes, wantTaxLines, "los detalles de impuesto se concatenan")
}

func TestComputeInvoiceAmounts_NoDependeDelOrden(t *testing.T) {
	a := lineaDe("10.01", "3", "0", iva21())
	b := lineaDe("55.55", "2", "10", percepcionIIBB())

	r1 := afip.ComputeInvoiceAmounts([]entity.InvoiceLine{a, b}, afip.AllLines, afip.AllTaxes, pesos)
	r2 := afip.ComputeInvoiceAmounts([]entity.InvoiceLine{b, a}, afip.AllLines, afip.AllTaxes, pesos)

	assert.True(t, r1.AmountTotal.Equal(r2.AmountTotal))
	assert.True(t, r1.AmountTax.Equal(r2.AmountTax))
}

func TestComputeInvoiceAmounts_FiltroDeLineas(t *testing.T) {
	exenta := lineaDe("100", "1", "0")
	gravada := lineaDe("100", "1", "0", iva21())
	soloGravadas := func(l entity.InvoiceLine) bool { return len(l.Taxes) > 0 }

	a := afip.ComputeInvoiceAmounts([]entity.InvoiceLine{exenta, gravada}, soloGravadas, afip.AllTaxes, pesos)

	assert.True(t, a.AmountUntaxed.Equal(decimal.RequireFromString("100")))
	assert.True(t, a.AmountTax.Equal(decimal.RequireFromString("21")))
}

func TestComputeInvoiceAmounts_SinLineas(t *testing.T) {
	a := afip.ComputeInvoiceAmounts(nil, afip.AllLines, afip.AllTaxes, pesos)
	assert.True(t, a.AmountTotal.IsZero())
	assert.Empty(t, a.Taxes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precios derivados (unitario/subtotal, con y sin IVA)
// ──────────────────────────────────────────────────────────────────────────────

// Para una línea de cantidad 1 y sin descuento, el total con AllTaxes es
// exactamente el precio unitario IVA incluido.
func TestComputeDisplayPrices_UnitarioIVAIncluidoCoincideConTotal(t *testing.T) {
	line := lineaDe("123.45", "1", "0", iva21())

	a := afip.ComputeLineAmounts(line, afip.AllTaxes, pesos)
	p := afip.ComputeDisplayPrices(line, pesos)

	assert.True(t, p.PriceUnitVATIncluded.Equal(a.AmountTotal))
	assert.True(t, p.PriceSubtotalVATIncluded.Equal(a.AmountTotal), "con cantidad 1, unitario y subtotal coinciden")
}

func TestComputeDisplayPrices_SinIVAExcluyeSoloElIVA(t *testing.T) {
	line := lineaDe("100", "2", "0", iva21(), percepcionIIBB())

	p := afip.ComputeDisplayPrices(line, pesos)

	// Unitario sin IVA: 100 + percepción 3.5 = 103.5; con IVA: + 21 = 124.5.
	assert.True(t, p.PriceUnitNotVATIncluded.Equal(decimal.RequireFromString("103.5")), "sin IVA: %s", p.PriceUnitNotVATIncluded)
	assert.True(t, p.PriceUnitVATIncluded.Equal(decimal.RequireFromString("124.5")), "con IVA: %s", p.PriceUnitVATIncluded)
	assert.True(t, p.PriceSubtotalVATIncluded.Equal(decimal.RequireFromString("249")), "subtotal con IVA: %s", p.PriceSubtotalVATIncluded)
}
