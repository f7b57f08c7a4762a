// Package pdf implementa la representación imprimible del comprobante
// (Factura/Nota de Crédito A, B o C según la clase de documento del diario).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + CUIT  │  Comprobante + N° + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email / Cond. IVA                │
//	│  RECEPTOR: Nombre + CUIT/DNI + Cond. IVA                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal (± IVA)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Neto / IVA / TOTAL (discriminado solo en letra A) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: concepto + período de servicios                    │
//	└─────────────────────────────────────────────────────────────┘
//
// En letra A los precios van netos con el IVA discriminado por columna; en
// letra B y C se muestran precios finales y no se abre el IVA.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/ejadull/l10n-ar-invoice/internal/application/billing"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	pkgafip "github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, data *appbilling.InvoicePDFData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(data.DocumentClass), true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(data))
	m.AddRows(receptorRow(data.Partner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(data.DiscriminateVAT))
	for _, r := range tableLineRows(data) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Invoice, data.DiscriminateVAT))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(data.Invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// documentTitle devuelve el nombre regulatorio del comprobante
// ("Factura A", "Nota de Crédito B"...) o un genérico si la clase falta.
func documentTitle(dc *entity.DocumentClass) string {
	if dc == nil || dc.Name == "" {
		return "Comprobante"
	}
	return dc.Name
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + CUIT (izq) y tipo de comprobante + N° + fecha (der).
func headerRow(data *appbilling.InvoicePDFData) core.Row {
	inv := data.Invoice
	fecha := inv.Date.Format("02/01/2006")
	title := documentTitle(data.DocumentClass)
	codigo := ""
	if data.DocumentClass != nil {
		codigo = fmt.Sprintf("Cód. %02d", data.DocumentClass.AFIPCode)
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CUIT: "+cuitForDisplay(data.CompanyTaxID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title+"  "+codigo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(inv.Number, "SIN NÚMERO"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos del emisor (empresa).
func emisorRow(data *appbilling.InvoicePDFData) core.Row {
	c := data.Company
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(c.Address, "—"),
				nonEmpty(c.Phone, "—"),
				nonEmpty(c.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// receptorRow: datos del receptor con su condición frente al IVA.
func receptorRow(partner *entity.Partner) core.Row {
	doc := "—"
	if partner.DocumentNumber != "" {
		doc = partner.DocumentTypeCode + " " + partner.DocumentNumber
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(partner.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Cond. IVA: %s   |   IIBB: %s",
				doc,
				responsibilityName(partner.ResponsibilityCode),
				nonEmpty(partner.IIBB, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas. En letra A se agrega la
// columna de IVA.
func tableHeaderRow(discriminateVAT bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	if discriminateVAT {
		return row.New(8).Add(
			h("Cant.", 1, align.Center),
			h("Descripción", 5, align.Left),
			h("P. Unit. Neto", 2, align.Right),
			h("IVA", 1, align.Center),
			h("Subtotal Neto", 3, align.Right),
		)
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("P. Unitario", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea. Los precios salen del mismo cálculo de
// importes que los totales: neto en letra A, final en B y C.
func tableLineRows(data *appbilling.InvoicePDFData) []core.Row {
	result := make([]core.Row, 0, len(data.Lines))
	for _, l := range data.Lines {
		display := afip.ComputeDisplayPrices(l, data.Invoice.CurrencyDecimals)
		unit, subtotal := display.PriceUnitVATIncluded, display.PriceSubtotalVATIncluded
		if data.DiscriminateVAT {
			unit, subtotal = display.PriceUnitNotVATIncluded, display.PriceSubtotalNotVATIncluded
		}
		cells := []core.Col{
			col.New(1).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		}
		if data.DiscriminateVAT {
			cells = append(cells,
				col.New(5).Add(text.New(l.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
				col.New(2).Add(text.New("$"+unit.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
				col.New(1).Add(text.New(vatRateLabel(l.Taxes), props.Text{Size: 8, Align: align.Center, Top: 1})),
				col.New(3).Add(text.New("$"+subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			)
		} else {
			cells = append(cells,
				col.New(6).Add(text.New(l.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
				col.New(2).Add(text.New("$"+unit.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
				col.New(3).Add(text.New("$"+subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			)
		}
		result = append(result, row.New(7).Add(cells...))
	}
	return result
}

// vatRateLabel devuelve la alícuota de IVA de la línea ("21%") o "-" si no tiene.
func vatRateLabel(taxes []entity.Tax) string {
	for _, t := range taxes {
		if t.IsVAT() {
			return t.Rate.Mul(decimal.NewFromInt(100)).String() + "%"
		}
	}
	return "-"
}

// totalsRow: bloque de totales. En letra A se abren neto e IVA; en B y C solo
// se muestra el total final.
func totalsRow(inv *entity.Invoice, discriminateVAT bool) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	if !discriminateVAT {
		return row.New(12).Add(
			col.New(6),
			col.New(3).Add(grandLabel("TOTAL:")),
			col.New(3).Add(grandValue("$"+inv.AmountTotal.StringFixed(2))),
		)
	}
	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Importe neto:"),
			label("IVA:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+inv.AmountUntaxed.StringFixed(2)),
			value("$"+inv.AmountTax.StringFixed(2)),
			grandValue("$"+inv.AmountTotal.StringFixed(2)),
		),
		col.New(3),
	)
}

// footerRows: concepto AFIP y período de servicios cuando aplica.
func footerRows(inv *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New("Concepto: "+conceptName(inv.Concept), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)),
	}
	if inv.ServiceStart != nil && inv.ServiceEnd != nil {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Período de servicios: %s al %s",
				inv.ServiceStart.Format("02/01/2006"),
				inv.ServiceEnd.Format("02/01/2006"),
			), props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Documento no válido como factura electrónica hasta su autorización por AFIP. "+
			"Conserve este comprobante como soporte fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func conceptName(code string) string {
	switch code {
	case pkgafip.ConceptGoods:
		return "Productos"
	case pkgafip.ConceptServices:
		return "Servicios"
	case pkgafip.ConceptMixed:
		return "Productos y Servicios"
	}
	return "—"
}

func responsibilityName(code string) string {
	switch code {
	case pkgafip.ResponsibilityRI:
		return "Responsable Inscripto"
	case pkgafip.ResponsibilityMT:
		return "Monotributo"
	case pkgafip.ResponsibilityCF:
		return "Consumidor Final"
	case pkgafip.ResponsibilityEX:
		return "Exento"
	case pkgafip.ResponsibilityNR:
		return "No Responsable"
	}
	return "—"
}

// cuitForDisplay formatea un CUIT de 11 dígitos como XX-XXXXXXXX-X.
// Acepta el tax_id con prefijo de país y valores ya formateados.
func cuitForDisplay(taxID string) string {
	digits := pkgafip.NormalizeDigits(taxID)
	if len(digits) != 11 {
		return nonEmpty(taxID, "—")
	}
	return digits[:2] + "-" + digits[2:10] + "-" + digits[10:]
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
