package afip

import (
	"time"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// DeriveConcept deriva el concepto AFIP del comprobante desde los tipos de
// producto de sus líneas: solo productos → "1", solo servicios → "2",
// ambos → "3". Sin líneas, o con algún tipo desconocido, el concepto queda
// sin determinar (vacío); informarlo así a la AFIP debe rechazarse aguas
// abajo. El resultado no depende del orden de las líneas.
func DeriveConcept(lines []entity.InvoiceLine) string {
	var goods, services, other bool
	for _, line := range lines {
		switch line.ProductKind {
		case entity.ProductKindGoods:
			goods = true
		case entity.ProductKindService:
			services = true
		default:
			other = true
		}
	}
	switch {
	case other:
		return afip.ConceptUndetermined
	case goods && services:
		return afip.ConceptMixed
	case goods:
		return afip.ConceptGoods
	case services:
		return afip.ConceptServices
	}
	return afip.ConceptUndetermined
}

// ConceptIncludesServices indica si el concepto obliga a informar período de
// servicio (servicios o mixto).
func ConceptIncludesServices(concept string) bool {
	return concept == afip.ConceptServices || concept == afip.ConceptMixed
}

// DefaultServicePeriod devuelve el período de servicio por defecto: el mes
// calendario anterior a today.
func DefaultServicePeriod(today time.Time) (start, end time.Time) {
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	end = firstOfMonth.AddDate(0, 0, -1)
	start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, today.Location())
	return start, end
}
