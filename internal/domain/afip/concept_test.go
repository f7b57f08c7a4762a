package afip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	pkgafip "github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

func lineaDeTipo(kind string) entity.InvoiceLine {
	return entity.InvoiceLine{ProductKind: kind}
}

func TestDeriveConcept_SoloProductos(t *testing.T) {
	lines := []entity.InvoiceLine{
		lineaDeTipo(entity.ProductKindGoods),
		lineaDeTipo(entity.ProductKindGoods),
	}
	assert.Equal(t, pkgafip.ConceptGoods, afip.DeriveConcept(lines))
}

func TestDeriveConcept_SoloServicios(t *testing.T) {
	lines := []entity.InvoiceLine{lineaDeTipo(entity.ProductKindService)}
	assert.Equal(t, pkgafip.ConceptServices, afip.DeriveConcept(lines))
}

func TestDeriveConcept_Mixto_SiYSoloSiHayAmbos(t *testing.T) {
	lines := []entity.InvoiceLine{
		lineaDeTipo(entity.ProductKindGoods),
		lineaDeTipo(entity.ProductKindService),
	}
	assert.Equal(t, pkgafip.ConceptMixed, afip.DeriveConcept(lines))
}

// El concepto no depende del orden de las líneas.
func TestDeriveConcept_SimetricoAnteReordenamiento(t *testing.T) {
	a := []entity.InvoiceLine{lineaDeTipo(entity.ProductKindService), lineaDeTipo(entity.ProductKindGoods)}
	b := []entity.InvoiceLine{lineaDeTipo(entity.ProductKindGoods), lineaDeTipo(entity.ProductKindService)}
	assert.Equal(t, afip.DeriveConcept(a), afip.DeriveConcept(b))
}

func TestDeriveConcept_SinLineas_SinDeterminar(t *testing.T) {
	assert.Equal(t, pkgafip.ConceptUndetermined, afip.DeriveConcept(nil))
}

func TestDeriveConcept_TipoDesconocido_SinDeterminar(t *testing.T) {
	lines := []entity.InvoiceLine{
		lineaDeTipo(entity.ProductKindGoods),
		lineaDeTipo("digital"), // tipo fuera del catálogo
	}
	assert.Equal(t, pkgafip.ConceptUndetermined, afip.DeriveConcept(lines))
}

func TestConceptIncludesServices(t *testing.T) {
	assert.True(t, afip.ConceptIncludesServices(pkgafip.ConceptServices))
	assert.True(t, afip.ConceptIncludesServices(pkgafip.ConceptMixed))
	assert.False(t, afip.ConceptIncludesServices(pkgafip.ConceptGoods))
	assert.False(t, afip.ConceptIncludesServices(pkgafip.ConceptUndetermined))
}

// ──────────────────────────────────────────────────────────────────────────────
// Período de servicio por defecto: el mes calendario anterior.
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultServicePeriod_MesAnterior(t *testing.T) {
	today := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	start, end := afip.DefaultServicePeriod(today)

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), end)
}

func TestDefaultServicePeriod_CruceDeAnio(t *testing.T) {
	today := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	start, end := afip.DefaultServicePeriod(today)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}
