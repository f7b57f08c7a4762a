package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
	pkgafip "github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// CreateInvoiceUseCase crea comprobantes en borrador con totales, concepto y
// período de servicio ya calculados, y los expone con precios de exhibición.
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	companyRepo repository.CompanyRepository
	partnerRepo repository.PartnerRepository
	journalRepo repository.JournalRepository
	productRepo repository.ProductRepository
	taxRepo     repository.TaxRepository
	invoiceRepo repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	companyRepo repository.CompanyRepository,
	partnerRepo repository.PartnerRepository,
	journalRepo repository.JournalRepository,
	productRepo repository.ProductRepository,
	taxRepo repository.TaxRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		companyRepo: companyRepo,
		partnerRepo: partnerRepo,
		journalRepo: journalRepo,
		productRepo: productRepo,
		taxRepo:     taxRepo,
		invoiceRepo: invoiceRepo,
	}
}

// CreateInvoice crea el comprobante en borrador: valida partner y diario,
// arma las líneas con los impuestos del producto, calcula totales en la
// precisión de la moneda de la compañía y deriva el concepto AFIP. Si el
// concepto incluye servicios y no vino período, se asume el mes calendario
// anterior. Cabecera y líneas se guardan en una sola transacción.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.PartnerID == "" || in.JournalID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := afip.JournalTypesForInvoiceType[in.Type]; !ok {
		return nil, domain.ErrInvalidInput
	}

	partner, err := uc.partnerRepo.GetByID(in.PartnerID)
	if err != nil || partner == nil {
		return nil, domain.ErrNotFound
	}
	if partner.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	journal, err := uc.journalRepo.GetByID(in.JournalID)
	if err != nil || journal == nil || journal.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := now
	if in.Date != "" {
		parsed, errDate := time.Parse("2006-01-02", in.Date)
		if errDate != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	invoiceID := uuid.New().String()
	lines := make([]entity.InvoiceLine, 0, len(in.Lines))
	for _, item := range in.Lines {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.LessThan(decimal.Zero) || item.Discount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, errProd := uc.productRepo.GetByID(item.ProductID)
		if errProd != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		unitPrice := item.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		name := item.Name
		if name == "" {
			name = product.Name
		}
		taxes, errTax := uc.taxRepo.GetByIDs(companyID, item.TaxIDs)
		if errTax != nil {
			return nil, errTax
		}
		if len(taxes) != len(item.TaxIDs) {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			ProductID:   product.ID,
			ProductKind: product.Kind,
			Name:        name,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			Discount:    item.Discount,
			Taxes:       taxes,
		})
	}

	amounts := afip.ComputeInvoiceAmounts(lines, afip.AllLines, afip.AllTaxes, company.CurrencyDecimals)
	concept := afip.DeriveConcept(lines)

	inv := &entity.Invoice{
		ID:               invoiceID,
		CompanyID:        companyID,
		PartnerID:        partner.ID,
		JournalID:        journal.ID,
		Type:             in.Type,
		Date:             date,
		CurrencyCode:     company.CurrencyCode,
		CurrencyDecimals: company.CurrencyDecimals,
		AmountUntaxed:    amounts.AmountUntaxed,
		AmountTax:        amounts.AmountTax,
		AmountTotal:      amounts.AmountTotal,
		Concept:          concept,
		Status:           entity.InvoiceStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if afip.ConceptIncludesServices(concept) {
		start, end, errPeriod := servicePeriod(in.ServiceStart, in.ServiceEnd, date)
		if errPeriod != nil {
			return nil, errPeriod
		}
		inv.ServiceStart = &start
		inv.ServiceEnd = &end
	}

	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.SequenceRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i := range lines {
			if err := invoiceRepo.CreateLine(&lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, partner.Name, lines, amounts.Taxes), nil
}

// servicePeriod resuelve el período de servicios: el que vino en el request
// (ambos extremos o ninguno) o el mes calendario anterior a la fecha.
func servicePeriod(startStr, endStr string, date time.Time) (time.Time, time.Time, error) {
	if startStr == "" && endStr == "" {
		start, end := afip.DefaultServicePeriod(date)
		return start, end, nil
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

// GetInvoice obtiene un comprobante por ID con líneas y precios de exhibición.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	partnerName := ""
	if partner, _ := uc.partnerRepo.GetByID(inv.PartnerID); partner != nil {
		partnerName = partner.Name
	}
	amounts := afip.ComputeInvoiceAmounts(lines, afip.AllLines, afip.AllTaxes, inv.CurrencyDecimals)
	return toInvoiceResponse(inv, partnerName, lines, amounts.Taxes), nil
}

// ListInvoices lista comprobantes de la compañía (cabeceras, sin líneas).
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.InvoiceResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp := toInvoiceResponse(inv, "", nil, nil)
		out = append(out, *resp)
	}
	return out, nil
}

// discriminatesVAT indica si la clase de documento exige IVA discriminado
// (letra A o M). Las demás letras muestran precios finales.
func discriminatesVAT(afipCode int) bool {
	switch afipCode {
	case pkgafip.ClassFacturaA, pkgafip.ClassNotaDebitoA, pkgafip.ClassNotaCreditoA,
		pkgafip.ClassFacturaM, pkgafip.ClassNotaDebitoM, pkgafip.ClassNotaCreditoM:
		return true
	}
	return false
}

func toInvoiceResponse(inv *entity.Invoice, partnerName string, lines []entity.InvoiceLine, taxes []afip.TaxDetail) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		PartnerID:     inv.PartnerID,
		PartnerName:   partnerName,
		JournalID:     inv.JournalID,
		Type:          inv.Type,
		Number:        inv.Number,
		Date:          inv.Date.Format("2006-01-02"),
		Status:        inv.Status,
		Concept:       inv.Concept,
		AmountUntaxed: inv.AmountUntaxed,
		AmountTax:     inv.AmountTax,
		AmountTotal:   inv.AmountTotal,
		Lines:         make([]dto.InvoiceLineResponse, 0, len(lines)),
	}
	if inv.ServiceStart != nil {
		resp.ServiceStart = inv.ServiceStart.Format("2006-01-02")
	}
	if inv.ServiceEnd != nil {
		resp.ServiceEnd = inv.ServiceEnd.Format("2006-01-02")
	}
	for _, t := range taxes {
		resp.Taxes = append(resp.Taxes, dto.InvoiceTaxResponse{
			TaxID:  t.TaxID,
			Name:   t.Name,
			Base:   t.Base,
			Amount: t.Amount,
		})
	}
	for _, line := range lines {
		display := afip.ComputeDisplayPrices(line, inv.CurrencyDecimals)
		lr := dto.InvoiceLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
			// Por defecto los precios de exhibición van con IVA incluido
			// (letras B y C); el PDF decide según la clase del diario.
			PriceUnitShown:     display.PriceUnitVATIncluded,
			PriceSubtotalShown: display.PriceSubtotalVATIncluded,
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
