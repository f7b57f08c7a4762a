package billing

import (
	"context"

	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

// InvoicePDFUseCase arma los datos del comprobante y delega la generación del
// PDF al generador inyectado.
type InvoicePDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	partnerRepo repository.PartnerRepository
	journalRepo repository.JournalRepository
	generator   InvoicePDFGenerator
}

// NewInvoicePDFUseCase construye el caso de uso.
func NewInvoicePDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	partnerRepo repository.PartnerRepository,
	journalRepo repository.JournalRepository,
	generator InvoicePDFGenerator,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		partnerRepo: partnerRepo,
		journalRepo: journalRepo,
		generator:   generator,
	}
}

// GeneratePDF genera el PDF imprimible de un comprobante confirmado. Solo los
// comprobantes abiertos se imprimen; un borrador todavía puede cambiar.
func (uc *InvoicePDFUseCase) GeneratePDF(ctx context.Context, companyID, invoiceID string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if inv.Status != entity.InvoiceStatusOpen {
		return nil, domain.ErrInvoiceNotOpen
	}

	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	partner, err := uc.partnerRepo.GetByID(inv.PartnerID)
	if err != nil || partner == nil {
		return nil, domain.ErrNotFound
	}
	companyTaxID := ""
	if company.PartnerID != "" {
		if companyPartner, _ := uc.partnerRepo.GetByID(company.PartnerID); companyPartner != nil {
			companyTaxID = companyPartner.TaxID
		}
	}
	docClass, err := uc.journalRepo.GetDocumentClassByJournal(inv.JournalID)
	if err != nil {
		return nil, err
	}
	discriminate := docClass != nil && discriminatesVAT(docClass.AFIPCode)

	return uc.generator.GenerateInvoicePDF(ctx, &InvoicePDFData{
		Invoice:         inv,
		Company:         company,
		CompanyTaxID:    companyTaxID,
		Partner:         partner,
		DocumentClass:   docClass,
		Lines:           lines,
		DiscriminateVAT: discriminate,
	})
}
