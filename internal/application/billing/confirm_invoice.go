package billing

import (
	"context"
	"time"

	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
	"github.com/ejadull/l10n-ar-invoice/pkg/logger"
)

// ConfirmInvoiceUseCase pasa un comprobante de borrador a confirmado: recalcula
// totales y concepto desde las líneas, corre las validaciones AFIP y, si pasan,
// asigna número de secuencia y persiste el estado abierto en una transacción.
type ConfirmInvoiceUseCase struct {
	txRunner           BillingTxRunner
	invoiceRepo        repository.InvoiceRepository
	companyRepo        repository.CompanyRepository
	partnerRepo        repository.PartnerRepository
	journalRepo        repository.JournalRepository
	responsibilityRepo repository.ResponsibilityRepository
	log                *logger.Logger
}

// NewConfirmInvoiceUseCase construye el caso de uso.
func NewConfirmInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	partnerRepo repository.PartnerRepository,
	journalRepo repository.JournalRepository,
	responsibilityRepo repository.ResponsibilityRepository,
	log *logger.Logger,
) *ConfirmInvoiceUseCase {
	return &ConfirmInvoiceUseCase{
		txRunner:           txRunner,
		invoiceRepo:        invoiceRepo,
		companyRepo:        companyRepo,
		partnerRepo:        partnerRepo,
		journalRepo:        journalRepo,
		responsibilityRepo: responsibilityRepo,
		log:                log,
	}
}

// Confirm confirma el comprobante. Si alguna regla AFIP falla devuelve un
// *afip.ComplianceError sin tocar la base; el comprobante queda en borrador.
func (uc *ConfirmInvoiceUseCase) Confirm(ctx context.Context, companyID, invoiceID string) (*dto.ConfirmInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if inv.Status != entity.InvoiceStatusDraft {
		return nil, domain.ErrInvoiceNotDraft
	}

	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	issuerCode := ""
	if company.PartnerID != "" {
		if companyPartner, _ := uc.partnerRepo.GetByID(company.PartnerID); companyPartner != nil {
			issuerCode = companyPartner.ResponsibilityCode
		}
	}

	partner, err := uc.partnerRepo.GetByID(inv.PartnerID)
	if err != nil || partner == nil {
		return nil, domain.ErrNotFound
	}

	journal, err := uc.journalRepo.GetByID(inv.JournalID)
	if err != nil || journal == nil {
		return nil, domain.ErrNotFound
	}

	// Clase de documento del diario. Si el mapeo está roto se valida con
	// valores cero: la clase no matchea la dirección y el rechazo es AFIP,
	// no un 500.
	classCode := 0
	classID := ""
	var relations []entity.ResponsibilityRelation
	docClass, err := uc.journalRepo.GetDocumentClassByJournal(journal.ID)
	if err != nil {
		return nil, err
	}
	if docClass != nil {
		classCode = docClass.AFIPCode
		classID = docClass.ID
		relations, err = uc.responsibilityRepo.ListRelationsByDocumentClass(docClass.ID)
		if err != nil {
			return nil, err
		}
	}

	// Recalcular siempre desde las líneas: los totales guardados en el
	// borrador pueden estar viejos.
	amounts := afip.ComputeInvoiceAmounts(lines, afip.AllLines, afip.AllTaxes, inv.CurrencyDecimals)
	inv.AmountUntaxed = amounts.AmountUntaxed
	inv.AmountTax = amounts.AmountTax
	inv.AmountTotal = amounts.AmountTotal
	inv.Concept = afip.DeriveConcept(lines)
	if afip.ConceptIncludesServices(inv.Concept) && (inv.ServiceStart == nil || inv.ServiceEnd == nil) {
		start, end := afip.DefaultServicePeriod(inv.Date)
		inv.ServiceStart = &start
		inv.ServiceEnd = &end
	}

	if err := afip.ValidateForConfirmation(afip.ConfirmationInput{
		CompanyCountryCode:         company.CountryCode,
		InvoiceType:                inv.Type,
		AmountTotal:                inv.AmountTotal,
		JournalClassAFIPCode:       classCode,
		DocumentClassID:            classID,
		IssuerResponsibilityCode:   issuerCode,
		ReceptorResponsibilityCode: partner.ResponsibilityCode,
		ReceptorDocumentTypeCode:   partner.DocumentTypeCode,
		ReceptorDocumentNumber:     partner.DocumentNumber,
		Relations:                  relations,
	}); err != nil {
		uc.log.Warn().
			Str("invoice_id", inv.ID).
			Str("journal_id", journal.ID).
			Err(err).
			Msg("confirmación rechazada por validación AFIP")
		return nil, err
	}

	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		sequenceRepo repository.SequenceRepository,
	) error {
		if inv.Number == "" {
			number, errSeq := sequenceRepo.NextNumber(journal.SequenceID)
			if errSeq != nil {
				return errSeq
			}
			inv.Number = number
		}
		inv.Status = entity.InvoiceStatusOpen
		inv.UpdatedAt = time.Now()
		return invoiceRepo.UpdateAmounts(inv)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("number", inv.Number).
		Msg("comprobante confirmado")

	return &dto.ConfirmInvoiceResponse{
		ID:     inv.ID,
		Number: inv.Number,
		Status: inv.Status,
	}, nil
}
