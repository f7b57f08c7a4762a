package billing

import (
	"context"

	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

// JournalEligibilityUseCase resuelve qué diarios puede usar la compañía para
// facturarle a un partner según las responsabilidades fiscales de ambos.
type JournalEligibilityUseCase struct {
	companyRepo repository.CompanyRepository
	partnerRepo repository.PartnerRepository
	journalRepo repository.JournalRepository
}

// NewJournalEligibilityUseCase construye el caso de uso.
func NewJournalEligibilityUseCase(
	companyRepo repository.CompanyRepository,
	partnerRepo repository.PartnerRepository,
	journalRepo repository.JournalRepository,
) *JournalEligibilityUseCase {
	return &JournalEligibilityUseCase{
		companyRepo: companyRepo,
		partnerRepo: partnerRepo,
		journalRepo: journalRepo,
	}
}

// EligibleJournals devuelve los diarios habilitados para el par emisor/receptor,
// ordenados por uso (number_next descendente): el primero es el sugerido.
// Las precondiciones de configuración fallan con *afip.ConfigurationError para
// que el handler las distinga de un rechazo de negocio.
func (uc *JournalEligibilityUseCase) EligibleJournals(ctx context.Context, companyID string, in dto.EligibleJournalsRequest) ([]dto.JournalOptionResponse, error) {
	journalTypes, ok := afip.JournalTypesForInvoiceType[in.InvoiceType]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if in.PartnerID == "" {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	if company.PartnerID == "" {
		return nil, &afip.ConfigurationError{Message: "la compañía no tiene partner propio asignado"}
	}
	companyPartner, err := uc.partnerRepo.GetByID(company.PartnerID)
	if err != nil {
		return nil, err
	}
	if companyPartner == nil || companyPartner.ResponsibilityCode == "" {
		return nil, &afip.ConfigurationError{Message: "el partner de la compañía no tiene responsabilidad fiscal asignada"}
	}

	partner, err := uc.partnerRepo.GetByID(in.PartnerID)
	if err != nil || partner == nil {
		return nil, domain.ErrNotFound
	}
	if partner.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if partner.ResponsibilityCode == "" {
		return nil, &afip.ConfigurationError{Message: "el partner no tiene responsabilidad fiscal asignada"}
	}

	candidates, err := uc.journalRepo.ListEligibilityCandidates(companyID, journalTypes)
	if err != nil {
		return nil, err
	}

	eligible := afip.FilterEligibleJournals(candidates, companyPartner.ResponsibilityCode, partner.ResponsibilityCode)
	out := make([]dto.JournalOptionResponse, 0, len(eligible))
	for _, j := range eligible {
		out = append(out, dto.JournalOptionResponse{
			ID:         j.ID,
			Name:       j.Name,
			NumberNext: j.NumberNext,
		})
	}
	return out, nil
}
