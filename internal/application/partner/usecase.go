package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
	"github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// UseCase casos de uso para partners (perfil fiscal de clientes y proveedores).
type UseCase struct {
	repo repository.PartnerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PartnerRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un partner. El documento se normaliza con las reglas de CUIT:
// un dígito verificador que no cierra genera una advertencia en la respuesta
// pero no bloquea el alta.
func (uc *UseCase) Create(companyID string, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ResponsibilityCode != "" && !afip.ValidResponsibilityCodes[in.ResponsibilityCode] {
		return nil, domain.ErrInvalidInput
	}
	if in.DocumentTypeCode != "" {
		if _, ok := afip.DocumentTypeAFIPCodes[in.DocumentTypeCode]; !ok {
			return nil, domain.ErrInvalidInput
		}
	}

	suggestion := afip.SuggestDocument(in.TaxID, in.DocumentTypeCode, in.DocumentNumber)
	taxID := in.TaxID
	if suggestion.TaxID != "" {
		taxID = suggestion.TaxID
	}
	documentNumber := in.DocumentNumber
	if suggestion.DocumentNumber != "" {
		documentNumber = suggestion.DocumentNumber
	}

	if taxID != "" {
		existing, _ := uc.repo.GetByCompanyAndTaxID(companyID, taxID)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	startDate, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	p := &entity.Partner{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		Name:               in.Name,
		TaxID:              taxID,
		ResponsibilityCode: in.ResponsibilityCode,
		DocumentTypeCode:   in.DocumentTypeCode,
		DocumentNumber:     documentNumber,
		IIBB:               in.IIBB,
		StartDate:          startDate,
		Email:              in.Email,
		Phone:              in.Phone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toResponse(p, suggestion.Warning), nil
}

// Update actualiza un partner. Los campos vacíos del request no se tocan;
// si cambia el documento se vuelve a normalizar y validar.
func (uc *UseCase) Update(companyID, id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	if in.Name != "" {
		p.Name = in.Name
	}
	if in.ResponsibilityCode != "" {
		if !afip.ValidResponsibilityCodes[in.ResponsibilityCode] {
			return nil, domain.ErrInvalidInput
		}
		p.ResponsibilityCode = in.ResponsibilityCode
	}
	if in.DocumentTypeCode != "" {
		if _, ok := afip.DocumentTypeAFIPCodes[in.DocumentTypeCode]; !ok {
			return nil, domain.ErrInvalidInput
		}
		p.DocumentTypeCode = in.DocumentTypeCode
	}
	if in.TaxID != "" {
		p.TaxID = in.TaxID
	}
	if in.DocumentNumber != "" {
		p.DocumentNumber = in.DocumentNumber
	}
	if in.IIBB != "" {
		p.IIBB = in.IIBB
	}
	if in.Email != "" {
		p.Email = in.Email
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
	if in.StartDate != "" {
		startDate, errDate := parseOptionalDate(in.StartDate)
		if errDate != nil {
			return nil, domain.ErrInvalidInput
		}
		p.StartDate = startDate
	}

	warning := ""
	if in.DocumentNumber != "" || in.DocumentTypeCode != "" {
		suggestion := afip.SuggestDocument(p.TaxID, p.DocumentTypeCode, p.DocumentNumber)
		if suggestion.DocumentNumber != "" {
			p.DocumentNumber = suggestion.DocumentNumber
		}
		if suggestion.TaxID != "" {
			p.TaxID = suggestion.TaxID
		}
		warning = suggestion.Warning
	}

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toResponse(p, warning), nil
}

// GetByID obtiene un partner de la empresa.
func (uc *UseCase) GetByID(companyID, id string) (*dto.PartnerResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toResponse(p, ""), nil
}

// List lista partners de la empresa.
func (uc *UseCase) List(companyID string, page dto.PageRequest) ([]*dto.PartnerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toResponse(p, ""))
	}
	return out, nil
}

// ValidateDocument corre la normalización de documento sin persistir nada.
// Pensado para validar mientras el usuario tipea en el formulario.
func (uc *UseCase) ValidateDocument(in dto.ValidateDocumentRequest) *dto.ValidateDocumentResponse {
	suggestion := afip.SuggestDocument(in.TaxID, in.DocumentTypeCode, in.DocumentNumber)
	out := &dto.ValidateDocumentResponse{
		TaxID:          in.TaxID,
		DocumentNumber: in.DocumentNumber,
		Warning:        suggestion.Warning,
	}
	if suggestion.TaxID != "" {
		out.TaxID = suggestion.TaxID
	}
	if suggestion.DocumentNumber != "" {
		out.DocumentNumber = suggestion.DocumentNumber
	}
	return out
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toResponse(p *entity.Partner, warning string) *dto.PartnerResponse {
	resp := &dto.PartnerResponse{
		ID:                 p.ID,
		CompanyID:          p.CompanyID,
		Name:               p.Name,
		TaxID:              p.TaxID,
		ResponsibilityCode: p.ResponsibilityCode,
		DocumentTypeCode:   p.DocumentTypeCode,
		DocumentNumber:     p.DocumentNumber,
		IIBB:               p.IIBB,
		Email:              p.Email,
		Phone:              p.Phone,
		Warning:            warning,
	}
	if p.StartDate != nil {
		resp.StartDate = p.StartDate.Format("2006-01-02")
	}
	return resp
}
