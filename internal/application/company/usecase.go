package company

import (
	"time"

	"github.com/google/uuid"

	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
	"github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// UseCase casos de uso para compañías emisoras.
type UseCase struct {
	repo repository.CompanyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CompanyRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una compañía. País y moneda por defecto son los argentinos; la
// precisión de la moneda arranca en 2 decimales si no se indica otra cosa.
func (uc *UseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	countryCode := in.CountryCode
	if countryCode == "" {
		countryCode = afip.IssuerCountryCode
	}
	currencyCode := in.CurrencyCode
	if currencyCode == "" {
		currencyCode = "ARS"
	}
	decimals := in.CurrencyDecimals
	if decimals <= 0 {
		decimals = 2
	}
	now := time.Now()
	c := &entity.Company{
		ID:               uuid.New().String(),
		Name:             in.Name,
		PartnerID:        in.PartnerID,
		CountryCode:      countryCode,
		CurrencyCode:     currencyCode,
		CurrencyDecimals: decimals,
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// GetByID obtiene una compañía.
func (uc *UseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(c), nil
}

// List lista compañías.
func (uc *UseCase) List(page dto.PageRequest) ([]*dto.CompanyResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

func toResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		PartnerID:        c.PartnerID,
		CountryCode:      c.CountryCode,
		CurrencyCode:     c.CurrencyCode,
		CurrencyDecimals: c.CurrencyDecimals,
		Address:          c.Address,
		Phone:            c.Phone,
		Email:            c.Email,
	}
}
