package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

const partnerColumns = `id, company_id, name, tax_id, responsibility_code, document_type_code,
		document_number, iibb, start_date, email, phone, created_at, updated_at`

// Create persiste un nuevo partner.
func (r *PartnerRepo) Create(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (` + partnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.CompanyID, partner.Name, nullIfEmpty(partner.TaxID),
		nullIfEmpty(partner.ResponsibilityCode), nullIfEmpty(partner.DocumentTypeCode),
		nullIfEmpty(partner.DocumentNumber), nullIfEmpty(partner.IIBB), partner.StartDate,
		nullIfEmpty(partner.Email), nullIfEmpty(partner.Phone),
		partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un partner por ID.
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	p, err := scanPartner(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return p, nil
}

// GetByCompanyAndTaxID obtiene un partner por empresa y CUIT.
func (r *PartnerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE company_id = $1 AND tax_id = $2`
	p, err := scanPartner(r.q.QueryRow(context.Background(), query, companyID, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner by tax_id: %w", err)
	}
	return p, nil
}

// ListByCompany lista partners de la empresa con paginación.
func (r *PartnerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + `
		FROM partners WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza el perfil completo del partner.
func (r *PartnerRepo) Update(partner *entity.Partner) error {
	query := `
		UPDATE partners
		SET name = $2, tax_id = $3, responsibility_code = $4, document_type_code = $5,
		    document_number = $6, iibb = $7, start_date = $8, email = $9, phone = $10,
		    updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.Name, nullIfEmpty(partner.TaxID),
		nullIfEmpty(partner.ResponsibilityCode), nullIfEmpty(partner.DocumentTypeCode),
		nullIfEmpty(partner.DocumentNumber), nullIfEmpty(partner.IIBB), partner.StartDate,
		nullIfEmpty(partner.Email), nullIfEmpty(partner.Phone), partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var p entity.Partner
	var taxID, respCode, docType, docNumber, iibb, email, phone *string
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &taxID, &respCode, &docType,
		&docNumber, &iibb, &p.StartDate, &email, &phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.TaxID = deref(taxID)
	p.ResponsibilityCode = deref(respCode)
	p.DocumentTypeCode = deref(docType)
	p.DocumentNumber = deref(docNumber)
	p.IIBB = deref(iibb)
	p.Email = deref(email)
	p.Phone = deref(phone)
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
