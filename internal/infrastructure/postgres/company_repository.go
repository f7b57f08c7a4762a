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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, partner_id, country_code, currency_code, currency_decimals,
		address, phone, email, created_at, updated_at`

// Create persiste una nueva compañía.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, nullIfEmpty(company.PartnerID), company.CountryCode,
		company.CurrencyCode, company.CurrencyDecimals,
		nullIfEmpty(company.Address), nullIfEmpty(company.Phone), nullIfEmpty(company.Email),
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una compañía por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	var partnerID, address, phone, email *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &partnerID, &c.CountryCode, &c.CurrencyCode, &c.CurrencyDecimals,
		&address, &phone, &email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	c.PartnerID = deref(partnerID)
	c.Address = deref(address)
	c.Phone = deref(phone)
	c.Email = deref(email)
	return &c, nil
}

// List lista compañías con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		var partnerID, address, phone, email *string
		if err := rows.Scan(
			&c.ID, &c.Name, &partnerID, &c.CountryCode, &c.CurrencyCode, &c.CurrencyDecimals,
			&address, &phone, &email, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		c.PartnerID = deref(partnerID)
		c.Address = deref(address)
		c.Phone = deref(phone)
		c.Email = deref(email)
		list = append(list, &c)
	}
	return list, rows.Err()
}
