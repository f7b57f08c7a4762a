package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

var _ repository.TaxRepository = (*TaxRepo)(nil)

// TaxRepo implementación de TaxRepository (usable con pool o tx).
type TaxRepo struct {
	q Querier
}

// NewTaxRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaxRepository(q Querier) *TaxRepo {
	return &TaxRepo{q: q}
}

const taxColumns = `id, company_id, name, tax_group, rate, created_at, updated_at`

// GetByIDs obtiene los impuestos de la empresa por IDs. Un ID ajeno o
// inexistente simplemente no aparece en el resultado.
func (r *TaxRepo) GetByIDs(companyID string, ids []string) ([]entity.Tax, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + taxColumns + ` FROM taxes WHERE company_id = $1 AND id = ANY($2)`
	rows, err := r.q.Query(context.Background(), query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("get taxes: %w", err)
	}
	defer rows.Close()
	return scanTaxes(rows)
}

// ListByCompany lista los impuestos de la empresa.
func (r *TaxRepo) ListByCompany(companyID string) ([]entity.Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM taxes WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list taxes: %w", err)
	}
	defer rows.Close()
	return scanTaxes(rows)
}

func scanTaxes(rows pgx.Rows) ([]entity.Tax, error) {
	var list []entity.Tax
	for rows.Next() {
		var t entity.Tax
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.TaxGroup, &t.Rate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, kind, price, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Kind, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
