package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, partner_id, journal_id, type, number, date,
		currency_code, currency_decimals, amount_untaxed, amount_tax, amount_total,
		afip_concept, service_start, service_end, status, created_at, updated_at`

// Create persiste la cabecera del comprobante.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.PartnerID, invoice.JournalID, invoice.Type,
		nullIfEmpty(invoice.Number), invoice.Date,
		invoice.CurrencyCode, invoice.CurrencyDecimals,
		invoice.AmountUntaxed, invoice.AmountTax, invoice.AmountTotal,
		nullIfEmpty(invoice.Concept), invoice.ServiceStart, invoice.ServiceEnd,
		invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persiste una línea con sus impuestos asociados.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_lines (id, invoice_id, product_id, product_kind, name, quantity, unit_price, discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.ProductID, line.ProductKind, line.Name,
		line.Quantity, line.UnitPrice, line.Discount,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	for _, tax := range line.Taxes {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO invoice_line_taxes (line_id, tax_id) VALUES ($1, $2)`,
			line.ID, tax.ID,
		)
		if err != nil {
			return fmt.Errorf("insert invoice line tax: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de un comprobante.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetLinesByInvoiceID devuelve las líneas con sus impuestos ya cargados.
func (r *InvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, product_id, product_kind, name, quantity, unit_price, discount
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(
			&l.ID, &l.InvoiceID, &l.ProductID, &l.ProductKind, &l.Name,
			&l.Quantity, &l.UnitPrice, &l.Discount,
		); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range lines {
		taxes, err := r.taxesByLine(lines[i].ID)
		if err != nil {
			return nil, err
		}
		lines[i].Taxes = taxes
	}
	return lines, nil
}

func (r *InvoiceRepo) taxesByLine(lineID string) ([]entity.Tax, error) {
	query := `
		SELECT t.id, t.company_id, t.name, t.tax_group, t.rate, t.created_at, t.updated_at
		FROM invoice_line_taxes lt
		JOIN taxes t ON t.id = lt.tax_id
		WHERE lt.line_id = $1 ORDER BY t.id`
	rows, err := r.q.Query(context.Background(), query, lineID)
	if err != nil {
		return nil, fmt.Errorf("list line taxes: %w", err)
	}
	defer rows.Close()
	var taxes []entity.Tax
	for rows.Next() {
		var t entity.Tax
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.TaxGroup, &t.Rate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan line tax: %w", err)
		}
		taxes = append(taxes, t)
	}
	return taxes, rows.Err()
}

// UpdateAmounts actualiza totales, concepto, período de servicio, número y estado.
func (r *InvoiceRepo) UpdateAmounts(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET number = $2, amount_untaxed = $3, amount_tax = $4, amount_total = $5,
		    afip_concept = $6, service_start = $7, service_end = $8, status = $9,
		    updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, nullIfEmpty(invoice.Number),
		invoice.AmountUntaxed, invoice.AmountTax, invoice.AmountTotal,
		nullIfEmpty(invoice.Concept), invoice.ServiceStart, invoice.ServiceEnd,
		invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// ListByCompany lista comprobantes de la empresa con paginación.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE company_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var number, concept *string
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.PartnerID, &inv.JournalID, &inv.Type,
		&number, &inv.Date,
		&inv.CurrencyCode, &inv.CurrencyDecimals,
		&inv.AmountUntaxed, &inv.AmountTax, &inv.AmountTotal,
		&concept, &inv.ServiceStart, &inv.ServiceEnd,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Number = deref(number)
	inv.Concept = deref(concept)
	return &inv, nil
}
