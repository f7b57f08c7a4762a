package repository

import "github.com/ejadull/l10n-ar-invoice/internal/domain/entity"

// TaxRepository define el puerto de lectura de impuestos.
type TaxRepository interface {
	GetByIDs(companyID string, ids []string) ([]entity.Tax, error)
	ListByCompany(companyID string) ([]entity.Tax, error)
}

// ProductRepository define el puerto de lectura de productos.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
}
