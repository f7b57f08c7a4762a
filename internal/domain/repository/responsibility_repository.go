package repository

import "github.com/ejadull/l10n-ar-invoice/internal/domain/entity"

// ResponsibilityRepository define el puerto de lectura de las tablas de
// referencia de responsabilidades fiscales. Son datos de configuración
// cargados por seed, leídos mucho y escritos casi nunca.
type ResponsibilityRepository interface {
	GetByCode(code string) (*entity.Responsibility, error)
	ListRelationsByDocumentClass(documentClassID string) ([]entity.ResponsibilityRelation, error)
}
