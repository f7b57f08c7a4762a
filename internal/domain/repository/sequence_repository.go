package repository

// SequenceRepository define el puerto sobre las secuencias de numeración de
// los diarios. NextNumber asigna y devuelve el próximo número formateado
// (prefijo + relleno) avanzando la secuencia; debe ejecutarse dentro de la
// transacción de confirmación para no quemar números ante un rollback.
type SequenceRepository interface {
	NextNumber(sequenceID string) (string, error)
}
