package entity

// Dataset secuencia ordenada e inmutable de registros.
// Los accesores devuelven copias; nadie fuera del paquete puede mutar las filas.
type Dataset struct {
	records []Record
}

// NewDataset construye un Dataset copiando los registros recibidos.
func NewDataset(records []Record) Dataset {
	cp := make([]Record, len(records))
	copy(cp, records)
	return Dataset{records: cp}
}

// Len número de filas.
func (d Dataset) Len() int { return len(d.records) }

// At devuelve la fila i (panic si está fuera de rango, igual que un slice).
func (d Dataset) At(i int) Record { return d.records[i] }

// Records devuelve una copia de todas las filas en su orden original.
func (d Dataset) Records() []Record {
	cp := make([]Record, len(d.records))
	copy(cp, d.records)
	return cp
}
