package analytics

import (
	"fmt"

	"github.com/jhoicas/finance-dashboard/internal/domain"
	"github.com/jhoicas/finance-dashboard/internal/domain/entity"
)

// Selection conjunto de clientes activos en el filtro lateral.
// Labels conserva el orden de las opciones, no el orden en que llegaron.
type Selection struct {
	labels []string
	set    map[string]struct{}
}

// Options devuelve los clientes distintos del dataset en orden de primera aparición.
func Options(ds entity.Dataset) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)
	for i := 0; i < ds.Len(); i++ {
		customer := ds.At(i).Customer
		if _, ok := seen[customer]; ok {
			continue
		}
		seen[customer] = struct{}{}
		options = append(options, customer)
	}
	return options
}

// AllSelected selección por defecto: todas las opciones.
func AllSelected(ds entity.Dataset) Selection {
	return newSelection(Options(ds), nil)
}

// NewSelection valida que cada etiqueta pertenezca a las opciones del dataset.
// Los duplicados se colapsan; una lista vacía es una selección vacía válida.
func NewSelection(ds entity.Dataset, labels []string) (Selection, error) {
	options := Options(ds)
	known := make(map[string]struct{}, len(options))
	for _, o := range options {
		known[o] = struct{}{}
	}

	requested := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := known[l]; !ok {
			return Selection{}, fmt.Errorf("%w: %q", domain.ErrUnknownCustomer, l)
		}
		requested[l] = struct{}{}
	}
	return newSelection(options, requested), nil
}

// newSelection filtra options por requested (nil = todas).
func newSelection(options []string, requested map[string]struct{}) Selection {
	sel := Selection{
		labels: make([]string, 0, len(options)),
		set:    make(map[string]struct{}, len(options)),
	}
	for _, o := range options {
		if requested != nil {
			if _, ok := requested[o]; !ok {
				continue
			}
		}
		sel.labels = append(sel.labels, o)
		sel.set[o] = struct{}{}
	}
	return sel
}

// Contains indica si el cliente está seleccionado.
func (s Selection) Contains(customer string) bool {
	_, ok := s.set[customer]
	return ok
}

// Labels copia de los clientes seleccionados.
func (s Selection) Labels() []string {
	cp := make([]string, len(s.labels))
	copy(cp, s.labels)
	return cp
}

func (s Selection) Len() int      { return len(s.labels) }
func (s Selection) IsEmpty() bool { return len(s.labels) == 0 }

// Apply devuelve la vista filtrada: filas cuyo cliente está en la selección,
// en el orden del dataset. Nunca devuelve nil.
func Apply(ds entity.Dataset, sel Selection) []entity.Record {
	rows := make([]entity.Record, 0, sel.Len()*12)
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		if sel.Contains(r.Customer) {
			rows = append(rows, r)
		}
	}
	return rows
}
