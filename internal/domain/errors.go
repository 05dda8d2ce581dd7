package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownCustomer = fmt.Errorf("%w: cliente desconocido", ErrInvalidInput)
)
