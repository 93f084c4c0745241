package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUserInactive       = errors.New("cuenta desactivada")
	ErrEmailAlreadyExists = errors.New("el usuario o email ya están registrados")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCategoryNotFound   = errors.New("la categoría seleccionada no existe")
	ErrDBUnavailable      = errors.New("base de datos no disponible")
)

// CategoryInUseError se retorna al intentar eliminar una categoría que todavía
// tiene productos activos asociados. Conserva el conteo exacto para el mensaje.
type CategoryInUseError struct {
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("no se puede eliminar la categoría: tiene %d producto(s) activo(s) asociado(s)", e.Count)
}
