package repository

import "errors"

// ErrNotFound es el error centinela compartido por todas las
// implementaciones cuando el documento pedido no existe.
var ErrNotFound = errors.New("documento no encontrado")
