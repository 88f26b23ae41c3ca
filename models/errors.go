// File: /models/errors.go
package models

import "errors"

// ErrEstadoAlterado is returned by conditional state updates when the row
// was no longer in the expected state.
var ErrEstadoAlterado = errors.New("estado alterado entretanto")
