package pipe

import "errors"

// ErrInvalidParams indicates scene parameters that cannot produce a mesh.
var ErrInvalidParams = errors.New("pipe: invalid scene parameters")
