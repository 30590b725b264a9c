package configs

import (
	"errors"
)

// First returns the value at path from the highest priority file, or the zero value.
// Invalid files or undecodable values panic; they are programmer or user errors
// that must stop startup.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
