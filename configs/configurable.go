package configs

// Configurable is implemented by provided types that can be set from config files.
// ConfigExpr names the config path the value is read from.
type Configurable interface {
	ConfigExpr() string
}

// Lookup reads a Configurable from the path its zero value names.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
