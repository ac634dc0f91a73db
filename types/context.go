package types

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to the
// pipeline command through kong bindings
type AppContext struct {
	Version string
}
