// Package emitter renders a parsed translation unit as C++11 following the
// IDL-to-C++ language mapping: value types become structs with equality
// operators, interfaces become abstract classes with a shared_ptr alias,
// exceptions become std::exception subclasses, and so on.
package emitter

// Config controls the shape of the emitted C++.
type Config struct {
	HeaderExtension       string
	SourceExtension       string
	NamespacePrefix       string
	GenerateImplementation bool
	UseSmartPointers      bool
	AddIncludeGuards      bool
	AddDoxygen            bool
	Indent                string
}

// DefaultConfig mirrors the reference generator's defaults.
func DefaultConfig() Config {
	return Config{
		HeaderExtension:        ".hpp",
		SourceExtension:        ".cpp",
		GenerateImplementation: true,
		UseSmartPointers:       true,
		AddIncludeGuards:       true,
		AddDoxygen:             true,
		Indent:                 "    ",
	}
}
