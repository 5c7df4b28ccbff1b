package services

import "context"

var defaultRegistry = NewRegistry()

// Register adds an initializer to the default registry. Service modules
// call this from their own setup code so the entry layer can bring them
// up on the first invocation.
func Register(name string, init InitFunc) {
	defaultRegistry.Register(name, init)
}

// InitAll runs the default registry.
func InitAll(ctx context.Context) error {
	return defaultRegistry.InitAll(ctx)
}

// Names lists the default registry in registration order.
func Names() []string {
	return defaultRegistry.Names()
}
