// Package discovery locates the generator binary the controller spawns.
//
//	discoverer := discovery.NewDiscoverer(&discovery.Config{
//	    GeneratorPath: "",           // Optional explicit path
//	    Logger:        slog.Default(),
//	})
//	path, err := discoverer.Discover()
//
// Discovery searches in the following order:
//  1. Explicit path in Config.GeneratorPath (if provided)
//  2. The RANDCTL_GENERATOR_PATH environment variable
//  3. A randgen binary in the same directory as the running executable
//  4. randgen on the system PATH
package discovery
