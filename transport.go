package randctl

import "github.com/wagiedev/randctl-go/internal/config"

// Transport defines the interface for talking to a generator.
// Implement this to provide custom transports for testing, mocking,
// or alternative communication methods (e.g., an in-process pipe).
//
// The default implementation spawns the randgen binary as a subprocess.
// Custom transports can be injected via WithTransport.
type Transport = config.Transport
