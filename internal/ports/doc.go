// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [LineSource]: Supplies raw wire lines from a stream, file, or follower
//   - [Presenter]: Receives decoding progress and results for display
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement these interfaces
// with concrete implementations (readers, files, fsnotify followers, etc.).
//
// This separation enables:
//   - Testing application logic with mock implementations
//   - Swapping input transports without changing decoding logic
//   - Clear boundaries and dependency direction
package ports
