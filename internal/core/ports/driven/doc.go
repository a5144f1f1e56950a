// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration and price overrides (TOML)
//
// # Optional Interfaces
//
// These can be absent - the application degrades gracefully:
//
//   - QuoteExporter: Renders a quote as XLSX or PDF. Formats without an
//     exporter are reported as unsupported.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
