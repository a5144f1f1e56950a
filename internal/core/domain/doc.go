// Package domain defines the core business entities for stylequote.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceType, PropertySize, PackageLevel, ExtraKind: the closed
//     choice sets offered by the quote wizard
//   - Step: the wizard position (1..TotalSteps, then the result)
//   - QuoteSelection: the choices collected during one session
//   - LineItem and Quote: the priced breakdown shown to the user
//   - AppSettings: enquiry and animation preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
