// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Pricing uses shopspring/decimal so that package and express
// multipliers are exact and the single final rounding is half-up.
package services
