// Package services implements the driving port interfaces.
// Services contain the core business logic of the editing session and
// orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO dependencies.
package services
