// Package solid holds the demonstration domain: small types that each
// illustrate one SOLID principle through narrow, substitutable interfaces.
//
// Every type emits a fixed line to an output.Sink. RegisterAll exposes them
// as capability variants.
package solid
