// Package model contains the client application record and its enumerations.
// It carries no business logic and no persistence tags beyond the wire keys.
package model
