// Package model holds the domain types shared by the repository, service
// and handler layers, together with model level validation.
package model
