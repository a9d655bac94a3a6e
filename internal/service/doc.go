// Package service provides the application-level operations over items.
// It sits between the HTTP layer and the store, owning validation and the
// construction of new entities.
package service
