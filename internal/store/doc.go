// Package store defines the read interfaces over the road-network tables.
// Implementations return raw rows (or the raw aggregate text produced by the
// database) and leave translation into API values to package parse, so the
// query layer and the boundary translation stay independently testable.
package store
