// Package service contains the application use cases of the road network
// API. It orchestrates the stores defined in internal/store, the boundary
// translators in internal/parse and the geodesy helpers in internal/geo.
//
// Error handling:
//   - Caller mistakes are returned as *domain.RequestError values and pass
//     through unchanged so the API layer can report their message.
//   - Store failures are wrapped in *RoadServiceError, keeping the store
//     sentinel reachable through errors.Is.
package service
