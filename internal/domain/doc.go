// Package domain contains the road-network entities exchanged between the
// query layer and HTTP clients: nodes, links, the aggregated links between
// two nodes, and travel-time queries. It also defines the request-level
// error kinds that the HTTP boundary turns into status codes.
package domain
