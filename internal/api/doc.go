// Package api exposes the road network over HTTP. Handlers decode path
// parameters and JSON bodies, hand them to the parse package and the road
// service, and map domain and store errors onto status codes.
package api
