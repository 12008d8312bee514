// Package parse translates between the HTTP boundary and the query layer.
//
// Request parsers take a JSON body that has already been decoded into a
// generic map and either return typed values or a *domain.RequestError of
// kind KindInvalidRequest carrying a message that is safe to show to clients.
//
// Response parsers turn rows from the road-network tables, and the flattened
// record text returned by the get_links_btwn_nodes database function, into
// domain values ready for JSON encoding.
//
// Every function is pure and safe for concurrent use.
package parse
