// Package cache provides a Redis read-through cache in front of the link
// store. Only the raw get_links_btwn_nodes record text is cached, so cached
// and uncached responses go through the same decoder.
package cache
