// Package http implements the JSON-over-HTTP surface of the blog.
//
// It wires chi routes, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, response
// compression, and cookie sessions are handled in this package before
// requests are delegated to the service layer.
package http
