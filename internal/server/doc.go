// Package server implements the companion sync server.
//
// The server shares one cooking session over the local network so other
// devices (a phone propped against the backsplash, a tablet) can follow
// along with - and drive - the same step cursor. There is exactly one
// navigator; companions hold no cursor state of their own.
//
// # Endpoints
//
//	GET /healthz     liveness plus connected-companion count
//	GET /api/recipe  the full recipe document (JSON)
//	GET /api/state   current session snapshot (JSON)
//	GET /ws          WebSocket upgrade for the companion protocol
//
// # WebSocket Protocol
//
// On connect a companion receives a "state" message with the current
// snapshot. Every subsequent cursor move - no matter which client or the
// local TUI caused it - is broadcast as another "state" message. Clients
// send "command" messages (advance, retreat, jump, reset); ranges are
// never validated on the wire because the navigator clamps them. See the
// protocol package for message shapes.
//
// Slow companions whose send buffer fills up are disconnected rather
// than allowed to stall the broadcast.
//
// # Discovery
//
// With Config.Announce set, the server advertises itself via mDNS as a
// _souschef._tcp service so companions can find it without typing IPs.
//
// # Graceful Shutdown
//
// The server handles SIGINT and SIGTERM: it stops accepting connections,
// closes companion WebSockets, and waits briefly for in-flight requests.
package server
