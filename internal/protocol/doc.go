// Package protocol defines the wire messages of the companion protocol.
//
// The companion server and its clients exchange JSON text messages over
// a WebSocket connection. The server pushes "state" messages - one on
// connect and one after every cursor move - and clients send "command"
// messages to drive the shared cooking session:
//
//	{"type": "command", "action": "advance"}
//	{"type": "command", "action": "jump", "target": 4}
//	{"type": "state", "state": {"recipe_id": "shakshuka", "step_index": 4, ...}}
//
// # Validation Policy
//
// ParseCommand validates message shape (known type, known action) but
// never range-checks jump targets. Clients are untrusted and don't know
// the step count; a target of -1 or 999 is normal input that the step
// navigator clamps into range. Only structurally invalid messages get
// an "error" reply.
package protocol
