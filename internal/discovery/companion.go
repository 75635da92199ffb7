package discovery

import (
	"fmt"
	"time"
)

// Companion represents a running souschef companion server found on the
// local network.
type Companion struct {
	// Name is the mDNS instance name (e.g., "kitchen")
	Name string

	// Hostname is the mDNS hostname of the machine running the server
	Hostname string

	// IP is the IPv4 address (IPv6 as a fallback)
	IP string

	// Port is the HTTP/WebSocket port
	Port int

	// Recipe is the id of the recipe currently being cooked, from the
	// TXT record (may be empty for an idle server)
	Recipe string

	// Metadata contains the remaining mDNS TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the server was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the companion
func (c *Companion) String() string {
	if c.Recipe != "" {
		return fmt.Sprintf("souschef %q at %s:%d (cooking %s)", c.Name, c.IP, c.Port, c.Recipe)
	}
	return fmt.Sprintf("souschef %q at %s:%d", c.Name, c.IP, c.Port)
}

// BaseURL returns the HTTP base URL for the companion server
func (c *Companion) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.IP, c.Port)
}

// WebSocketURL returns the companion protocol endpoint
func (c *Companion) WebSocketURL() string {
	return fmt.Sprintf("ws://%s:%d/ws", c.IP, c.Port)
}
