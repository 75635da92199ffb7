// Package discovery provides mDNS discovery of companion servers.
//
// A running "souschef-server" advertises itself on the local network as
// a _souschef._tcp service, with the id of the recipe being cooked in
// the TXT record. This package implements both sides:
//
//	// Server side: advertise while serving
//	ann, err := discovery.Announce("kitchen", 8037, "shakshuka")
//	defer ann.Shutdown()
//
//	// Client side: find running servers
//	companions, err := discovery.Scan(5 * time.Second)
//	for _, c := range companions {
//	    fmt.Println(c) // souschef "kitchen" at 192.168.1.20:8037 (cooking shakshuka)
//	}
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - All devices must be on the same local network segment
//   - Firewall must allow mDNS (UDP port 5353)
//
// # Thread Safety
//
// This package is safe for concurrent use. Multiple discovery sessions
// can run simultaneously without interference.
package discovery
