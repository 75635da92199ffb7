package discovery

import (
	"fmt"
	"os"

	"github.com/grandcat/zeroconf"
)

// Announcement is a live mDNS registration. Shutdown must be called
// when the server stops so the record is withdrawn promptly.
type Announcement struct {
	server *zeroconf.Server
}

// Announce registers a companion server on the local network as a
// _souschef._tcp service. The recipe id is published in the TXT record
// so "souschef discover" can show what each kitchen is cooking.
// An empty name falls back to the machine hostname.
func Announce(name string, port int, recipeID string) (*Announcement, error) {
	if name == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "souschef"
		}
		name = hostname
	}

	txt := []string{"recipe=" + recipeID}

	server, err := zeroconf.Register(name, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return &Announcement{server: server}, nil
}

// Shutdown withdraws the mDNS registration.
func (a *Announcement) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
	}
}
