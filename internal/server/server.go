package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/discovery"
	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/protocol"
	"github.com/mtreloar/souschef/internal/session"
)

// Config holds the companion server configuration
type Config struct {
	Host     string
	Port     int
	LogLevel string
	Announce bool   // Advertise the server on the LAN via mDNS
	Name     string // Instance name used in the mDNS advertisement
}

// Server shares one cooking session with companion clients over HTTP
// and WebSocket. All clients observe the same cursor; commands from any
// client move it for everyone.
type Server struct {
	config  *Config
	session *session.Session
	hub     *hub
	httpSrv *http.Server
}

// New creates a new Server around an existing cooking session.
func New(config *Config, sess *session.Session) (*Server, error) {
	// Initialize logging
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	s := &Server{
		config:  config,
		session: sess,
		hub:     newHub(),
	}

	// Every cursor move fans out to all connected companions
	sess.Subscribe(func(st session.State) {
		data, err := protocol.EncodeState(st)
		if err != nil {
			logging.Error("Failed to encode state", zap.Error(err))
			return
		}
		s.hub.broadcast(data)
	})

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.httpSrv = &http.Server{
		Addr:              net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Start starts the server and blocks until a shutdown signal or error.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.hub.run(ctx)

	st := s.session.Snapshot()
	logging.Info("Starting companion server",
		zap.String("addr", s.httpSrv.Addr),
		zap.String("recipe", st.RecipeID),
		zap.Int("steps", st.StepCount),
	)

	listener, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpSrv.Addr, err)
	}

	// Advertise on the LAN so companions can find us without typing IPs
	if s.config.Announce {
		ann, err := discovery.Announce(s.config.Name, s.config.Port, st.RecipeID)
		if err != nil {
			logging.Warn("mDNS announcement failed, continuing without discovery",
				zap.Error(err),
			)
		} else {
			defer ann.Shutdown()
		}
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpSrv.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Shutdown gracefully stops the server, closing companion connections
// and waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.hub.close()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logging.Info("Server stopped")
	logging.Sync()
	return nil
}
