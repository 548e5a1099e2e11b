package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
	"github.com/vovakirdan/mango-snake/internal/storage"
)

// shutdownTimeout bounds how long open sessions may keep the server alive.
const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // Generated if missing; empty means ~/.mango/host_key
	DBPath      string        // Shared scores database
	IdleTimeout time.Duration // Idle sessions are closed after this

	// Snake is the game configuration every session starts from.
	Snake config.SnakeConfig
	FPS   int

	// Logger receives server and session events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.mango/scores.db",
		IdleTimeout: 30 * time.Minute,
		Snake:       config.DefaultSnakeConfig(),
		FPS:         core.DefaultConfig().FPS,
	}
}

// SSHServer serves Mango Snake over SSH. Every connection gets its own
// SessionModel and game; all sessions share one score store, so the
// record is per server.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store // nil when the database could not be opened
	logger *log.Logger

	closeOnce sync.Once
}

// NewSSHServer creates a server. A missing host key is generated. A
// database that cannot be opened is logged and sessions keep scores in
// memory.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mango-ssh",
		})
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", cfg.DBPath, "error", err)
	} else {
		srv.store = store
	}
	return srv, nil
}

// resolveHostKeyPath defaults the key location and makes sure its
// directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".mango", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the session model for one connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "mango needs a terminal: connect with ssh -t")
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		FPS:     s.config.FPS,
	}
	model := NewSessionModel(s.store, s.config.Snake, rt, s.logger, sess.User())
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe listens on the configured address and serves until ctx
// is cancelled.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.closeStore()
		return fmt.Errorf("cannot listen on %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down and closes the store. A cancelled context is not an error.
func (s *SSHServer) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting SSH server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- s.server.Serve(ln) }()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		err := s.Shutdown()
		ln.Close() //nolint:errcheck // Serve may not have tracked ln yet
		<-errCh
		return err
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server error", "error", err)
		return err
	}
}

// Shutdown stops accepting connections, waits for open sessions and
// closes the store. It is safe to call more than once.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	s.closeOnce.Do(func() {
		if s.store == nil {
			return
		}
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close scores database", "error", err)
		}
	})
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// HasStore reports whether sessions record scores.
func (s *SSHServer) HasStore() bool {
	return s.store != nil
}
