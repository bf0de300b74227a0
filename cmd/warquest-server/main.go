// warquest-server lets players reach WarQuest over SSH. Every connection
// plays its own independent session.
//
// Usage:
//
//	warquest-server
//	ssh -t -p 2222 localhost
//
// The listen address and host key path come from WARQUEST_SSH_ADDR and
// WARQUEST_HOST_KEY.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"

	"github.com/samdwyer/warquest/internal/config"
	"github.com/samdwyer/warquest/internal/game"
	"github.com/samdwyer/warquest/internal/gamedata"
	"github.com/samdwyer/warquest/internal/sshtty"
	"github.com/samdwyer/warquest/internal/telemetry"
	"github.com/samdwyer/warquest/internal/ui"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
	}
	config.ExportOTelEnv()

	logger, err := telemetry.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	if shutdown, err := telemetry.Setup(ctx, "ssh"); err != nil {
		logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
	} else {
		defer shutdown(ctx) //nolint:errcheck
	}

	mapText, err := gamedata.LoadMap(cfg.MapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	registry, err := gamedata.LoadEntityRegistry()
	if err != nil {
		log.Fatalf("Failed to load entities: %v", err)
	}
	logger.Info("entities loaded", zap.Int("definitions", registry.Count()))

	h := &handler{
		settings: game.Settings{
			Rows:     cfg.Rows,
			Cols:     cfg.Cols,
			MapText:  mapText,
			Chrome:   gamedata.Chrome(),
			Registry: registry,
			Logger:   logger,
		},
		logger: logger,
	}

	srv := &gossh.Server{
		Addr:        cfg.SSHAddr,
		Handler:     h.serve,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{loadOrCreateHostKey(cfg.HostKey, logger)},
	}

	logger.Info("listening", zap.String("addr", cfg.SSHAddr))
	log.Printf("WarQuest SSH server listening on %s", cfg.SSHAddr)
	log.Fatal(srv.ListenAndServe())
}

// handler runs one game per SSH connection. Sessions share only the
// read-only map text and entity definitions.
type handler struct {
	settings game.Settings
	logger   *zap.Logger
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

func (h *handler) serve(s gossh.Session) {
	pty, winCh, ok := s.Pty()
	if !ok {
		fmt.Fprintln(s, "WarQuest needs a terminal. Connect with: ssh -t")
		return
	}

	term := pty.Term
	for _, env := range s.Environ() {
		if v, found := strings.CutPrefix(env, "TERM="); found {
			term = v
			break
		}
	}
	if term == "" {
		term = "xterm-256color"
	}

	// TERM must be set in the process environment before the terminfo lookup.
	tty := sshtty.New(s, pty.Window, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	ts, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	screen, err := ui.WrapScreen(ts)
	if err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g, err := game.New(screen, h.settings)
	if err != nil {
		screen.Close()
		fmt.Fprintf(s, "Cannot start WarQuest: %v\n", err)
		return
	}

	h.logger.Info("ssh session",
		zap.String("session", g.Session().String()),
		zap.String("user", s.User()),
		zap.String("remote", s.RemoteAddr().String()),
	)
	if err := g.Run(s.Context()); err != nil {
		h.logger.Error("game error", zap.String("session", g.Session().String()), zap.Error(err))
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *zap.Logger) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", zap.String("path", path))
			return signer
		}
	}

	logger.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Non-fatal if it cannot be saved; the next run makes a new one.
	if block, err := xssh.MarshalPrivateKey(key, "warquest server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Warn("saving host key", zap.Error(err))
		}
	}
	return signer
}
