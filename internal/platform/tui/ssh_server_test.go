package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSessionOptionsDataDir(t *testing.T) {
	s := &SSHServer{
		config: SSHServerConfig{GameID: "fake"},
		logger: log.New(io.Discard),
	}

	opts := s.sessionOptions("alice")
	if opts.DataDir != "" {
		t.Errorf("DataDir = %q, want empty without a server data dir", opts.DataDir)
	}
	if !strings.HasPrefix(opts.Session, "alice-") {
		t.Errorf("Session = %q", opts.Session)
	}

	root := filepath.Join(t.TempDir(), "ssh")
	s.config.DataDir = root

	a := s.sessionOptions("../../etc")
	b := s.sessionOptions("../../etc")
	for _, opts := range []Options{a, b} {
		if filepath.Dir(opts.DataDir) != root {
			t.Errorf("DataDir = %q, want a direct child of %q", opts.DataDir, root)
		}
	}
	if a.DataDir == b.DataDir {
		t.Error("sessions share a data directory")
	}
}
