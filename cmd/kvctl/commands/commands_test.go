// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/kodeventure/kvctl/lib/gameserver"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func clearEnvironment(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"KVCTL_CONFIG",
		"KVCTL_SERVER_URL",
		"KVCTL_AUTH_TOKEN",
		"KVCTL_TIMEOUT",
		"KVCTL_INSECURE_SKIP_VERIFY",
		"KVCTL_CERT_OUTPUT_DIR",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
}

func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest, *atomic.Int64) {
	t.Helper()
	var last recordedRequest
	var count atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		last = recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &last, &count
}

// TestRoot_WireContract drives every server-facing command through the
// full dispatcher and checks the request each one produces.
func TestRoot_WireContract(t *testing.T) {
	tests := []struct {
		command       string
		extraArgs     []string
		responseBody  string
		wantMethod    string
		wantPath      string
		authenticated bool
	}{
		{"add-user", []string{"--name", "Ada"}, `{}`, http.MethodPost, "/user", true},
		{"list-users", nil, `[]`, http.MethodGet, "/users", true},
		{"provision-cert", nil, `{"private":"k","public":"p","cert":"c"}`, http.MethodPost, "/cert", false},
		{"start-game", nil, ``, http.MethodPost, "/game/start", true},
		{"pause-game", nil, ``, http.MethodPost, "/game/pause", true},
		{"unpause-game", nil, ``, http.MethodPost, "/game/unpause", true},
		{"stop-game", nil, ``, http.MethodPost, "/game/stop", true},
	}

	for _, test := range tests {
		t.Run(test.command, func(t *testing.T) {
			clearEnvironment(t)
			server, last, count := newRecordingServer(t, http.StatusOK, test.responseBody)

			args := []string{test.command, "--server", server.URL, "--token", "test-admin-token"}
			args = append(args, test.extraArgs...)
			if test.command == "provision-cert" {
				args = append(args, "--output-dir", t.TempDir())
			}

			if err := Root().Execute(t.Context(), args, testLogger()); err != nil {
				t.Fatalf("Execute(%v) error: %v", args, err)
			}

			if count.Load() != 1 {
				t.Errorf("server saw %d requests, want exactly 1", count.Load())
			}
			if last.Method != test.wantMethod {
				t.Errorf("method = %s, want %s", last.Method, test.wantMethod)
			}
			if last.Path != test.wantPath {
				t.Errorf("path = %s, want %s", last.Path, test.wantPath)
			}
			if test.authenticated && last.Authorization != "test-admin-token" {
				t.Errorf("Authorization = %q, want the admin token", last.Authorization)
			}
			if !test.authenticated && last.Authorization != "" {
				t.Errorf("Authorization = %q, want unset", last.Authorization)
			}
		})
	}
}

func TestRoot_UnknownCommandSendsNothing(t *testing.T) {
	clearEnvironment(t)
	server, _, count := newRecordingServer(t, http.StatusOK, ``)
	t.Setenv("KVCTL_SERVER_URL", server.URL)

	err := Root().Execute(t.Context(), []string{"delete-users"}, testLogger())
	if err == nil {
		t.Fatal("Execute() accepted unknown command")
	}
	if count.Load() != 0 {
		t.Errorf("server saw %d requests, want 0", count.Load())
	}
}

func TestStopGame_ServerErrorSurfacesRawBody(t *testing.T) {
	clearEnvironment(t)
	server, _, count := newRecordingServer(t, http.StatusInternalServerError, "server busy")

	err := Root().Execute(t.Context(),
		[]string{"stop-game", "--server", server.URL}, testLogger())
	if err == nil {
		t.Fatal("stop-game succeeded against a 500 server")
	}
	if !strings.Contains(err.Error(), "server busy") {
		t.Errorf("error = %v, want raw body surfaced", err)
	}
	if count.Load() != 1 {
		t.Errorf("server saw %d requests, want exactly 1", count.Load())
	}
}

func TestAddUser_EmbeddedErrorsFailTheCommand(t *testing.T) {
	clearEnvironment(t)
	server, _, _ := newRecordingServer(t, http.StatusOK, `{"errors":"name already taken"}`)

	err := Root().Execute(t.Context(),
		[]string{"add-user", "--name", "Ada", "--server", server.URL}, testLogger())
	if err == nil {
		t.Fatal("add-user succeeded despite errors field in 200 response")
	}

	var playerErr *gameserver.PlayerError
	if !errors.As(err, &playerErr) {
		t.Fatalf("error is %T, want *gameserver.PlayerError", err)
	}
	if !strings.Contains(err.Error(), "name already taken") {
		t.Errorf("error = %v, want errors field surfaced", err)
	}
}

func TestProvisionCert_WritesAndOverwritesBundle(t *testing.T) {
	clearEnvironment(t)
	server, _, _ := newRecordingServer(t, http.StatusOK,
		`{"private":"NEW PRIVATE","public":"NEW PUBLIC","cert":"NEW CERT"}`)

	dir := t.TempDir()
	// Pre-existing files must be truncated, not appended to or kept.
	for _, name := range []string{"server.key", "server.pub", "server.crt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("STALE CONTENT THAT IS LONGER"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	err := Root().Execute(t.Context(),
		[]string{"provision-cert", "--server", server.URL, "--output-dir", dir}, testLogger())
	if err != nil {
		t.Fatalf("provision-cert error: %v", err)
	}

	want := map[string]string{
		"server.key": "NEW PRIVATE",
		"server.pub": "NEW PUBLIC",
		"server.crt": "NEW CERT",
	}
	for name, content := range want {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}
}

func TestProvisionCert_FailedWriteSurfaces(t *testing.T) {
	clearEnvironment(t)
	server, _, _ := newRecordingServer(t, http.StatusOK,
		`{"private":"k","public":"p","cert":"c"}`)

	err := Root().Execute(t.Context(),
		[]string{"provision-cert", "--server", server.URL,
			"--output-dir", filepath.Join(t.TempDir(), "does-not-exist")},
		testLogger())
	if err == nil {
		t.Fatal("provision-cert succeeded writing into a missing directory")
	}
	if !strings.Contains(err.Error(), "server.key") {
		t.Errorf("error = %v, want failing path named", err)
	}
}

func TestVersionCommand(t *testing.T) {
	if err := Root().Execute(t.Context(), []string{"version"}, testLogger()); err != nil {
		t.Errorf("version error: %v", err)
	}
}
