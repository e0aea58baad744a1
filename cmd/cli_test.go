// SPDX-License-Identifier: MIT
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hyperion/internal/testutil"
	"hyperion/internal/transport"
	"hyperion/pkg/compare"
	"hyperion/pkg/literal"
	"hyperion/pkg/platform"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr error
	}{
		{[]string{"parse", "u32", "64'000"}, "64000\n", nil},
		{[]string{"parse", "usize", "0xDEAD'BEEF"}, "3735928559\n", nil},
		{[]string{"parse", "u16", "012345"}, "5349\n", nil},
		{[]string{"parse", "u16", "0b0011001100"}, "204\n", nil},
		{[]string{"parse", "--", "i8", "-128"}, "-128\n", nil},
		{[]string{"parse", "f64", "0.5"}, "0.5\n", nil},
		{[]string{"parse", "u8", "256"}, "", literal.ErrOutOfRange},
		{[]string{"parse", "u8", "12a"}, "", literal.ErrInvalidCharacterSequence},
		{[]string{"parse", "bool", "1"}, "", literal.ErrInvalidLiteralType},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr != nil {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	out, err := run(t, "parse", "u8", "300", "-o", "json")
	if err == nil {
		t.Fatal("error = nil, want out of range")
	}
	var resp transport.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if resp.OK || resp.Status != literal.OutOfRange.String() {
		t.Errorf("response = %+v, want OutOfRange", resp)
	}
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"compare", "eq", "1:i32", "1.0:f64"}, "true"},
		{[]string{"compare", "eq", "1000:i32", "1001.0:f32"}, "false"},
		{[]string{"compare", "--", "lt", "-1:i64", "0:u64"}, "true"},
		{[]string{"compare", "eq", "2.0:f64", "2.2:f64", "--epsilon", "0.1", "--epsilon-type", "relative"}, "true"},
		{[]string{"compare", "eq", "2.0:f64", "2.3:f64", "-e", "0.1", "-t", "rel"}, "false"},
		{[]string{"compare", "order", "0x10:u8", "15:u64"}, "greater"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompareCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"compare", "eq", "1", "1:u8"},
		{"compare", "eq", "1:u8", "1:"},
		{"compare", "approx", "1:u8", "1:u8"},
		{"compare", "eq", "1:u8"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: error = nil, want error", args)
		}
	}
}

func TestCompareUsesConfiguredEpsilon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperion.yaml")
	content := "compare:\n  epsilon_type: relative\n  epsilon: 0.1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, err := run(t, "compare", "eq", "2.0:f64", "2.2:f64", "--config", path)
	if err != nil || strings.TrimSpace(out) != "true" {
		t.Errorf("with config: output = %q, err = %v; want true", out, err)
	}
	out, err = run(t, "compare", "eq", "2.0:f64", "2.2:f64")
	if err != nil || strings.TrimSpace(out) != "false" {
		t.Errorf("without config: output = %q, err = %v; want false", out, err)
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, "info")
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	for _, want := range []string{"SECTION", "toolchain", "features", "three-way compare", platform.Architecture.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
	rows := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		cells := strings.Split(line, "│")
		if len(cells) == 5 {
			rows[strings.TrimSpace(cells[2])] = strings.TrimSpace(cells[3])
		}
	}
	if got, want := rows["word bits"], strconv.Itoa(platform.WordBits); got != want {
		t.Errorf("info word bits row = %q, want %q:\n%s", got, want, out)
	}
	if got, want := rows["cache line"], strconv.Itoa(platform.CacheLineSize); got != want {
		t.Errorf("info cache line row = %q, want %q", got, want)
	}

	out, err = run(t, "info", "-o", "json")
	if err != nil {
		t.Fatalf("info -o json error = %v", err)
	}
	var facts platform.Facts
	if err := json.Unmarshal([]byte(out), &facts); err != nil {
		t.Fatalf("info -o json output is not JSON: %v\n%s", err, out)
	}
	if facts.Architecture != platform.Architecture || facts.WordBits != platform.WordBits {
		t.Errorf("info -o json = %+v", facts)
	}

	out, err = run(t, "info", "-o", "yaml")
	if err != nil {
		t.Fatalf("info -o yaml error = %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("info -o yaml output is not YAML: %v\n%s", err, out)
	}
	if doc["architecture"] != platform.Architecture.String() {
		t.Errorf("info -o yaml architecture = %v, want %v", doc["architecture"], platform.Architecture)
	}

	if _, err := run(t, "info", "-o", "xml"); err == nil {
		t.Error("info -o xml error = nil, want error")
	}
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "limits.hyp")
	if err := os.WriteFile(in, []byte("package limits\nconst MaxFrames u32 = 64'000\n"), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	out, err := run(t, "gen", in)
	if err != nil {
		t.Fatalf("gen error = %v", err)
	}
	if !strings.Contains(out, "package limits") || !strings.Contains(out, "MaxFrames uint32 = 64000") {
		t.Errorf("gen output:\n%s", out)
	}

	dst := filepath.Join(dir, "limits.go")
	if _, err := run(t, "gen", in, "-w", dst); err != nil {
		t.Fatalf("gen -w error = %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("gen -w did not write %s: %v", dst, err)
	}

	bad := filepath.Join(dir, "bad.hyp")
	if err := os.WriteFile(bad, []byte("package bad\nconst A i8 = 0x80\n"), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	if _, err := run(t, "gen", bad); err == nil || !strings.Contains(err.Error(), literal.ErrOutOfRange.Error()) {
		t.Errorf("gen of out of range manifest error = %v", err)
	}
}

func TestServeUntil(t *testing.T) {
	defer testutil.LeakTester(t)

	server := transport.NewServer("127.0.0.1:0", transport.NewEvaluator())
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := serveUntil(ctx, server, nil, nil); err != nil {
		t.Errorf("serveUntil() error = %v", err)
	}
	if err := server.Send("late"); !errors.Is(err, transport.ErrServerClosed) {
		t.Errorf("Send() after serveUntil error = %v, want %v", err, transport.ErrServerClosed)
	}
}

func TestServeReload(t *testing.T) {
	defer testutil.LeakTester(t)

	server := transport.NewServer("127.0.0.1:0", newHandler(nil))
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	reload := make(chan os.Signal, 1)
	failNext := true
	done := make(chan error, 1)
	go func() {
		done <- serveUntil(ctx, server, reload, func() ([]compare.Epsilon, error) {
			if failNext {
				failNext = false
				return nil, errors.New("bad configuration")
			}
			return []compare.Epsilon{compare.RelativeEpsilon(0.1)}, nil
		})
	}()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("serveUntil() error = %v", err)
		}
	}()

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+server.Addr()+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	near := transport.Request{Op: transport.OpCompare, Pred: "eq", LHS: "2.0", LHSKind: "f64", RHS: "2.2", RHSKind: "f64"}
	ask := func() transport.Response {
		t.Helper()
		if err := conn.WriteJSON(near); err != nil {
			t.Fatalf("WriteJSON() error = %v", err)
		}
		var resp transport.Response
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		return resp
	}

	if resp := ask(); resp.Value != false {
		t.Fatalf("eq 2.0 2.2 before reload = %+v, want false", resp)
	}

	// The first reload fails and must leave the running handler alone.
	reload <- syscall.SIGHUP
	reload <- syscall.SIGHUP

	var ev transport.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("ReadJSON(event) error = %v", err)
	}
	if ev.Event != transport.EventReload || len(ev.Epsilons) != 1 || ev.Epsilons[0] != compare.RelativeEpsilon(0.1).String() {
		t.Errorf("reload event = %+v", ev)
	}
	if resp := ask(); resp.Value != true {
		t.Errorf("eq 2.0 2.2 after reload = %+v, want true", resp)
	}
}

func TestBadConfig(t *testing.T) {
	if _, err := run(t, "info", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("info with missing config error = nil, want error")
	}
	if _, err := run(t, "info", "--log-level", "loud"); err == nil {
		t.Error("info with bad log level error = nil, want error")
	}
	if _, err := run(t, "info", "-c", ""); err != nil {
		t.Errorf("info with default config error = %v", err)
	}
}
