//go:build e2e

package e2e_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/rogpeppe/go-internal/testscript"
	"go.trai.ch/reqsync/internal/core/domain"
)

var reqsyncBinary string

func TestMain(m *testing.M) {
	os.Exit(runMain(m))
}

func runMain(m *testing.M) int {
	tmpDir, err := os.MkdirTemp("", "reqsync-e2e-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create temp dir:", err)
		return 1
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup

	reqsyncBinary = filepath.Join(tmpDir, "reqsync")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", reqsyncBinary, "./cmd/reqsync")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to build reqsync binary:", err)
		return 1
	}

	return m.Run()
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"tomlget": cmdTOMLGet,
		},
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("PATH", filepath.Dir(reqsyncBinary)+string(os.PathListSeparator)+env.Getenv("PATH"))

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, domain.DirPerm); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// cmdTOMLGet decodes a TOML file and compares the value at a dotted key.
// Arrays compare as their items joined by a single space.
//
//	tomlget file key want
func cmdTOMLGet(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 3 {
		ts.Fatalf("usage: tomlget file key want")
	}

	var doc map[string]any
	if _, err := toml.DecodeFile(ts.MkAbs(args[0]), &doc); err != nil {
		ts.Fatalf("%s is not valid TOML: %v", args[0], err)
	}

	got, ok := lookup(doc, strings.Split(args[1], "."))
	match := ok && got == args[2]
	switch {
	case neg && match:
		ts.Fatalf("%s: %s is %q", args[0], args[1], got)
	case !neg && !ok:
		ts.Fatalf("%s: %s not found", args[0], args[1])
	case !neg && !match:
		ts.Fatalf("%s: %s is %q, want %q", args[0], args[1], got, args[2])
	}
}

func lookup(doc map[string]any, keys []string) (string, bool) {
	var cur any = doc
	for _, key := range keys {
		table, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		if cur, ok = table[key]; !ok {
			return "", false
		}
	}

	if items, ok := cur.([]any); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, " "), true
	}
	return fmt.Sprint(cur), true
}
