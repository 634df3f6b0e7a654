package gittest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.abhg.dev/git-split-commit/internal/must"
	"go.abhg.dev/git-split-commit/internal/text"
)

// Fixture is a temporary directory holding a Git repository
// that was built by a testscript file.
type Fixture struct {
	dir string
}

// Cleanup removes the temporary directory created by the fixture.
func (f *Fixture) Cleanup() {
	_ = os.RemoveAll(f.dir)
}

// Dir returns the directory of the fixture.
func (f *Fixture) Dir() string {
	return f.dir
}

// Env returns the environment variables the fixture was built with.
// Tests that run git against the fixture should use these
// so that authorship and configuration stay stable.
func Env() map[string]string {
	env := DefaultConfig().EnvMap()
	env["EDITOR"] = "false"
	env["GIT_CONFIG_NOSYSTEM"] = "1"
	env["GIT_AUTHOR_NAME"] = "Test"
	env["GIT_AUTHOR_EMAIL"] = "test@example.com"
	env["GIT_COMMITTER_NAME"] = "Test"
	env["GIT_COMMITTER_EMAIL"] = "test@example.com"
	return env
}

// SetEnv sets the environment from [Env] for the duration of the test.
func SetEnv(t testing.TB) {
	for k, v := range Env() {
		t.Setenv(k, v)
	}
}

// LoadFixtureFile runs the testscript file at the given path
// and returns its work directory as a fixture.
// The script is expected to build a Git repository.
func LoadFixtureFile(path string) (*Fixture, error) {
	var (
		t          fakeT
		fixtureDir string
	)

	// FailNow and Skip call runtime.Goexit,
	// so the script must not run on this goroutine.
	done := make(chan struct{})
	go func() {
		defer close(done)

		testscript.RunT(&t, testscript.Params{
			Files: []string{path},
			// fixtureDir must outlive the script.
			TestWork:           true,
			RequireUniqueNames: true,
			Setup: func(e *testscript.Env) error {
				for k, v := range Env() {
					e.Setenv(k, v)
				}

				fixtureDir = e.WorkDir
				return nil
			},
			Cmds: map[string]func(*testscript.TestScript, bool, []string){
				"git": CmdGit,
				"as":  CmdAs,
				"at":  CmdAt,
			},
		})
	}()
	<-done

	if t.skipped || t.failed {
		return nil, fmt.Errorf("fixture script failed or was skipped:\n%s", t.msgs.String())
	}

	must.NotBeBlankf(fixtureDir, "fixture directory must not be blank")
	if _, err := os.Stat(fixtureDir); err != nil {
		must.Failf("fixture directory must exist: %v", err)
	}

	return &Fixture{dir: fixtureDir}, nil
}

// LoadFixtureScript loads a fixture from the contents of a testscript.
// It has access to the following commands
// in addition to testscript defaults:
//
//   - [CmdGit]
//   - [CmdAt]
//   - [CmdAs]
func LoadFixtureScript(script []byte) (*Fixture, error) {
	// testscript wants files on disk.
	tmpDir, err := os.MkdirTemp("", "gittest-fixture-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	tmpScript := filepath.Join(tmpDir, "fixture.txt")
	if err := os.WriteFile(tmpScript, script, 0o644); err != nil {
		return nil, fmt.Errorf("write script: %w", err)
	}

	return LoadFixtureFile(tmpScript)
}

// MustFixture dedents and loads a fixture script,
// failing the test if it does not succeed.
// The fixture is removed when the test ends.
func MustFixture(t testing.TB, script string) *Fixture {
	t.Helper()

	fixture, err := LoadFixtureScript([]byte(text.Dedent(script)))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	t.Cleanup(fixture.Cleanup)
	return fixture
}

// fakeT implements testscript.T so that a script can run
// without creating subtests of the calling test.
type fakeT struct {
	failed  bool
	skipped bool
	msgs    strings.Builder
}

var _ testscript.T = (*fakeT)(nil)

// Parallel and Run keep testscript.RunT synchronous.
func (*fakeT) Parallel()                              {}
func (f *fakeT) Run(_ string, run func(testscript.T)) { run(f) }

func (f *fakeT) FailNow() {
	f.failed = true
	runtime.Goexit()
}

func (f *fakeT) Fatal(args ...any) {
	fmt.Fprintln(&f.msgs, args...)
	f.FailNow()
}

func (f *fakeT) Log(args ...any) {
	fmt.Fprintln(&f.msgs, args...)
}

func (f *fakeT) Skip(args ...any) {
	f.skipped = true
	fmt.Fprintln(&f.msgs, args...)
	runtime.Goexit()
}

func (*fakeT) Verbose() bool { return false }
