// Package termtest drives interactive programs inside a terminal emulator
// for tests.
package termtest

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/vito/midterm"
)

// WithTerm is the entry point for the "with-term" test command:
//
//	with-term [options] script -- cmd [args ...]
//
// It runs cmd inside a terminal emulator
// and drives it with the newline-delimited commands in the script file.
//
//	await Select changes
//	feed \x1b[B
//	feed  \r
//	snapshot
//
// Supported commands:
//
//   - await [txt]:
//     Wait up to 3 seconds for txt to appear on the screen.
//     Without txt, wait for the screen to change
//     from the last snapshot.
//   - feed txt:
//     Type txt into the terminal.
//     Go escape sequences (\r, \x1b[B) are interpreted.
//   - snapshot [name]:
//     Print the screen to stdout, with name as a header if given.
//
// Options:
//
//   - -cols int: terminal width (default 80)
//   - -rows int: terminal height (default 24)
//   - -final name: print a snapshot named name when cmd exits
func WithTerm() (exitCode int) {
	flags := flag.NewFlagSet("with-term", flag.ContinueOnError)
	cols := flags.Int("cols", 80, "terminal width")
	rows := flags.Int("rows", 24, "terminal height")
	final := flags.String("final", "", "snapshot to print on exit")

	log.SetFlags(0)
	if err := flags.Parse(os.Args[1:]); err != nil {
		return 2
	}

	args := flags.Args()
	if len(args) < 2 {
		log.Println("usage: with-term [options] script -- cmd [args ...]")
		return 2
	}
	scriptPath, args := args[0], args[1:]
	if args[0] == "--" {
		args = args[1:]
	}

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		log.Printf("read script: %v", err)
		return 1
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), "TERM=screen")
	term, err := startTerminal(cmd, *rows, *cols)
	if err != nil {
		log.Printf("start %v: %v", args[0], err)
		return 1
	}

	d := driver{term: term}
	if !d.run(string(script)) {
		exitCode = 1
		// The command may be stuck waiting for input.
		_ = cmd.Process.Kill()
	}

	if err := term.Close(); err != nil {
		log.Printf("%v: %v", args[0], err)
		exitCode = 1
	}
	if *final != "" {
		printSnapshot(*final, term.Snapshot())
	}
	return exitCode
}

// driver runs script commands against a terminal.
type driver struct {
	term *terminal
	last []string // last snapshot
}

// run executes the script, reporting whether all commands succeeded.
func (d *driver) run(script string) (ok bool) {
	ok = true
	scan := bufio.NewScanner(strings.NewReader(script))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		var err error
		switch name {
		case "await":
			err = d.await(arg)
		case "feed":
			err = d.feed(arg)
		case "snapshot":
			d.last = d.term.Snapshot()
			printSnapshot(arg, d.last)
		default:
			err = fmt.Errorf("unknown command %q", name)
		}

		if err != nil {
			log.Printf("%v: %v", line, err)
			ok = false
		}
	}
	return ok
}

func (d *driver) await(want string) error {
	match := func(screen []string) bool {
		return slices.ContainsFunc(screen, func(line string) bool {
			return strings.Contains(line, want)
		})
	}
	if want == "" {
		if d.last == nil {
			return errors.New("text is required before the first snapshot")
		}
		prev := d.last
		match = func(screen []string) bool {
			return !slices.Equal(screen, prev)
		}
	}

	var screen []string
	for deadline := time.Now().Add(3 * time.Second); time.Now().Before(deadline); {
		screen = d.term.Snapshot()
		if match(screen) {
			if want == "" {
				d.last = screen
			}
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timed out; screen:\n%s", strings.Join(screen, "\n"))
}

func (d *driver) feed(arg string) error {
	keys, err := strconv.Unquote(`"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`)
	if err != nil {
		return fmt.Errorf("unquote %q: %w", arg, err)
	}
	return d.term.Feed(keys)
}

func printSnapshot(name string, screen []string) {
	if name != "" {
		fmt.Printf("### %s ###\n", name)
	}
	for _, line := range screen {
		fmt.Println(line)
	}
}

// terminal is a command running in a pseudo-terminal
// whose output is rendered by a terminal emulator.
type terminal struct {
	cmd *exec.Cmd
	pty *os.File

	mu     sync.Mutex // guards screen
	screen *midterm.Terminal

	done chan struct{} // closed when output is drained
}

func startTerminal(cmd *exec.Cmd, rows, cols int) (*terminal, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	t := &terminal{
		cmd:    cmd,
		pty:    f,
		screen: midterm.NewTerminal(rows, cols),
		done:   make(chan struct{}),
	}
	go t.copyOutput()
	return t, nil
}

func (t *terminal) copyOutput() {
	defer close(t.done)

	var buf [4096]byte
	for {
		n, err := t.pty.Read(buf[:])
		if n > 0 {
			t.mu.Lock()
			_, werr := t.screen.Write(buf[:n])
			t.mu.Unlock()
			if werr != nil {
				log.Printf("render output: %v", werr)
			}
		}
		if err != nil {
			// Linux reports EIO once the child closes the terminal.
			if !errors.Is(err, io.EOF) && !errors.Is(err, syscall.EIO) {
				log.Printf("read output: %v", err)
			}
			return
		}
	}
}

// Feed types the given keys into the terminal.
func (t *terminal) Feed(keys string) error {
	_, err := io.WriteString(t.pty, keys)
	return err
}

// Snapshot returns the visible lines of the screen
// without trailing whitespace or trailing blank lines.
func (t *terminal) Snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, len(t.screen.Content))
	for i, row := range t.screen.Content {
		lines[i] = strings.TrimRight(string(row), " \t\n")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Close waits for the command to exit and releases the terminal.
func (t *terminal) Close() error {
	waitErr := t.cmd.Wait()
	<-t.done
	return errors.Join(waitErr, t.pty.Close())
}
