package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
)

// errChecksFailed makes the process exit 1 without printing anything more;
// the report already says what failed.
var errChecksFailed = errors.New("checks failed")

const (
	exitOK     = 0
	exitFailed = 1
	exitError  = 2
)

func main() {
	a := &app{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getenv:   os.Getenv,
		environ:  os.Environ,
		getwd:    os.Getwd,
		openFile: browser.OpenFile,
	}
	os.Exit(run(a, os.Args[1:]))
}

// app carries the process environment so commands can run against buffers
// and fake environments in tests.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	getenv   func(string) string
	environ  func() []string
	getwd    func() (string, error)
	openFile func(string) error

	logLevel   string
	logJSON    bool
	configPath string
}

func run(a *app, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errChecksFailed):
		return exitFailed
	default:
		fmt.Fprintf(a.stderr, "themecheck: %v\n", err)
		return exitError
	}
}
