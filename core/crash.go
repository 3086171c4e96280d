package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// ErrPanic wraps a recovered panic when HandleCrash returns instead of exiting
var ErrPanic = errors.New("panic")

// Finalizer restores a terminal, satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen HandleCrash must restore before printing
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// SetCrashOutput redirects the crash report to w and replaces the exit call
// Returns a func restoring the previous output and exit
func SetCrashOutput(w io.Writer, exit func(int)) (restore func()) {
	crashMu.Lock()
	prevOut, prevExit := crashOut, crashExit
	crashOut, crashExit = w, exit
	crashMu.Unlock()

	return func() {
		crashMu.Lock()
		crashOut, crashExit = prevOut, prevExit
		crashMu.Unlock()
	}
}

// HandleCrash resets the terminal, prints the panic with its stack and exits
// Call as defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s, out, exit := crashScreen, crashOut, crashExit
	crashScreen = nil
	crashMu.Unlock()
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(out, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", debug.Stack())
	exit(1)
}

// Guard wraps fn for errgroup.Go and similar runners with panic recovery
// If the exit call returns, the panic surfaces as an ErrPanic error
func Guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		return fn()
	}
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		_ = Guard(func() error {
			fn()
			return nil
		})()
	}()
}
