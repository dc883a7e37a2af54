// Package clipboard copies row text to and from the system clipboard.
//
// The native golang.design/x/clipboard backend is tried first. When it cannot
// initialize (no display server, missing cgo), the package falls back to
// github.com/atotto/clipboard, which shells out to pbcopy/xclip/wl-copy.
package clipboard

import (
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	"github.com/zhubert/msgcodec/internal/errors"
	"github.com/zhubert/msgcodec/internal/logger"
)

// Backend is a text clipboard implementation.
type Backend interface {
	Name() string
	WriteText(text string) error
	ReadText() (string, error)
}

type nativeBackend struct{}

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (nativeBackend) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

type commandBackend struct{}

func (commandBackend) Name() string { return "command" }

func (commandBackend) WriteText(text string) error { return atotto.WriteAll(text) }

func (commandBackend) ReadText() (string, error) { return atotto.ReadAll() }

var (
	mu      sync.Mutex
	backend Backend
)

// Init selects the clipboard backend. Safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	_, err := initLocked()
	return err
}

func initLocked() (Backend, error) {
	if backend != nil {
		return backend, nil
	}

	err := clipboard.Init()
	if err == nil {
		backend = nativeBackend{}
		logger.Log("Clipboard: Initialized native backend")
		return backend, nil
	}
	logger.Log("Clipboard: Native backend unavailable: %v", err)

	if atotto.Unsupported {
		return nil, errors.ClipboardUnavailable(err)
	}
	backend = commandBackend{}
	logger.Log("Clipboard: Using command backend")
	return backend, nil
}

// SetBackend overrides the selected backend. Passing nil resets selection so
// the next call re-runs Init.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	b, err := initLocked()
	mu.Unlock()
	if err != nil {
		return err
	}

	if err := b.WriteText(text); err != nil {
		logger.Log("Clipboard: %s write failed: %v", b.Name(), err)
		return errors.ClipboardWriteFailed(err)
	}
	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	b, err := initLocked()
	mu.Unlock()
	if err != nil {
		return "", err
	}
	return b.ReadText()
}
