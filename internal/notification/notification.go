// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/msgcodec/internal/logger"
)

// Title is shown on every notification msgcodec sends.
const Title = "msgcodec"

// Notifier matches beeep.Notify.
type Notifier func(title, message string, icon any) error

var (
	mu     sync.Mutex
	notify Notifier = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(n Notifier) {
	mu.Lock()
	defer mu.Unlock()
	notify = n
}

// ResetNotifier restores delivery through beeep.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	n := notify
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	err := n(title, message, "")
	if err != nil {
		log.Warn("send failed", "error", err)
	}
	return err
}

// ThemeChanged tells the user the TUI followed the OS into a new appearance.
func ThemeChanged(mode string) error {
	return Send(Title, "Switched to "+mode+" theme")
}
