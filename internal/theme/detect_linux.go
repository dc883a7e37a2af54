//go:build linux

package theme

import (
	"context"
	"os/exec"
	"strings"
)

func detectDark(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false, err
	}
	return strings.Contains(string(out), "prefer-dark"), nil
}
