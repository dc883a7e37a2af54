//go:build darwin

package theme

import (
	"context"
	"os/exec"
	"strings"
)

func detectDark(ctx context.Context) (bool, error) {
	// The key is absent in light mode, which makes defaults exit non-zero.
	out, _ := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return strings.Contains(string(out), "Dark"), nil
}
