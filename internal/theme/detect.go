package theme

import (
	"context"
	"time"

	"github.com/zhubert/msgcodec/internal/logger"
)

// DetectTimeout bounds a single OS appearance query.
const DetectTimeout = 2 * time.Second

// Detector reports the current OS appearance. Implementations never fail;
// anything unexpected maps to Light.
type Detector func(ctx context.Context) Mode

// Detect queries the host OS for its appearance preference.
func Detect(ctx context.Context) Mode {
	ctx, cancel := context.WithTimeout(ctx, DetectTimeout)
	defer cancel()
	if ctx.Err() != nil {
		return Light
	}

	dark, err := detectDark(ctx)
	if err != nil {
		logger.WithComponent("theme").Debug("appearance query failed, assuming light", "error", err)
		return Light
	}
	if dark {
		return Dark
	}
	return Light
}

// Fixed returns a Detector that always reports m.
func Fixed(m Mode) Detector {
	return func(context.Context) Mode { return m }
}
