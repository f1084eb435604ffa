package drift

import (
	"fmt"
	"os"
)

// warnf reports a degraded-capability condition on stderr. Warnings are
// informational; the affected subsystem keeps working on a fallback path.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[drift] warning: "+format+"\n", args...)
}

// tracef prints a debug trace line on stderr. Callers gate on their own
// debug flag.
func tracef(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[drift] "+format+"\n", args...)
}
