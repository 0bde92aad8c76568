package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// User feedback goes to stderr so stdout stays clean for task lines and
// scripting. Severities follow the host contract: info, warning, error.
var notifier = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func setNotifyDebug() {
	notifier.SetLevel(log.DebugLevel)
}

func notifyDebug(format string, args ...any) {
	notifier.Debugf(format, args...)
}

func notifyInfo(format string, args ...any) {
	notifier.Infof(format, args...)
}

func notifyWarn(format string, args ...any) {
	notifier.Warnf(format, args...)
}

func notifyError(format string, args ...any) {
	notifier.Errorf(format, args...)
}
