package logger

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrAppNameIsEmpty is returned when Log.AppName is unset.
	ErrAppNameIsEmpty = errors.New("log.appname must be set")

	// ErrServiceNameIsEmpty is returned when Log.ServiceName is unset.
	ErrServiceNameIsEmpty = errors.New("log.servicename must be set")

	// ErrLogDir is returned when the rolling file directory can not be created.
	ErrLogDir = errors.New("log.file.path is not usable")
)

// writeFailed reports events zerolog could not write. The logger itself is the broken sink,
// so the report goes straight to stderr.
func writeFailed(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "projecthub: dropped log event: %v\n", err)
}
