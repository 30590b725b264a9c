package logs

import (
	"io"
	"os"
)

// Writer receives the terminal text handler output. Full screen frontends
// fork it to a file so records do not tear the display.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
