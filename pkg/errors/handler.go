package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex

	// DefaultHandler receives every report. Replace it with SetHandler.
	DefaultHandler ErrorHandler = NewLogHandler(nil)
)

// SetHandler installs h as the global handler. Nil reinstalls a LogHandler
// on a production zap logger.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = NewLogHandler(nil)
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func current() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err (when it has no timestamp) and hands it to the global
// handler. Nil is ignored.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := current(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic is Report for recovered panics.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := current(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in flight as a PanicError for op. It must be
// called directly by a deferred statement:
//
//	defer errors.Recover("loadmore.Controller.trigger")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// Guard calls fn and reports, rather than propagates, a panic raised by it.
// It returns false if fn panicked. A nil fn is a successful no-op.
func Guard(op string, fn func()) (ok bool) {
	if fn == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			reportRecovered(op, r)
			ok = false
		}
	}()
	fn()
	return true
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" pair per frame, at most 32 frames deep.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}
