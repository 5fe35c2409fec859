package router

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 30 * time.Second

// Timeout aborts requests that have not completed within d, answering with
// 408 Request Timeout. Echo's bundled timeout middleware answers 503, which
// does not match the API contract, hence this wrapper.
//
// The handler runs on its own goroutine against a detached context whose
// writes land in a guarded buffer, following the http.TimeoutHandler design:
// the buffer is flushed to the real connection only when the handler beats
// the deadline, so a handler that keeps running after the 408 can never
// touch the wire or the pooled request context.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			tw := &timeoutWriter{h: make(http.Header)}
			detached := c.Echo().NewContext(c.Request().WithContext(ctx), tw)
			detached.SetPath(c.Path())
			detached.SetParamNames(c.ParamNames()...)
			detached.SetParamValues(c.ParamValues()...)

			done := make(chan error, 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						logrus.WithField("stack", string(debug.Stack())).
							Errorf("panic recovered: %v", r)
						done <- fmt.Errorf("panic recovered: %v", r)
					}
				}()
				done <- next(detached)
			}()

			select {
			case err := <-done:
				if err != nil {
					return err
				}
				tw.flushTo(c.Response())
				return nil
			case <-ctx.Done():
				tw.markTimedOut()
				return echo.NewHTTPError(http.StatusRequestTimeout, "request timed out")
			}
		}
	}
}

// timeoutWriter buffers handler output until the race against the deadline
// is decided. After markTimedOut every write is rejected with
// http.ErrHandlerTimeout, as net/http does.
type timeoutWriter struct {
	mu          sync.Mutex
	h           http.Header
	buf         bytes.Buffer
	code        int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header { return tw.h }

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.wroteHeader = true
	tw.code = code
}

func (tw *timeoutWriter) Write(p []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.wroteHeader = true
		tw.code = http.StatusOK
	}
	return tw.buf.Write(p)
}

func (tw *timeoutWriter) markTimedOut() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.timedOut = true
}

// flushTo replays the buffered response onto the real connection. Only
// called once the handler goroutine has finished.
func (tw *timeoutWriter) flushTo(res *echo.Response) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	dst := res.Header()
	for k, v := range tw.h {
		dst[k] = v
	}
	code := tw.code
	if !tw.wroteHeader {
		code = http.StatusOK
	}
	res.WriteHeader(code)
	_, _ = res.Write(tw.buf.Bytes())
}
