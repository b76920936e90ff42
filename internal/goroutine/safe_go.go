package goroutine

import (
	"runtime/debug"

	"github.com/ignatzorin/freshkeeper-backend/internal/logger"
)

// SafeGo запускает fn в горутине и перехватывает panic внутри неё:
// сбой фоновой задачи не должен ронять процесс целиком.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.WithField("goroutine", name).
					Errorf("panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
