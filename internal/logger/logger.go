package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log доступен сразу: до вызова Init пишет в stderr на уровне info в
// JSON формате, чтобы ранние сообщения не терялись.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Init выставляет уровень логирования. Неразобранный уровень не считается
// ошибкой, остаётся info.
func Init(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	}
}

// SetTextFormatter переключает логи в текстовый формат (для development).
func SetTextFormatter() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
