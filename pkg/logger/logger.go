package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

// Log 全局日志实例，InitLogger 之前也可安全使用
var Log = logrus.New()

// logFile 当前打开的日志文件，重新初始化时关闭
var logFile *os.File

// CallerKey kratos 日志中调用位置的键，格式化时放在 FILE:LINE 位置
const CallerKey = "caller"

// adapterFunc kratos 适配器的函数名，logrus 记录的调用位置落在这里时没有意义
const adapterFunc = "logger.(*kratosLogger).Log"

// CustomFormatter 自定义日志格式
type CustomFormatter struct{}

// Format 实现 logrus.Formatter 接口
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var fileLine string
	if c, ok := entry.Data[CallerKey]; ok {
		fileLine = fmt.Sprint(c)
	} else if entry.HasCaller() && !strings.HasSuffix(entry.Caller.Function, adapterFunc) {
		fileName := filepath.Base(entry.Caller.File)
		fileLine = fmt.Sprintf("%s:%d", fileName, entry.Caller.Line)
	}

	// 对齐级别长度，例如 INFO, WARN, ERRO
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	timeStr := entry.Time.Format("2006-01-02 15:04:05")

	var fields strings.Builder
	for k, v := range entry.Data {
		if k == CallerKey {
			continue
		}
		fmt.Fprintf(&fields, " %s=%v", k, v)
	}

	// [TIME] [LEVEL] [FILE:LINE] MSG k=v
	msg := fmt.Sprintf("[%s] [%s] [%s] %s%s\n", timeStr, level, fileLine, entry.Message, fields.String())

	return []byte(msg), nil
}

// InitLogger 初始化日志。console 为 false 时只写文件（终端界面模式下使用）
func InitLogger(levelStr string, filePath string, console bool) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Log = logrus.New()
	Log.SetReportCaller(true)
	Log.SetFormatter(&CustomFormatter{})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}
	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, file)
	}
	if len(writers) == 0 {
		Log.SetOutput(io.Discard)
		return nil
	}
	Log.SetOutput(io.MultiWriter(writers...))

	return nil
}

// kratosLogger 把 kratos 的 log.Logger 接口桥接到 logrus
type kratosLogger struct {
	log *logrus.Logger
}

// NewKratosLogger 返回写入 logrus 的 kratos Logger
func NewKratosLogger(l *logrus.Logger) log.Logger {
	return &kratosLogger{log: l}
}

// Log 实现 log.Logger 接口
func (k *kratosLogger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	var msg string
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields[key] = keyvals[i+1]
	}

	entry := k.log.WithFields(fields)
	switch level {
	case log.LevelDebug:
		entry.Debug(msg)
	case log.LevelWarn:
		entry.Warn(msg)
	case log.LevelError, log.LevelFatal:
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
	return nil
}
