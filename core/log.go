package core

import (
	"fmt"
	"log"
	"os"
	"time"

	"engipec/config"
	"engipec/global"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogManager 创建新的日志管理器
func NewLogManager(config *config.Log) *zap.SugaredLogger {
	// 如果配置为空，则使用默认配置
	if config == nil {
		config = getDefaultConfig()
	}

	// 创建日志管理器实例
	sugarLogger, err := initialize(config)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
		return nil
	}

	return sugarLogger
}

// initialize 初始化日志管理器
func initialize(config *config.Log) (*zap.SugaredLogger, error) {
	// 创建文件写入器
	fileWriter := getLogWriter(
		config.Filename,
		config.MaxSize,
		config.MaxBackups,
		config.MaxAge,
	)

	// 获取编码器
	encoder := getEncoder()

	// 设置日志级别
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %v", err)
	}

	// 创建核心
	var core zapcore.Core
	if global.Config.System.Env == "debug" {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core = zapcore.NewTee(
			zapcore.NewCore(encoder, fileWriter, level),                     // 文件输出
			zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level), // 控制台输出
		)
	} else {
		core = zapcore.NewCore(encoder, fileWriter, level)
	}

	// 创建日志记录器
	logger := zap.New(
		core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	sugarLogger := logger.Sugar()
	zap.ReplaceGlobals(logger)

	return sugarLogger, nil
}

// getEncoder 获取日志编码器
func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()

	// 自定义时间格式
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05"))
	}

	// 设置日志字段名
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	// 自定义调用者格式
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(caller.TrimmedPath())
	}

	return zapcore.NewJSONEncoder(encoderConfig)
}

// getLogWriter 获取日志写入器
func getLogWriter(filename string, maxSize, maxBackup, maxAge int) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,  // 日志文件路径
		MaxSize:    maxSize,   // 文件大小限制
		MaxBackups: maxBackup, // 备份数量
		MaxAge:     maxAge,    // 保留天数
		Compress:   true,      // 是否压缩
	}
	return zapcore.AddSync(lumberJackLogger)
}

// getDefaultConfig 获取默认日志配置
func getDefaultConfig() *config.Log {
	return &config.Log{
		Filename:   "./logs/app.log",
		MaxSize:    100,    // 100MB
		MaxBackups: 7,      // 保留7个备份
		MaxAge:     30,     // 保留30天
		Level:      "info", // 默认info级别
		Compress:   true,   // 启用压缩
	}
}
