package logware

import (
	"io"
	"os"
	"path/filepath"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SinkConfig configures the zerolog-backed sink. At least one of
// ConsoleLogging/FileLogging must be enabled.
type SinkConfig struct {
	Level             string `validate:"required"`
	WithTimestamp     bool
	ConsoleLogging    bool
	FileLogging       bool
	LogFileDir        string
	LogFileName       string // defaults to the executable name
	LogFileMaxBackups int
	LogFileMaxAgeDays int
	LogFileMaxSizeMB  int
}

// ZerologSink writes records through rs/zerolog to a rotating log file
// and/or the console. It must be initialized before use; Log on an
// uninitialized sink is a no-op, so a sink can be installed with
// SetSink before or after Initialize without records failing.
type ZerologSink struct {
	Config      *SinkConfig
	logger      atomic.Pointer[zerolog.Logger]
	fileWriter  *lumberjack.Logger
	initialized atomic.Bool
}

// NewZerologSink returns an uninitialized sink for the given config.
func NewZerologSink(cfg *SinkConfig) *ZerologSink {
	return &ZerologSink{Config: cfg}
}

// Initialize validates the config and builds the zerolog logger behind
// the sink.
func (s *ZerologSink) Initialize() error {
	const op smerrors.Op = "logware.ZerologSink.Initialize"

	if err := validateConfig(s.Config); err != nil {
		return err
	}

	writers, err := s.initializeWriters()
	if err != nil {
		return err
	}
	if len(writers) == 0 {
		return smerrors.New(op).Msg(errMsgNoChannels)
	}

	level, err := zerolog.ParseLevel(s.Config.Level)
	if err != nil {
		return smerrors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level)
	if s.Config.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}

	s.logger.Store(&logger)
	s.initialized.Store(true)
	return nil
}

// Close closes the sink and releases the file writer if any. It is
// safe to call Close multiple times.
func (s *ZerologSink) Close() error {
	if !s.initialized.CompareAndSwap(true, false) {
		return nil
	}
	if s.fileWriter != nil {
		return s.fileWriter.Close()
	}
	return nil
}

// Log maps one record onto a zerolog event. The record's attribution
// travels as target/module/file/line fields; an attached error adds
// the error-chain enrichment fields.
func (s *ZerologSink) Log(rec Record) {
	if !s.initialized.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}

	event := logger.WithLevel(rec.Level)
	if event == nil {
		return
	}

	event = event.
		Str("target", rec.Target).
		Str("module", rec.ModulePath).
		Str("file", rec.File).
		Int("line", rec.Line)

	if rec.Err != nil {
		event = event.Err(rec.Err)
		chain, ops, root, rootOp := buildErrorChain(rec.Err)
		if len(chain) > 0 {
			event = event.
				Strs("error_chain", chain).
				Str("error_root", root).
				Str("error_history", joinChain(chain)).
				Strs("error_ops", ops)
			if rootOp != emptyString {
				event = event.Str("error_root_op", rootOp)
			}
		}
	}

	event.Msg(rec.Message)
}

func (s *ZerologSink) initializeWriters() ([]io.Writer, error) {
	var writers []io.Writer

	if s.Config.FileLogging {
		fw, err := s.initializeRollingFileWriter()
		if err != nil {
			return nil, err
		}
		s.fileWriter = fw
		writers = append(writers, fw)
	}
	if s.Config.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return writers, nil
}

func (s *ZerologSink) initializeRollingFileWriter() (*lumberjack.Logger, error) {
	const op smerrors.Op = "logware.ZerologSink.initializeRollingFileWriter"

	name := s.Config.LogFileName
	if name == emptyString {
		exeName, err := utils.ExecName(true)
		if err != nil || exeName == emptyString {
			exeName = "app"
		}
		name = exeName + ".log"
	}

	dir := s.Config.LogFileDir
	if dir != emptyString {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, smerrors.New(op).Err(err).Msg("Failed to create log directory.")
		}
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxBackups: s.Config.LogFileMaxBackups,
		MaxAge:     s.Config.LogFileMaxAgeDays,
		MaxSize:    s.Config.LogFileMaxSizeMB,
	}, nil
}
