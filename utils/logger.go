/*
 * Copyright 2026 motorlot.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger = logrus.Logger

type PathFormat int

const (
	PathFormatTruncatedRelative PathFormat = iota
	PathFormatFullRelative
	PathFormatFilenameOnly
)

var (
	defaultLevel     = logrus.InfoLevel
	registryMu       sync.RWMutex
	registry         = map[string]*logrus.Logger{}
	consoleLogFormat = EnvDefaultString("CONSOLE_LOG_FORMAT", "text")
)

// NewLogger returns a named logger writing to stdout. The CONSOLE_LOG_FORMAT
// environment variable switches between the colored text layout and JSON.
func NewLogger(name string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(defaultLevel)
	l.SetReportCaller(true)
	if strings.EqualFold(consoleLogFormat, "json") {
		l.SetFormatter(&JSONLogFormatter{LoggerName: name, PathFmt: PathFormatFullRelative})
	} else {
		l.SetFormatter(&Log4jColorFormatter{
			LoggerName:  name,
			PathFmt:     PathFormatTruncatedRelative,
			ColorCaller: true,
			NameWidth:   10,
			CallerWidth: 25,
		})
	}
	registryMu.Lock()
	registry[name] = l
	registryMu.Unlock()
	return l
}

func ParseLogLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info", "":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// ConfigureLogLevel sets the level for every logger, registered or future.
func ConfigureLogLevel(levelStr string) {
	SetAllLoggersLevel(ParseLogLevel(levelStr))
}

func SetAllLoggersLevel(lvl logrus.Level) {
	registryMu.Lock()
	defaultLevel = lvl
	for _, lg := range registry {
		lg.SetLevel(lvl)
	}
	registryMu.Unlock()
	logrus.SetLevel(lvl)
}

// SetLoggerLevel adjusts one named logger. It reports whether the name is
// registered.
func SetLoggerLevel(name string, lvlStr string) bool {
	registryMu.RLock()
	lg, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return false
	}
	lg.SetLevel(ParseLogLevel(lvlStr))
	return true
}

// Log4jColorFormatter renders entries the way log4j consoles do:
// timestamp, level, pid, thread, logger name, caller, message.
type Log4jColorFormatter struct {
	LoggerName      string
	TimestampFormat string
	PathFmt         PathFormat
	ColorCaller     bool
	NameWidth       int
	CallerWidth     int
}

func (f *Log4jColorFormatter) tsFormat() string {
	if f.TimestampFormat != "" {
		return f.TimestampFormat
	}
	return "2006-01-02 15:04:05.000"
}

func (f *Log4jColorFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	ts := time.Now().Format(f.tsFormat())
	lvl := colorLevel(padLeft(strings.ToUpper(entry.Level.String()), 7), entry.Level)
	pid := colorMagenta(fmt.Sprintf("%-6d", os.Getpid()))
	thread := colorMagenta("[main]")
	name := colorCyan(padLeft(limitRunes(f.LoggerName, f.NameWidth), f.NameWidth))

	caller := ""
	if entry.Caller != nil {
		fileLine := f.callerLine(entry.Caller.File, entry.Caller.Line)
		if f.CallerWidth > 0 {
			fileLine = padLeft(fileLine, f.CallerWidth)
		}
		caller = " " + fileLine
		if f.ColorCaller {
			caller = colorFaint(caller)
		}
	}

	line := fmt.Sprintf("%s %s %s - %s %s%s %s %s\n",
		ts, lvl, pid, thread, name, caller, colorFaint(":"), entry.Message)
	return []byte(line), nil
}

func (f *Log4jColorFormatter) callerLine(file string, line int) string {
	switch f.PathFmt {
	case PathFormatFilenameOnly:
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	case PathFormatFullRelative:
		return fmt.Sprintf("%s:%d", moduleRelative(filepath.ToSlash(file)), line)
	default:
		rel := moduleRelative(filepath.ToSlash(file))
		lineStr := strconv.Itoa(line)
		if f.CallerWidth > 0 {
			rel = compactCaller(rel, f.CallerWidth-len(lineStr)-1)
		}
		return rel + ":" + lineStr
	}
}

// JSONLogFormatter emits one JSON object per entry. The well-known access
// log fields get stable top-level keys, everything else lands in "fields".
type JSONLogFormatter struct {
	LoggerName      string
	TimestampFormat string
	PathFmt         PathFormat
}

type jsonLogRecord struct {
	Time        string                 `json:"time"`
	Level       string                 `json:"level"`
	Logger      string                 `json:"logger"`
	Caller      string                 `json:"caller,omitempty"`
	Message     string                 `json:"message"`
	ClientIP    string                 `json:"client_ip,omitempty"`
	Method      string                 `json:"method,omitempty"`
	Path        string                 `json:"path,omitempty"`
	StatusCode  int                    `json:"status_code,omitempty"`
	LatencyTime string                 `json:"latency_time,omitempty"`
	Fields      map[string]interface{} `json:"fields,omitempty"`
}

func (f *JSONLogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	tsFormat := f.TimestampFormat
	if tsFormat == "" {
		tsFormat = "2006-01-02 15:04:05.000"
	}
	rec := jsonLogRecord{
		Time:    time.Now().Format(tsFormat),
		Level:   entry.Level.String(),
		Logger:  f.LoggerName,
		Message: entry.Message,
	}
	if entry.Caller != nil {
		file := moduleRelative(filepath.ToSlash(entry.Caller.File))
		if f.PathFmt == PathFormatFilenameOnly {
			file = filepath.Base(file)
		}
		rec.Caller = fmt.Sprintf("%s:%d", file, entry.Caller.Line)
	}

	extra := make(map[string]interface{}, len(entry.Data))
	for k, v := range entry.Data {
		switch k {
		case "req_uri":
			if s, ok := v.(string); ok {
				rec.Path = s
				continue
			}
		case "req_method":
			if s, ok := v.(string); ok {
				rec.Method = s
				continue
			}
		case "client_ip":
			if s, ok := v.(string); ok {
				rec.ClientIP = s
				continue
			}
		case "latency_time":
			if s, ok := v.(string); ok {
				rec.LatencyTime = s
				continue
			}
		case "status_code":
			if n, ok := v.(int); ok {
				rec.StatusCode = n
				continue
			}
		}
		extra[k] = v
	}
	if len(extra) > 0 {
		rec.Fields = extra
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

const (
	ansiReset   = "\x1b[0m"
	ansiFaint   = "\x1b[2m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
)

func colorWrap(s, code string) string { return code + s + ansiReset }

func colorMagenta(s string) string { return colorWrap(s, ansiMagenta) }

func colorCyan(s string) string { return colorWrap(s, ansiCyan) }

func colorFaint(s string) string { return colorWrap(s, ansiFaint) }

func colorLevel(s string, level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorWrap(s, ansiRed)
	case logrus.WarnLevel:
		return colorWrap(s, ansiYellow)
	case logrus.InfoLevel:
		return colorWrap(s, ansiGreen)
	case logrus.DebugLevel:
		return colorWrap(s, ansiBlue)
	default:
		return colorWrap(s, ansiMagenta)
	}
}

func padLeft(s string, width int) string {
	if r := []rune(s); len(r) < width {
		return strings.Repeat(" ", width-len(r)) + s
	}
	return s
}

func limitRunes(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

var (
	moduleRootOnce sync.Once
	moduleRoot     string
)

// moduleRelative strips the module root from an absolute caller path, so
// logs stay readable regardless of where the tree is checked out.
func moduleRelative(p string) string {
	moduleRootOnce.Do(func() {
		dir := filepath.Dir(p)
		for {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				moduleRoot = filepath.ToSlash(dir)
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	})
	if moduleRoot != "" && strings.HasPrefix(p, moduleRoot) {
		return strings.TrimPrefix(strings.TrimPrefix(p, moduleRoot), "/")
	}
	return p
}

// compactCaller shortens a relative path log4j-style: directories become
// dotted initials, and an overlong result keeps its rightmost runes.
func compactCaller(p string, max int) string {
	if max <= 0 {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(p), "/")
	for i := 0; i < len(parts)-1; i++ {
		if r := []rune(parts[i]); len(r) > 1 {
			parts[i] = string(r[0])
		}
	}
	out := strings.Join(parts, ".")
	if r := []rune(out); len(r) > max {
		return string(r[len(r)-max:])
	}
	return out
}

func EnvDefaultString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
