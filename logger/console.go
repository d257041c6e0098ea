package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// styles holds the ANSI styles used by the console writer.
type styles struct {
	dim    *color.Color
	levels map[string]levelStyle
}

type levelStyle struct {
	badge string
	color *color.Color
}

func newStyles(enabled bool) *styles {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &styles{
		dim: mk(color.Faint),
		levels: map[string]levelStyle{
			zerolog.DebugLevel.String(): {"[DEBUG   ]", mk(color.FgBlue)},
			zerolog.InfoLevel.String():  {"[INFO    ]", mk(color.FgGreen)},
			zerolog.WarnLevel.String():  {"[WARNING ]", mk(color.FgYellow)},
			zerolog.ErrorLevel.String(): {"[ERROR   ]", mk(color.FgRed)},
			zerolog.FatalLevel.String(): {"[CRITICAL]", mk(color.FgMagenta)},
		},
	}
}

func (s *styles) level(i interface{}) string {
	name := fmt.Sprintf("%s", i)
	ls, ok := s.levels[name]
	if !ok {
		return fmt.Sprintf("[%-8s]", name)
	}
	return ls.color.Sprint(ls.badge)
}

// colorEnabled decides whether ANSI styles are written to out.
func colorEnabled(cfg *Config, out io.Writer) bool {
	if cfg.NoColors {
		return false
	}
	if cfg.ForceColors {
		return true
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newConsoleWriter renders records as
//
//	<time> [LEVEL   ] <logger> [tag1, tag2] (file.go:12) message key=value
func newConsoleWriter(cfg *Config, out io.Writer) zerolog.ConsoleWriter {
	st := newStyles(colorEnabled(cfg, out))

	w := zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldLogger,
			FieldTags,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{FieldLogger, FieldTags},
		FormatTimestamp: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return st.dim.Sprint(fmt.Sprintf("%s", i))
		},
		FormatLevel: st.level,
		FormatCaller: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return st.dim.Sprint("(" + filepath.Base(fmt.Sprintf("%s", i)) + ")")
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return st.dim.Sprint(fmt.Sprintf("%s=", i))
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return trimTrailingSpace(fmt.Sprintf("%s", i))
		},
	}
	if cfg.NoTime {
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	return w
}

func trimTrailingSpace(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

func outputWriter(output string) *os.File {
	switch output {
	case "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}
