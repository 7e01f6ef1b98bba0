package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		DebugLevel: zapcore.DebugLevel,
		"bogus":    defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetReturnsSingleton(t *testing.T) {
	a := Get(InfoLevel, FormatJSON)
	b := Get(ErrorLevel, FormatConsole)
	if a != b {
		t.Fatal("expected Get to return the same instance")
	}
	if a.SugaredLogger == nil {
		t.Fatal("expected sugared logger to be set")
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	Nop().Infow("ignored", "k", "v")
}
