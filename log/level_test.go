package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

var levelNames = []struct {
	in   Level
	want string
}{
	{LevelDisabled, "DISABLED"},
	{LevelDisabled + 1, "DISABLED"},
	{LevelError, slog.LevelError.String()},
	{LevelError + 2, (slog.LevelError + 2).String()},
	{LevelWarn, slog.LevelWarn.String()},
	{LevelInfo, slog.LevelInfo.String()},
	{LevelInfo - 3, (slog.LevelInfo - 3).String()},
	{LevelDebug, slog.LevelDebug.String()},
}

func TestLevelString(t *testing.T) {
	for _, tt := range levelNames {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d: Wanted %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestLevelMarshal(t *testing.T) {
	for _, tt := range levelNames {
		text, err := tt.in.MarshalText()
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if string(text) != tt.want {
			t.Errorf("%d: Wanted %s, got %s", tt.in, tt.want, text)
		}
		js, err := tt.in.MarshalJSON()
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if string(js) != `"`+tt.want+`"` {
			t.Errorf("%d: Wanted %q, got %s", tt.in, tt.want, js)
		}
	}
}

var levelInputs = []struct {
	in   string
	want Level
}{
	{"DISABLED", LevelDisabled},
	{"DiSaBlE", LevelDisabled},
	{"false", LevelDisabled},
	{"off", LevelDisabled},
	{"ERROR", LevelError},
	{"Error+1", LevelError + 1},
	{"debug", LevelDebug},
}

func TestLevelUnmarshal(t *testing.T) {
	for _, tt := range levelInputs {
		var got Level
		if err := got.UnmarshalText([]byte(tt.in)); err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: Wanted %s, got %s", tt.in, tt.want, got)
		}
		got = 0
		if err := got.UnmarshalJSON([]byte(`"` + tt.in + `"`)); err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: Wanted %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestLevelAppendText(t *testing.T) {
	buf := make([]byte, 4, 16)
	wantData := []byte("\x00\x00\x00\x00DISABLED")
	data, err := LevelDisabled.AppendText(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, wantData) {
		t.Errorf("Wanted %q, got %q", wantData, data)
	}
}

func TestLevelFlag(t *testing.T) {
	var lf LevelFlag
	if err := lf.Set("warn"); err != nil {
		t.Fatal(err)
	}
	if got := lf.Get(); got != LevelWarn {
		t.Errorf("Wanted %s, got %v", LevelWarn, got)
	}
	if lf.Type() != "level" {
		t.Errorf("Wanted type level, got %s", lf.Type())
	}
	if err := lf.Set("loud"); err == nil {
		t.Error("Wanted error for unknown level")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	old := LogLevel()
	t.Cleanup(func() {
		SetLogLevel(old)
		SetHandler(DiscardHandler)
	})

	SetTextHandler(&buf)
	SetLogLevel(LevelWarn)
	Info("hidden")
	Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Info logged at LevelWarn: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Warn not logged at LevelWarn: %q", buf.String())
	}

	SetLogLevel(LevelDisabled)
	buf.Reset()
	Error("silenced", nil)
	if buf.Len() > 0 {
		t.Errorf("Error logged at LevelDisabled: %q", buf.String())
	}
}
