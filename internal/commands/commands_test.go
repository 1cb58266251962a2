package commands

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestExecute(t *testing.T) {
	reg := NewRegistry()
	fs := newFlagSet("tetrahedron")
	depth := fs.Int("depth", 2, "")
	ran := 0
	reg.Register("tetrahedron", "open the tetrahedron window", fs, func() error {
		ran = *depth
		return nil
	})
	failing := errors.New("boom")
	reg.Register("snapshot", "write a PNG", newFlagSet("snapshot"), func() error { return failing })

	if err := reg.Execute([]string{"tetrahedron", "-depth", "3"}); err != nil {
		t.Fatal(err)
	}
	if ran != 3 {
		t.Errorf("Run saw depth %d, want 3", ran)
	}

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing", nil, ErrUsage},
		{"unknown", []string{"mandelbrot"}, ErrUsage},
		{"run error", []string{"snapshot"}, failing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := reg.Execute(tt.args); !errors.Is(err, tt.is) {
				t.Errorf("Execute(%v) = %v, want %v", tt.args, err, tt.is)
			}
		})
	}

	if err := reg.Execute([]string{"tetrahedron", "-nope"}); err == nil {
		t.Error("bad flag accepted")
	}
}

func TestUsage(t *testing.T) {
	reg := NewRegistry()
	reg.Register("sierpinski", "open the Sierpinski window", newFlagSet("sierpinski"), func() error { return nil })
	reg.Register("snapshot", "write a PNG", newFlagSet("snapshot"), func() error { return nil })

	if got := strings.Join(reg.Names(), ","); got != "sierpinski,snapshot" {
		t.Errorf("Names() = %s", got)
	}
	var buf bytes.Buffer
	reg.Usage(&buf)
	out := buf.String()
	for _, want := range []string{"sierpinski", "open the Sierpinski window", "snapshot", "write a PNG"} {
		if !strings.Contains(out, want) {
			t.Errorf("Usage() missing %q:\n%s", want, out)
		}
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"omitted", nil, false},
		{"given", []string{"-depth", "4"}, true},
		{"given as default value", []string{"-depth", "0"}, true},
		{"other flag only", []string{"-seed", "7"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlagSet("snapshot")
			fs.Int("depth", 0, "")
			fs.Int64("seed", 0, "")
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}
			if got := IsSet(fs, "depth"); got != tt.want {
				t.Errorf("IsSet(depth) after %v = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
