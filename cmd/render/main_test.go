package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/canvas-lab/internal/render"
	"github.com/JaimeStill/canvas-lab/web/app"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func decodeFile(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestNoiseCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "noise.png")

	if _, err := run(t, "noise", "--width", "48", "--height", "24", "--octaves", "3", "--palette", "terrain", "--out", out); err != nil {
		t.Fatalf("noise: %v", err)
	}
	if w, h := decodeFile(t, out); w != 48 || h != 24 {
		t.Errorf("size = %dx%d, want 48x24", w, h)
	}
}

func TestLifeCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "life.png")

	if _, err := run(t, "life", "--width", "10", "--height", "5", "--cell", "3", "--generations", "4", "-o", out); err != nil {
		t.Fatalf("life: %v", err)
	}
	if w, h := decodeFile(t, out); w != 30 || h != 15 {
		t.Errorf("size = %dx%d, want 30x15", w, h)
	}
}

func TestLifeCommand_Stdout(t *testing.T) {
	stdout, err := run(t, "life", "--width", "4", "--height", "4", "--cell", "1", "--out", "-")
	if err != nil {
		t.Fatalf("life: %v", err)
	}
	if _, err := png.Decode(strings.NewReader(stdout)); err != nil {
		t.Errorf("stdout is not a PNG: %v", err)
	}
}

func TestNoiseCommand_Invalid(t *testing.T) {
	_, err := run(t, "noise", "--width", "5000", "--out", filepath.Join(t.TempDir(), "x.png"))
	if !errors.Is(err, render.ErrInvalidRequest) {
		t.Errorf("error = %v, want %v", err, render.ErrInvalidRequest)
	}
}

func TestRoutesCommand(t *testing.T) {
	stdout, err := run(t, "routes", "--base-path", "/canvas")
	if err != nil {
		t.Fatalf("routes: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), stdout)
	}
	if f := strings.Fields(lines[1]); f[0] != "PerlinNoise" || f[len(f)-1] != "/canvas" {
		t.Errorf("first route line = %q", lines[1])
	}
	if f := strings.Fields(lines[2]); f[0] != "Intro" || f[len(f)-1] != "/canvas/intro" {
		t.Errorf("second route line = %q", lines[2])
	}
}

func TestRoutesCommand_JSON(t *testing.T) {
	stdout, err := run(t, "routes", "--json")
	if err != nil {
		t.Fatalf("routes: %v", err)
	}

	var got []app.RouteInfo
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []app.RouteInfo{
		{Name: "PerlinNoise", Path: "/", Title: "Perlin Noise", URL: "/"},
		{Name: "Intro", Path: "/intro", Title: "Game of Life", URL: "/intro"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
}
