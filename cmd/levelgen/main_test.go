package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roguelike3d/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Level.Seed = 5
	cfg.Render.MinimapPath = filepath.Join(tmp, "map.png")
	return cfg
}

func TestGenerateStatic(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level.Kind = "static"
	var out bytes.Buffer
	if err := generate(cfg, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"level     crypt static depth 1, 30x11",
		"rooms     4 filled, 0 dropped",
		"actors    3",
		"minimap   " + cfg.Render.MinimapPath,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary lacks %q:\n%s", want, out.String())
		}
	}
	if _, err := os.Stat(cfg.Render.MinimapPath); err != nil {
		t.Errorf("minimap: %v", err)
	}
}

func TestGenerateBSPNoMinimap(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level.Biome = "warrens"
	cfg.Render.MinimapPath = ""
	var out bytes.Buffer
	if err := generate(cfg, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "warrens bsp") {
		t.Errorf("summary:\n%s", out.String())
	}
	if strings.Contains(out.String(), "minimap") {
		t.Error("no minimap was asked for")
	}
}

func TestGenerateInvalid(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level.Biome = "desert"
	if err := generate(cfg, io.Discard, io.Discard); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
