package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Report records how a level came out.
type Report struct {
	Seed          int64  `json:"seed"`
	Biome         string `json:"biome"`
	Kind          string `json:"kind"`
	Depth         int    `json:"depth"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	RoomsFilled   int    `json:"rooms_filled"`
	RoomsDropped  int    `json:"rooms_dropped"`
	ObjectsPlaced int    `json:"objects_placed"`
	ObjectsFailed int    `json:"objects_failed"`
	Objects       int    `json:"objects"`
	Actors        int    `json:"actors"`
	Particles     int    `json:"particles"`
	Batches       int    `json:"batches"`
}

// Report summarises the level as built so far.
func (w *World) Report() Report {
	filled, dropped, _ := w.Filler.Progress()
	placed, failed := w.Filler.Objects()
	return Report{
		Seed:          w.seed,
		Biome:         w.Level.Biome.Name,
		Kind:          w.Level.Kind.String(),
		Depth:         w.Level.Depth,
		Width:         w.Level.Grid.Width,
		Height:        w.Level.Grid.Height,
		RoomsFilled:   filled,
		RoomsDropped:  dropped,
		ObjectsPlaced: placed,
		ObjectsFailed: failed,
		Objects:       w.Level.Objects.Len(),
		Actors:        w.Level.Actors.Len(),
		Particles:     w.Level.Particles.Len(),
		Batches:       len(w.Mesher.Batches()),
	}
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", r.Seed),
		slog.String("biome", r.Biome),
		slog.String("kind", r.Kind),
		slog.Int("depth", r.Depth),
		slog.Int("rooms_filled", r.RoomsFilled),
		slog.Int("rooms_dropped", r.RoomsDropped),
		slog.Int("objects_failed", r.ObjectsFailed),
		slog.Int("objects", r.Objects),
		slog.Int("actors", r.Actors),
		slog.Int("batches", r.Batches),
	)
}

// saveReport appends the report as a single JSON line to levels.jsonl.
// Failures are logged, never returned, so a disk problem never stops the
// viewer.
func saveReport(r Report, log *slog.Logger) {
	dir, err := reportDir()
	if err != nil {
		log.Warn("level report skipped", "error", err)
		return
	}
	if err := appendReport(filepath.Join(dir, "levels.jsonl"), r); err != nil {
		log.Warn("level report not saved", "dir", dir, "error", err)
	}
}

func appendReport(path string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// reportDir returns the directory where level reports are stored:
// $XDG_DATA_HOME/roguelike3d, defaulting to ~/.local/share/roguelike3d.
func reportDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "roguelike3d"), nil
}
