package asset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed frames/*.txt
var embedded embed.FS

// File names of the art set, relative to the frames directory
var (
	RocketFiles    = []string{"rocket_frame_1.txt", "rocket_frame_2.txt"}
	DebrisFiles    = []string{"debris_bolt.txt", "debris_panel.txt", "debris_satellite.txt", "debris_tank.txt", "debris_lamp.txt", "debris_scrap.txt"}
	ExplosionFiles = []string{"explosion_1.txt", "explosion_2.txt", "explosion_3.txt", "explosion_4.txt"}
	GameOverFile   = "gameover.txt"
)

// Set holds every piece of art the game draws
type Set struct {
	Rocket    [2]Frame
	Debris    []Frame
	Explosion []Frame
	GameOver  Frame
}

// Embedded returns the frames directory compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "frames")
	if err != nil {
		panic(err)
	}
	return sub
}

// ReadFrames returns the raw contents of the named files in argument order
func ReadFrames(fsys fs.FS, names ...string) ([]string, error) {
	texts := make([]string, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", name, err)
		}
		texts = append(texts, string(data))
	}
	return texts, nil
}

// LoadFrames reads and parses the named files in argument order
func LoadFrames(fsys fs.FS, names ...string) ([]Frame, error) {
	texts, err := ReadFrames(fsys, names...)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, len(texts))
	for i, text := range texts {
		f, err := NewFrame(text)
		if err != nil {
			return nil, fmt.Errorf("parse frame %s: %w", names[i], err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// LoadSet loads the full art set from fsys
func LoadSet(fsys fs.FS) (*Set, error) {
	rocket, err := LoadFrames(fsys, RocketFiles...)
	if err != nil {
		return nil, err
	}
	debris, err := LoadFrames(fsys, DebrisFiles...)
	if err != nil {
		return nil, err
	}
	explosion, err := LoadFrames(fsys, ExplosionFiles...)
	if err != nil {
		return nil, err
	}
	gameOver, err := LoadFrames(fsys, GameOverFile)
	if err != nil {
		return nil, err
	}

	return &Set{
		Rocket:    [2]Frame{rocket[0], rocket[1]},
		Debris:    debris,
		Explosion: explosion,
		GameOver:  gameOver[0],
	}, nil
}

// LoadDir loads the art set from a directory on disk, or the embedded set when dir is empty
func LoadDir(dir string) (*Set, error) {
	if dir == "" {
		return LoadSet(Embedded())
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("frames directory: %w", err)
	}
	return LoadSet(os.DirFS(dir))
}
