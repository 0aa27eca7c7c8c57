package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/rocket/asset"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/terminal"
)

// scriptedInput replays one Controls value per poll, then reports no input
type scriptedInput struct {
	queue []terminal.Controls
	polls int
}

func (s *scriptedInput) ReadControls() terminal.Controls {
	s.polls++
	if len(s.queue) == 0 {
		return terminal.Controls{}
	}
	c := s.queue[0]
	s.queue = s.queue[1:]
	return c
}

// at schedules c for the poll with the given zero-based index
func (s *scriptedInput) at(poll int, c terminal.Controls) {
	for len(s.queue) <= poll {
		s.queue = append(s.queue, terminal.Controls{})
	}
	s.queue[poll] = c
}

// recordingSound counts the cues played
type recordingSound struct {
	shots      int
	explosions int
}

func (r *recordingSound) PlayShot()      { r.shots++ }
func (r *recordingSound) PlayExplosion() { r.explosions++ }

// testFrames is a small deterministic art set
func testFrames() *asset.Set {
	return &asset.Set{
		Rocket: [2]asset.Frame{
			asset.MustFrame(" ^ \n/#\\"),
			asset.MustFrame(" ^ \n/=\\"),
		},
		Debris: []asset.Frame{asset.MustFrame("###\n###")},
		Explosion: []asset.Frame{
			asset.MustFrame("(*)"),
			asset.MustFrame("(o)"),
			asset.MustFrame("(.)"),
		},
		GameOver: asset.MustFrame("GAME\nOVER"),
	}
}

type testEnv struct {
	ctx    *engine.GameContext
	screen *terminal.Screen
	input  *scriptedInput
	sound  *recordingSound
}

func newTestEnv(t *testing.T, rows, columns int) *testEnv {
	t.Helper()
	screen, _, err := terminal.NewSimulation(rows, columns)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	t.Cleanup(screen.Fini)

	input := &scriptedInput{}
	sound := &recordingSound{}
	ctx := engine.NewGameContext(engine.DefaultConfig(), screen, input, testFrames())
	ctx.Sound = sound
	ctx.Rand = rand.New(rand.NewSource(1))
	ctx.SetClock(engine.NewMockClockYear(2024))

	return &testEnv{ctx: ctx, screen: screen, input: input, sound: sound}
}

func (e *testEnv) glyph(row, column int) rune {
	r, _ := e.screen.Glyph(row, column)
	return r
}

// blank reports whether every cell of the screen is empty
func (e *testEnv) blank() bool {
	rows, columns := e.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if e.glyph(row, col) != ' ' {
				return false
			}
		}
	}
	return true
}
