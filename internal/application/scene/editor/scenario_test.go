package editor

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/leveleditor/internal/application/replay"
	"github.com/younwookim/leveleditor/internal/application/scene"
	"github.com/younwookim/leveleditor/internal/application/ui"
	"github.com/younwookim/leveleditor/internal/domain/entity"
	"github.com/younwookim/leveleditor/internal/domain/geom"
	"github.com/younwookim/leveleditor/internal/infrastructure/config"
)

// play runs the editor over a replayed script until the script ends or the
// editor quits. It returns the number of completed frames.
func play(t *testing.T, e *Editor, r *replay.Replayer) (int, error) {
	t.Helper()
	screen := ebiten.NewImage(320, 240)
	frames := 0
	for !r.Done() {
		if _, err := e.Update(1.0 / 60.0); err != nil {
			return frames, err
		}
		e.Draw(screen)
		frames++
	}
	return frames, nil
}

func TestScenario_PressRThreeTimes(t *testing.T) {
	r := replay.NewReplayer(replay.Script{}.Then(
		replay.Keys(ebiten.KeyR),
		replay.Keys(ebiten.KeyR),
		replay.Keys(ebiten.KeyR),
	))
	e := New(config.Default(), r, &mockControls{})

	frames, err := play(t, e, r)
	require.NoError(t, err)

	assert.Equal(t, 3, frames)
	assert.Equal(t, []entity.Kind{
		entity.KindBox, entity.KindEdge,
		entity.KindBox, entity.KindBox, entity.KindBox,
	}, e.Entities().Kinds())
	assert.Equal(t, entity.EntityID(5), e.Entities().At(4).ID())
}

func TestScenario_ClearThenPressR(t *testing.T) {
	r := replay.NewReplayer(replay.Script{}.Then(
		replay.Frame{},
		replay.Keys(ebiten.KeyR),
	))
	controls := &mockControls{}
	controls.onUpdate = func(st *ui.State, act ui.Actions) {
		if controls.updateCalls == 1 {
			act.ClearEntities()
		}
	}
	e := New(config.Default(), r, controls)

	_, err := play(t, e, r)
	require.NoError(t, err)

	assert.Equal(t, []entity.Kind{entity.KindBox}, e.Entities().Kinds())
	assert.Equal(t, 1, e.World().BodyCount())
}

func TestScenario_PanAndQuit(t *testing.T) {
	r := replay.NewReplayer(replay.Script{}.
		Then(replay.Keys(ebiten.KeyD, ebiten.KeyD)).
		Then(replay.Idle(2)...).
		Then(replay.Quit()).
		Then(replay.Keys(ebiten.KeyR)))
	e := New(config.Default(), r, &mockControls{})

	frames, err := play(t, e, r)

	assert.True(t, errors.Is(err, scene.ErrQuit))
	assert.Equal(t, 3, frames)
	assert.Equal(t, geom.V(1.0, 0), e.Camera().Center)
	assert.Equal(t, 2, e.Entities().Len())
	assert.Equal(t, 3, e.Steps(), "one step for each presented frame before the quit")
	assert.False(t, r.Done(), "frames after the quit are never polled")
}
