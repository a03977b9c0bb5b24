package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStep_FiresOncePerInterval(t *testing.T) {
	fs := NewFixedStep(10)
	assert.Equal(t, 100*time.Millisecond, fs.Interval())

	start := time.Unix(0, 0)
	assert.True(t, fs.ShouldStepAt(start), "first call fires immediately")
	assert.False(t, fs.ShouldStepAt(start.Add(40*time.Millisecond)))
	assert.Equal(t, 60*time.Millisecond, fs.Remaining())
	assert.True(t, fs.ShouldStepAt(start.Add(100*time.Millisecond)))
	assert.False(t, fs.ShouldStepAt(start.Add(150*time.Millisecond)))
}

func TestFixedStep_NonPositiveTPS_DefaultsTo60(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())
	fs.SetTPS(-5)
	assert.Equal(t, time.Second/60, fs.Interval())
}

func TestByteGrid_SetAtCount(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Fill(CellVoid)
	g.Set(1, 1, CellAlive)
	g.Set(5, 5, CellAlive)

	assert.Equal(t, CellAlive, g.At(1, 1))
	assert.Equal(t, CellVoid, g.At(-1, 0))
	assert.Equal(t, 1, g.Count(CellAlive))
	assert.Equal(t, 5, g.Count(CellVoid))

	g.Clear()
	assert.Equal(t, 6, g.Count(CellDead))
}

func TestConfigReaders(t *testing.T) {
	cfg := map[string]string{"w": "12", "h": "x", "density": "0.25", "rule": ""}
	positive := func(v int) bool { return v > 0 }

	assert.Equal(t, 12, IntFrom(cfg, "w", 5, positive))
	assert.Equal(t, 5, IntFrom(cfg, "h", 5, positive))
	assert.Equal(t, 7, IntFrom(cfg, "missing", 7, nil))
	assert.Equal(t, 0.25, FloatFrom(cfg, "density", 0.5, nil))
	assert.Equal(t, 0.5, FloatFrom(cfg, "density", 0.5, func(v float64) bool { return v > 1 }))
	assert.Equal(t, "classic", StringFrom(cfg, "rule", "classic"))
}

func TestRegister_IgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	assert.Len(t, Sims(), before)
}
