package update

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const animFPS = 60

type countTickMsg time.Time

// counterAnim eases the displayed day count toward the real one.
type counterAnim struct {
	enabled bool
	running bool
	pos     float64
	vel     float64
	spring  harmonica.Spring
}

func newCounter(enabled bool, start int) counterAnim {
	return counterAnim{
		enabled: enabled,
		pos:     float64(start),
		spring:  harmonica.NewSpring(harmonica.FPS(animFPS), 8.0, 0.9),
	}
}

func (c counterAnim) Shown() int {
	return int(math.Round(c.pos))
}

// retarget starts ticking when the shown value lags target. Without
// animation it jumps straight there.
func (c *counterAnim) retarget(target int) tea.Cmd {
	if !c.enabled {
		c.pos, c.vel = float64(target), 0
		return nil
	}
	if c.running || c.settled(target) {
		return nil
	}
	c.running = true
	return countTickCmd()
}

// step advances one frame and reports whether another is needed.
func (c *counterAnim) step(target int) bool {
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, float64(target))
	if c.settled(target) {
		c.pos, c.vel = float64(target), 0
		c.running = false
		return false
	}
	return true
}

func (c counterAnim) settled(target int) bool {
	return math.Abs(c.pos-float64(target)) < 0.5 && math.Abs(c.vel) < 0.5
}

func countTickCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg { return countTickMsg(t) })
}
