package worldmaze

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/maze-explorer-api/explorer"
)

var facingArrows = map[explorer.Direction]string{
	explorer.North: "↑",
	explorer.East:  "→",
	explorer.South: "↓",
	explorer.West:  "←",
}

// AsciiRenderer prints knowledge-grid snapshots in the map notation,
// with the agent drawn as a facing arrow and unknown slots as "?". An
// optional delay after each frame paces live viewing; the explorer's
// correctness never depends on any of it.
type AsciiRenderer struct {
	out   io.Writer
	delay time.Duration
}

// NewAsciiRenderer creates a renderer writing frames to out, sleeping
// delay after each one.
func NewAsciiRenderer(out io.Writer, delay time.Duration) *AsciiRenderer {
	return &AsciiRenderer{out: out, delay: delay}
}

// Render writes one snapshot of the grid and pose.
func (r *AsciiRenderer) Render(g *explorer.KnowledgeGrid, p explorer.Pose) {
	var b strings.Builder
	for y := 0; y < g.Extent(); y++ {
		for x := 0; x < g.Extent(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if x == p.X && y == p.Y {
				b.WriteString(facingArrows[p.Facing])
				continue
			}
			slot, _ := g.At(x, y)
			b.WriteString(tokenForSlot(slot, y))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(r.out, "-----------------\n\n%s\n", b.String())
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
}
