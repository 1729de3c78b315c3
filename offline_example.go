package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-explorer-api/explorer"
	"github.com/beka-birhanu/maze-explorer-api/worldmaze"
)

// referenceWorldMap is a 4x4 world with two pits and the goal in the top
// row, handy for watching the agent work without any backing services.
const referenceWorldMap = `
+  -  +  -  +  -  +  -  +
|  o  .  o  .  w  .  o  |
+  .  +  .  +  -  +  .  +
|  o  .  x  .  o  .  o  |
+  -  +  .  +  .  +  .  +
|  o  .  o  .  o  .  o  |
+  .  +  .  +  .  +  .  +
|  o  .  o  .  x  .  o  |
+  -  +  -  +  -  +  -  +
`

// main1 runs a single offline exploration with live ASCII rendering.
func main1() {
	world, err := worldmaze.Parse(referenceWorldMap)
	if err != nil {
		fmt.Printf("parsing world map: %s\n", err)
		os.Exit(1)
	}

	agent, err := explorer.New(explorer.Config{
		Size:     world.Size(),
		Start:    world.StartPose(),
		Oracle:   world,
		Renderer: worldmaze.NewAsciiRenderer(os.Stdout, 600*time.Millisecond),
	})
	if err != nil {
		fmt.Printf("creating explorer: %s\n", err)
		os.Exit(1)
	}

	result, err := agent.Run()
	if err != nil {
		fmt.Printf("exploring: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Goal located - Cell: (%d, %d) after %d steps and %d turns\n",
		result.Goal.X, result.Goal.Y, result.Steps, result.Turns)
}
