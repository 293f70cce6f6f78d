package scene

import (
	"fmt"

	"archery3d/game"
)

// HUD returns the text overlay lines for st, top to bottom.
func HUD(st *game.State) []string {
	m := st.Match
	if !m.Over {
		return []string{
			fmt.Sprintf("Score: %d", m.Score),
			fmt.Sprintf("Time: %d", m.Remaining),
		}
	}
	return []string{
		st.Outcome(),
		fmt.Sprintf("Final Score: %d", m.Score),
		"Press R to restart!",
	}
}
