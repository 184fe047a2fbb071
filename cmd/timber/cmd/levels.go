package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/willibrandon/timber/core"
)

func (c *command) initLevelsCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "levels",
		Short: "List levels and their priorities",
		Run: func(cmd *cobra.Command, args []string) {
			levels := append([]core.Level(nil), core.Levels...)
			sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
			for _, level := range levels {
				cmd.Printf("%-9s %d\n", level, int(level))
			}
		},
	})
}
