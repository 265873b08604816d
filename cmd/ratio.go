package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bugVanisher/hud/common/errs"
	"github.com/bugVanisher/hud/ratio"
)

var ratioCmd = &cobra.Command{
	Use:   "ratio <width> <height>",
	Short: "Reduce a resolution to its aspect ratio",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		width, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		height, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		w, h, err := ratio.ReduceStrict(width, height)
		if err != nil {
			log.Error().Int32("code", errs.Code(err)).Msg(errs.Msg(err))
			return err
		}
		fmt.Printf("%d:%d\n", w, h)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratioCmd)
}
