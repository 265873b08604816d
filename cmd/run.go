package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bugVanisher/hud/overlay"
	"github.com/bugVanisher/hud/settings"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the overlay demo loop",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		p, err := overlay.New(overlay.Config{
			WindowCapacity:  runArg.window,
			PublishInterval: runArg.publish,
			ColorCode:       runArg.color,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), runArg.duration)
		defer cancel()

		// pick up persisted display settings and follow live edits
		changes := make(chan settings.Display, 1)
		if path, err := settings.Path(); err == nil {
			if d, err := settings.Load(path); err == nil {
				p.SetSettings(d)
			}
			go func() {
				err := settings.Watch(ctx, path, func(d settings.Display) {
					select {
					case changes <- d:
					default:
					}
				})
				if err != nil {
					log.Warn().Err(err).Msg("settings watch unavailable")
				}
			}()
		}

		ticker := time.NewTicker(runArg.tick)
		defer ticker.Stop()

		start := time.Now()
		last := start
		for {
			select {
			case <-ctx.Done():
				log.Info().Dur("ran", time.Since(start)).Msg("overlay demo done")
				return nil
			case d := <-changes:
				p.SetSettings(d)
			case now := <-ticker.C:
				dt := now.Sub(last).Seconds()
				last = now
				if p.Tick(dt, now.Sub(start).Seconds()) {
					fmt.Println(p.Text())
					fmt.Println()
				}
			}
		}
	},
}

type runArgs struct {
	window   int
	publish  float64
	color    bool
	tick     time.Duration
	duration time.Duration
}

var runArg runArgs

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&runArg.window, "window", "w", 100, "frame-time window capacity")
	runCmd.Flags().Float64VarP(&runArg.publish, "publish", "p", 0.5, "seconds between FPS re-renders")
	runCmd.Flags().BoolVarP(&runArg.color, "color", "c", true, "color-code the FPS value")
	runCmd.Flags().DurationVarP(&runArg.tick, "tick", "t", 16666*time.Microsecond, "simulated frame interval")
	runCmd.Flags().DurationVarP(&runArg.duration, "duration", "d", 10*time.Second, "how long to run")
}
