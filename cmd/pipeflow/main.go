package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/pipeflow/internal/config"
	"github.com/san-kum/pipeflow/internal/figure"
	"github.com/san-kum/pipeflow/internal/gui"
	"github.com/san-kum/pipeflow/internal/pipe"
	"github.com/san-kum/pipeflow/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool
	// render output
	output string
	dpi    int
	// terminal ring spacing
	stride int
)

// main registers the commands and runs the root command, which opens the
// display window when no subcommand is given. It exits with status 1 if the
// command returns an error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("pipeflow failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pipeflow",
		Short:         "bent pipe pressure and velocity visualization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: runShow,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene config file (yaml or ini)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "open the two-panel 3D window",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "write the two-panel figure to a png or svg file",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&output, "output", "o", "pipe.png", "output file (.png or .svg)")
	renderCmd.Flags().IntVar(&dpi, "dpi", 100, "png resolution")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "view the pipe in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}
	termCmd.Flags().IntVar(&stride, "stride", 15, "length points between drawn rings")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "print pressure and velocity profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name).Params()
				fmt.Printf("  %-10s bend %s, grid %dx%d\n", name, viz.Degrees(p.BendAngle), p.RadiusPoints, p.LengthPoints)
			}
		},
	}

	rootCmd.AddCommand(showCmd, renderCmd, termCmd, profileCmd, presetsCmd)
	return rootCmd
}

// loadConfig resolves the preset, then the config file on top of it.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			log.WithField("config", configFile).Debug("config file overrides preset")
		}
		cfg = loaded
	}
	return cfg, nil
}

func synthesize() (*config.Config, *pipe.Scene, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	scene, err := pipe.Synthesize(cfg.Params())
	if err != nil {
		return nil, nil, err
	}
	r, c := scene.Dims()
	log.WithFields(log.Fields{
		"grid":    fmt.Sprintf("%dx%d", r, c),
		"bend":    viz.Degrees(cfg.Pipe.BendAngle),
		"elapsed": time.Since(start),
	}).Debug("scene synthesized")
	return cfg, scene, nil
}

func camera(cfg *config.Config) *viz.Camera {
	return viz.NewCamera(cfg.View.Elevation, cfg.View.Azimuth)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, scene, err := synthesize()
	if err != nil {
		return err
	}
	app := gui.NewApp(scene, camera(cfg), cfg.View.ArrowLength, cfg.View.Normalize)
	log.WithFields(log.Fields{
		"faces":  len(app.Faces),
		"arrows": len(app.Arrows),
	}).Info("opening window")
	gui.Run(app)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, scene, err := synthesize()
	if err != nil {
		return err
	}

	opts := figure.DefaultOptions()
	opts.DPI = dpi
	opts.Camera = camera(cfg)
	opts.ArrowLength = cfg.View.ArrowLength
	opts.Normalize = cfg.View.Normalize

	start := time.Now()
	if err := figure.New(scene, opts).Save(output); err != nil {
		return fmt.Errorf("render %s: %w", output, err)
	}
	log.WithFields(log.Fields{
		"output":  output,
		"elapsed": time.Since(start),
	}).Info("figure written")
	return nil
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, scene, err := synthesize()
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewViewer(scene, camera(cfg), stride), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runProfile(cmd *cobra.Command, args []string) error {
	_, scene, err := synthesize()
	if err != nil {
		return err
	}
	fmt.Println(viz.Summary(scene))
	fmt.Println()
	fmt.Println(viz.PressureGraph(scene, 80, 10))
	fmt.Println()
	fmt.Println(viz.VelocityGraph(scene, 80, 10))
	return nil
}
