package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gaslab/internal/config"
	"github.com/san-kum/gaslab/internal/engine"
	"github.com/san-kum/gaslab/internal/export"
	"github.com/san-kum/gaslab/internal/metrics"
	"github.com/san-kum/gaslab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile     string
	preset         string
	width          float64
	height         float64
	particles      int
	mass           float64
	radius         float64
	targetTemp     float64
	simRate        int
	renderRate     int
	cellSize       float64
	seed           int64
	exportPath     string
	exportInterval float64
	duration       float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gaslab",
		Short: "2D hard-disk gas simulation",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless, printing pressure once per simulated second",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 0, "stop after this many wall-clock seconds (0 = run until interrupted)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with a live terminal view",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "domain width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "domain height")
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particle count")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "particle mass (kg)")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "particle radius")
	cmd.Flags().Float64Var(&targetTemp, "temp", config.DefaultTargetTemp, "target temperature (K)")
	cmd.Flags().IntVar(&simRate, "rate", config.DefaultSimulationRate, "simulation rate (Hz)")
	cmd.Flags().IntVar(&renderRate, "fps", config.DefaultRenderRate, "render rate")
	cmd.Flags().Float64Var(&cellSize, "cell", config.DefaultCellSize, "grid cell size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&exportPath, "export", config.DefaultExportPath, "speed export file")
	cmd.Flags().Float64Var(&exportInterval, "export-interval", config.DefaultExportInterval, "speed export interval (s)")
}

// buildConfig resolves the precedence preset < config file < flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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
		cfg = loaded
	}

	flagOverrides := []struct {
		name  string
		apply func()
	}{
		{"width", func() { cfg.Width = width }},
		{"height", func() { cfg.Height = height }},
		{"particles", func() { cfg.Particles = particles }},
		{"mass", func() { cfg.Mass = mass }},
		{"radius", func() { cfg.Radius = radius }},
		{"temp", func() { cfg.TargetTemp = targetTemp }},
		{"rate", func() { cfg.SimulationRate = simRate }},
		{"fps", func() { cfg.RenderRate = renderRate }},
		{"cell", func() { cfg.CellSize = cellSize }},
		{"seed", func() { cfg.Seed = seed }},
		{"export", func() { cfg.ExportPath = exportPath }},
		{"export-interval", func() { cfg.ExportInterval = exportInterval }},
	}
	for _, o := range flagOverrides {
		if cmd.Flags().Changed(o.name) {
			o.apply()
		}
	}

	return cfg, cfg.Validate()
}

// buildWorld constructs the world with its standard metrics and starts
// the speed exporter goroutine on ctx.
func buildWorld(ctx context.Context, cfg *config.Config) (*engine.World, error) {
	world, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	world.AddMetric(metrics.NewTemperature())
	world.AddMetric(metrics.NewMeanSpeed())

	writer := export.NewSpeedWriter(cfg.ExportPath,
		time.Duration(cfg.ExportInterval*float64(time.Second)), world)
	go writer.Run(ctx)

	return world, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(duration*float64(time.Second)))
		defer cancel()
	}

	world, err := buildWorld(ctx, cfg)
	if err != nil {
		return err
	}

	world.AddObserver(engine.ObserverFunc(func(r engine.Report) {
		fmt.Printf("Bounces/sec: %d, Actual Pressure: %.3e Pa, Ideal Pressure: %.3e, Percent Diff: %.3f%%",
			r.Bounces, r.Pressure, r.IdealPressure, r.PercentDiff)
		if temp, ok := r.Metrics["temperature"]; ok {
			fmt.Printf(", Temp: %.1f K", temp)
		}
		fmt.Println()
	}))

	fmt.Printf("simulating %d particles in %gx%g at %d Hz\n",
		world.ParticleCount(), cfg.Width, cfg.Height, cfg.SimulationRate)

	err = world.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	world, err := buildWorld(ctx, cfg)
	if err != nil {
		return err
	}
	go world.Run(ctx)

	p := tea.NewProgram(tui.NewModel(world, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
