package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/nkubana0/brainiac/internal/config"
	"github.com/nkubana0/brainiac/internal/env"
	"github.com/nkubana0/brainiac/internal/session"
	"github.com/nkubana0/brainiac/internal/tui"
	"github.com/nkubana0/brainiac/internal/viz"
)

var (
	configFile string
	preset     string
	dataDir    string

	width         int
	height        int
	fps           int
	episodeLength int
	steps         int
	seed          int64
	record        bool
)

// main registers the CLI commands; the bare command runs the GUI demo.
func main() {
	rootCmd := &cobra.Command{
		Use:   "brainiac",
		Short: "adaptive e-learning & AAC dashboard",
		RunE:  runDemo,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the dashboard against a scripted environment",
		RunE:  runDemo,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal version of the dashboard",
		RunE:  runLive,
	}

	for _, cmd := range []*cobra.Command{rootCmd, demoCmd, liveCmd} {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
		cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
		cmd.Flags().IntVar(&episodeLength, "episode-length", config.DefaultEpisodeLength, "episode length shown in the step display")
		cmd.Flags().IntVar(&steps, "steps", config.DefaultDemoSteps, "number of steps to run")
		cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
		cmd.Flags().BoolVar(&record, "record", false, "record the session trace")
	}

	replayCmd := &cobra.Command{
		Use:   "replay [session_id]",
		Short: "replay a recorded session in the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE:  replaySession,
	}
	replayCmd.Flags().IntVar(&fps, "fps", 0, "override recorded frame rate")

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot session metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [session_id]",
		Short: "export a session to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [session_id]",
		Short: "export session frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(demoCmd, liveCmd, replayCmd, sessionsCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers settings: defaults, then preset, then config file,
// then any CLI flags set on this invocation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("episode-length") {
		cfg.EpisodeLength = episodeLength
	}
	if cmd.Flags().Changed("steps") {
		cfg.Demo.Steps = steps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Demo.Seed = seed
	}
	if cmd.Flags().Changed("record") {
		cfg.Demo.Record = record
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if cfg.Demo.Seed == 0 {
		cfg.Demo.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	vz, err := viz.New(viz.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		FPS:           cfg.FPS,
		EpisodeLength: cfg.EpisodeLength,
		ActionNames:   cfg.ActionNames,
	})
	if err != nil {
		return err
	}
	defer vz.Close()

	scripted := env.NewScripted(cfg.Demo.Seed, cfg.EpisodeLength)

	var rec *session.Recorder
	if cfg.Demo.Record {
		rec = session.NewRecorder()
	}

	for i := 0; i < cfg.Demo.Steps; i++ {
		snap, info := scripted.Step()
		if rec != nil {
			rec.Observe(snap, info)
		}
		if !vz.Render(snap, info) {
			break
		}
	}

	if rec != nil && rec.Len() > 0 {
		st, err := session.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.Save(session.Meta{
			Seed:          cfg.Demo.Seed,
			FPS:           cfg.FPS,
			EpisodeLength: cfg.EpisodeLength,
		}, rec.Frames())
		if err != nil {
			return err
		}
		fmt.Printf("session saved: %s (%d frames)\n", id, rec.Len())
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		FPS:           cfg.FPS,
		Steps:         cfg.Demo.Steps,
		Seed:          cfg.Demo.Seed,
		EpisodeLength: cfg.EpisodeLength,
		ActionNames:   cfg.ActionNames,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func openStore(cmd *cobra.Command) (*session.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return session.Open(cfg.DataDir)
}

func replaySession(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	replayFPS := meta.FPS
	if cmd.Flags().Changed("fps") {
		replayFPS = fps
	}

	vz, err := viz.New(viz.Options{
		FPS:           replayFPS,
		EpisodeLength: meta.EpisodeLength,
	})
	if err != nil {
		return err
	}
	defer vz.Close()

	for _, f := range frames {
		if !vz.Render(f.Snapshot(), f.Info()) {
			break
		}
	}
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sessions, err := st.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSTEPS\tFPS\tACCURACY\tENGAGEMENT\tREWARD")
	for _, m := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f%%\t%.1f%%\t%.1f\n",
			m.ID,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
			m.Steps,
			m.FPS,
			m.AvgAccuracy*100,
			m.AvgEngagement*100,
			m.TotalReward,
		)
	}
	return w.Flush()
}

func plotSession(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	series := []struct {
		caption string
		value   func(session.Frame) float64
	}{
		{"student accuracy", func(f session.Frame) float64 { return f.Accuracy }},
		{"engagement", func(f session.Frame) float64 { return f.Engagement }},
		{"reward", func(f session.Frame) float64 { return f.Reward }},
	}

	fmt.Printf("session: %s\nframes: %d\n\n", args[0], len(frames))
	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.value(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return session.ExportJSON(os.Stdout, meta, frames)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return session.ExportCSV(os.Stdout, frames)
}
