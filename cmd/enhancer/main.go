package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/cli"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/enhancer"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/logging"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/pipeline"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/separation"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Input   string `arg:"" name:"input" help:"Video or audio file to process" type:"existingfile" optional:""`

	Output  string `help:"Enhanced music output path" type:"path" default:"data/output/enhanced_music.wav"`
	WorkDir string `help:"Directory for intermediate files" type:"path" default:"data/output/work"`

	Profile string  `help:"Enhancement profile (bright|warm|clean|default)"`
	EqLow   float64 `name:"eq-low" help:"Low band gain in dB (below 200 Hz)"`
	EqMid   float64 `name:"eq-mid" help:"Mid band gain in dB (200-2000 Hz)"`
	EqHigh  float64 `name:"eq-high" help:"High band gain in dB (above 4000 Hz)"`
	Gain    float64 `help:"Target output gain in dB"`

	NoPreemphasis    bool `help:"Disable the high-frequency pre-emphasis boost"`
	NoNoiseReduction bool `help:"Disable adaptive noise reduction"`
	HumNotch         bool `help:"Notch out mains hum at the local grid frequency"`

	Engine         string `help:"Separation engine (demucs|spleeter)" default:"demucs"`
	IsolateVocals  bool   `help:"Also keep the isolated vocal stem next to the output"`
	NoMusic        bool   `name:"no-music" help:"Enhance the vocal stem instead of the music stem"`
	SkipSeparation bool   `help:"Treat the input as an already-isolated music stem"`

	Plain bool `help:"Plain console output instead of the interactive UI"`
	Logs  bool `help:"Write a detailed enhancement report next to the output"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("enhancer"),
		kong.Description("Extract, separate and enhance background music from video"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if cliArgs.Input == "" {
		cli.PrintError("No input file specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	if cliArgs.Engine != separation.EngineDemucs && cliArgs.Engine != separation.EngineSpleeter {
		cli.PrintError(fmt.Sprintf("Unknown separation engine %q (demucs or spleeter)", cliArgs.Engine))
		os.Exit(1)
	}

	settings, warning := resolveSettings(cliArgs)

	cfg := pipeline.Config{
		InputPath:      cliArgs.Input,
		OutputPath:     cliArgs.Output,
		WorkDir:        cliArgs.WorkDir,
		Engine:         cliArgs.Engine,
		SkipSeparation: cliArgs.SkipSeparation,
		IsolateVocals:  cliArgs.IsolateVocals,
		VocalsOnly:     cliArgs.NoMusic,
		Settings:       settings,
	}

	if cliArgs.Plain {
		runPlain(cfg, cliArgs, warning)
		return
	}
	runTUI(cfg, cliArgs, warning)
}

// resolveSettings turns flags (or a named profile) into enhancement
// settings. Flags layer on top of the profile, so --profile warm --gain 2
// behaves as expected. The returned warning is non-empty for an unknown
// profile name.
func resolveSettings(args *CLI) (enhancer.Settings, string) {
	settings, known := enhancer.ResolveProfile(args.Profile)
	warning := ""
	if !known {
		warning = fmt.Sprintf("Unknown profile %q, using default settings", args.Profile)
	}

	if args.EqLow != 0 {
		settings.EQLowGainDB = args.EqLow
	}
	if args.EqMid != 0 {
		settings.EQMidGainDB = args.EqMid
	}
	if args.EqHigh != 0 {
		settings.EQHighGainDB = args.EqHigh
	}
	if args.Gain != 0 {
		settings.TargetGainDB = args.Gain
	}
	if args.NoPreemphasis {
		settings.ApplyPreemphasis = false
	}
	if args.NoNoiseReduction {
		settings.NoiseReduction = false
	}
	if args.HumNotch {
		settings.HumNotch = true
	}
	return settings, warning
}

// plannedStages lists the stages the configuration will run, for the UI.
func plannedStages(cfg pipeline.Config) []pipeline.Stage {
	var stages []pipeline.Stage
	if !pipeline.IsAudioPath(cfg.InputPath) {
		stages = append(stages, pipeline.StageExtract)
	}
	if !cfg.SkipSeparation {
		stages = append(stages, pipeline.StageSeparate)
	}
	return append(stages, pipeline.StageEnhance)
}

// runPlain executes the pipeline with line-per-stage console output.
func runPlain(cfg pipeline.Config, args *CLI, warning string) {
	if warning != "" {
		cli.PrintWarning(warning)
	}

	start := time.Now()
	res, err := pipeline.Run(context.Background(), cfg, func(stage pipeline.Stage, progress float64) {
		if progress == 0 {
			fmt.Printf("%s...\n", stage)
		}
	})
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	maybeWriteReport(args, cfg, res, start)

	fmt.Printf("Enhanced music: %s\n", cli.PathStyle.Render(res.OutputPath))
	if res.VocalsPath != "" {
		fmt.Printf("Vocal stem:     %s\n", cli.PathStyle.Render(res.VocalsPath))
	}
}

// runTUI executes the pipeline behind the Bubbletea interface.
func runTUI(cfg pipeline.Config, args *CLI, warning string) {
	model := ui.NewModel(cfg.InputPath, cfg.OutputPath, plannedStages(cfg))
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		if warning != "" {
			p.Send(ui.WarningMsg{Text: warning})
		}

		start := time.Now()
		stageStarts := map[pipeline.Stage]time.Time{}
		res, err := pipeline.Run(context.Background(), cfg, func(stage pipeline.Stage, progress float64) {
			if progress == 0 {
				stageStarts[stage] = time.Now()
				p.Send(ui.StageStartMsg{Stage: stage})
				return
			}
			p.Send(ui.StageDoneMsg{Stage: stage, Duration: time.Since(stageStarts[stage])})
		})

		if err == nil {
			maybeWriteReport(args, cfg, res, start)
		}
		p.Send(ui.RunCompleteMsg{Result: res, Err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
	if m, ok := finalModel.(ui.Model); ok && m.Err != nil {
		cli.PrintError(m.Err.Error())
		os.Exit(1)
	}
}

// maybeWriteReport writes the enhancement report when --logs is set.
func maybeWriteReport(args *CLI, cfg pipeline.Config, res *pipeline.Result, start time.Time) {
	if !args.Logs || res == nil {
		return
	}

	data := logging.ReportData{
		InputPath:  cfg.InputPath,
		OutputPath: res.OutputPath,
		VocalsPath: res.VocalsPath,
		StartTime:  start,
		EndTime:    time.Now(),
		Timings:    res.Timings,
		Settings:   cfg.Settings,
		Input:      res.Input,
		Output:     res.Output,
	}
	if _, known := enhancer.ResolveProfile(args.Profile); known && args.Profile != "" {
		data.ProfileName = args.Profile
	}

	if buf, err := audio.Decode(res.OutputPath); err == nil {
		data.SampleRate = buf.SampleRate
		data.Channels = buf.Channels()
		data.SampleWidth = buf.SampleWidth
		data.DurationSecs = buf.Duration()
	}

	if _, err := logging.GenerateReport(data); err != nil {
		cli.PrintWarning(fmt.Sprintf("Failed to write report: %v", err))
	}
}
