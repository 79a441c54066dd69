// Package ui provides the Bubbletea terminal user interface for a pipeline
// run: one line per stage, live elapsed time, and a completion summary with
// before/after measurements.
package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/pipeline"
)

var debugLog *os.File

func init() {
	debugLog, _ = os.OpenFile("enhancer-ui-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func log(format string, args ...interface{}) {
	if debugLog != nil {
		fmt.Fprintf(debugLog, format+"\n", args...)
	}
}

// StageStatus is the display state of one pipeline stage.
type StageStatus int

const (
	StatusPending StageStatus = iota
	StatusRunning
	StatusDone
)

// StageProgress tracks one stage's display state.
type StageProgress struct {
	Stage     pipeline.Stage
	Status    StageStatus
	StartTime time.Time
	Duration  time.Duration
}

// Model is the Bubbletea model for one pipeline run.
type Model struct {
	InputPath  string
	OutputPath string

	// Stages in execution order, restricted to those the configuration
	// will actually run.
	Stages   []StageProgress
	Warnings []string

	StartTime time.Time
	Done      bool
	Err       error
	Result    *pipeline.Result

	// ProgressChan receives stage and completion messages from the
	// goroutine driving the pipeline.
	ProgressChan chan tea.Msg

	Width  int
	Height int
}

// NewModel builds a model for a run over the given stages.
func NewModel(inputPath, outputPath string, stages []pipeline.Stage) Model {
	progress := make([]StageProgress, len(stages))
	for i, s := range stages {
		progress[i] = StageProgress{Stage: s, Status: StatusPending}
	}

	return Model{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Stages:       progress,
		StartTime:    time.Now(),
		ProgressChan: make(chan tea.Msg, 16),
	}
}

// Init starts listening for pipeline messages.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForProgress(m.ProgressChan), tick())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tickMsg:
		if m.Done {
			return m, nil
		}
		return m, tick()

	case StageStartMsg:
		log("[DEBUG] stage start: %s", msg.Stage)
		for i := range m.Stages {
			if m.Stages[i].Stage == msg.Stage {
				m.Stages[i].Status = StatusRunning
				m.Stages[i].StartTime = time.Now()
			}
		}
		return m, waitForProgress(m.ProgressChan)

	case StageDoneMsg:
		log("[DEBUG] stage done: %s in %s", msg.Stage, msg.Duration)
		for i := range m.Stages {
			if m.Stages[i].Stage == msg.Stage {
				m.Stages[i].Status = StatusDone
				m.Stages[i].Duration = msg.Duration
			}
		}
		return m, waitForProgress(m.ProgressChan)

	case WarningMsg:
		m.Warnings = append(m.Warnings, msg.Text)
		return m, waitForProgress(m.ProgressChan)

	case RunCompleteMsg:
		log("[DEBUG] run complete (err=%v)", msg.Err)
		m.Done = true
		m.Err = msg.Err
		m.Result = msg.Result
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.Width == 0 {
		return "Initialising...\n"
	}
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderRunView(m)
}

// tickMsg drives the elapsed-time display while a stage runs.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForProgress creates a command that waits for pipeline messages.
func waitForProgress(progressChan chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-progressChan
	}
}
