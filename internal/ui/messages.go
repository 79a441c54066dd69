package ui

import (
	"time"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/pipeline"
)

// StageStartMsg indicates a pipeline stage has begun.
type StageStartMsg struct {
	Stage pipeline.Stage
}

// StageDoneMsg indicates a pipeline stage has finished.
type StageDoneMsg struct {
	Stage    pipeline.Stage
	Duration time.Duration
}

// WarningMsg carries a non-fatal notice (e.g. unknown profile fallback).
type WarningMsg struct {
	Text string
}

// RunCompleteMsg indicates the whole pipeline has finished, successfully or
// not.
type RunCompleteMsg struct {
	Result *pipeline.Result
	Err    error
}
