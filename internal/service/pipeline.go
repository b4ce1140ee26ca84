package service

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/MKhiriev/viewer-shell/internal/adapter"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/shell"
	"github.com/MKhiriev/viewer-shell/models"
)

// Stage is a state of the bootstrap pipeline. Stages only move forward.
type Stage int

const (
	StageStart Stage = iota
	StageAwaitingDynamicConfig
	StageURLOverrideApplied
	StageMounted
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "START"
	case StageAwaitingDynamicConfig:
		return "AWAITING_DYNAMIC_CONFIG"
	case StageURLOverrideApplied:
		return "URL_OVERRIDE_APPLIED"
	case StageMounted:
		return "MOUNTED"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// pipeline drives one page session through its stages. It owns the
// session's configuration slot; a pipeline value is never shared between
// sessions.
type pipeline struct {
	stage Stage
	slot  *models.ConfigSlot

	logger *logger.Logger
}

func newPipeline(base models.Config, logger *logger.Logger) *pipeline {
	return &pipeline{
		stage:  StageStart,
		slot:   models.NewConfigSlot(base),
		logger: logger,
	}
}

// config returns the configuration currently held by the slot.
func (p *pipeline) config() models.Config {
	return p.slot.Get()
}

// awaitDynamicConfig invokes loader once with the current configuration and
// replaces the slot when the loader returns a replacement.
func (p *pipeline) awaitDynamicConfig(ctx context.Context, loader adapter.ConfigLoader, location *url.URL) error {
	if err := p.enter(StageStart, StageAwaitingDynamicConfig); err != nil {
		return err
	}

	result, err := loader.Load(ctx, p.slot.Get(), location)
	if err != nil {
		return fmt.Errorf("error loading dynamic config: %w", err)
	}

	if cfg, ok := result.Config(); ok {
		p.logger.Debug().Msg("dynamic config replaces base config")
		p.slot.Replace(cfg)
	}

	return nil
}

// applyOverride extracts the URL override from query and patches the slot
// with the merge result.
func (p *pipeline) applyOverride(query url.Values) error {
	if err := p.enter(StageAwaitingDynamicConfig, StageURLOverrideApplied); err != nil {
		return err
	}

	override := resolveOverride(ExtractOverride(query), p.logger)
	p.slot.Patch(MergeOverride(p.slot.Get(), override))

	return nil
}

// mount calls mounter exactly once with the final configuration and the
// bundled plugins. A failed mount still counts: the pipeline never mounts
// again.
func (p *pipeline) mount(ctx context.Context, mounter shell.Mounter, w io.Writer, extensions []models.Extension, modes []models.Mode) (models.StartupProps, error) {
	if p.stage == StageMounted {
		return models.StartupProps{}, ErrAlreadyMounted
	}
	if err := p.enter(StageURLOverrideApplied, StageMounted); err != nil {
		return models.StartupProps{}, err
	}

	props := models.NewStartupProps(p.slot.Get(), extensions, modes)
	if err := mounter.Mount(ctx, w, props); err != nil {
		return models.StartupProps{}, fmt.Errorf("error mounting viewer shell: %w", err)
	}

	return props, nil
}

func (p *pipeline) enter(from, to Stage) error {
	if p.stage != from {
		return fmt.Errorf("%w: cannot enter %s from %s", ErrStageOutOfOrder, to, p.stage)
	}

	p.logger.Debug().Stringer("from", from).Stringer("to", to).Msg("bootstrap stage changed")
	p.stage = to
	return nil
}
