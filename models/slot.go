// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigSlot holds the configuration of one page session.
//
// A slot is seeded with the base configuration and written at most twice
// during startup: once by the dynamic loader (Replace) and once by the URL
// override merge (Patch). Everything after the mount only reads it.
type ConfigSlot struct {
	config Config
	writes int
}

// NewConfigSlot returns a slot seeded with base. base may be nil.
func NewConfigSlot(base Config) *ConfigSlot {
	return &ConfigSlot{config: base}
}

// Get returns the configuration currently held by the slot.
func (s *ConfigSlot) Get() Config {
	return s.config
}

// Replace swaps the whole configuration for cfg.
func (s *ConfigSlot) Replace(cfg Config) {
	s.config = cfg
	s.writes++
}

// Patch stores the result of merging an override into the current value.
func (s *ConfigSlot) Patch(cfg Config) {
	s.config = cfg
	s.writes++
}

// Writes returns how many times the slot was written since it was seeded.
func (s *ConfigSlot) Writes() int {
	return s.writes
}
