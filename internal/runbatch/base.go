// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

// BaseCommand holds the fields shared by every Runnable.
// It should be embedded in the concrete command types.
type BaseCommand struct {
	Label string            // Optional label for the command
	Cwd   string            // The working directory for the command
	Env   map[string]string // Extra environment variables, added to the inherited environment
}

// NewBaseCommand creates a BaseCommand.
func NewBaseCommand(label, cwd string, env map[string]string) *BaseCommand {
	if env == nil {
		env = make(map[string]string)
	}

	return &BaseCommand{
		Label: label,
		Cwd:   cwd,
		Env:   env,
	}
}

// GetLabel returns the label of the command.
func (c *BaseCommand) GetLabel() string {
	if c == nil || c.Label == "" {
		return "Command"
	}

	return c.Label
}
