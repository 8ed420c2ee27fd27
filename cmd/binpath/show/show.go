// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show contains the command that prints what run would do.
package show

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/binpath/cmd/binpath/settings"
	"github.com/matt-FFFFFF/binpath/internal/setter"
	"github.com/urfave/cli/v3"
)

// Styles used to render a plan.
type Styles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Error lipgloss.Style
	Box   lipgloss.Style
}

// NewStyles creates the default styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(keyWidth),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}

const keyWidth = 14

// New returns the show command.
func New() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "print the commands run would execute, without executing them",
		Description: "Resolves the configuration and prints the build command, the output directory and the PATH command.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings.Resolve(ctx, cmd)
			if err != nil {
				return err
			}

			plan, err := settings.NewSetter(cfg, cmd.Root().Writer).Plan()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, Render(NewStyles(), plan))

			return err
		},
	}
}

// Render formats a plan as a bordered table.
func Render(st *Styles, p *setter.Plan) string {
	row := func(k, v string, vs lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.Key.Render(k), vs.Render(v))
	}

	rows := []string{
		row("working dir", p.WorkDir, st.Value),
		row("platform", p.Platform, st.Value),
		row("build", p.Build.String(), st.Value),
		row("output dir", p.OutputDir, st.Value),
	}

	if p.Unsupported != nil {
		rows = append(rows, row("path command", p.Unsupported.Diagnostic(), st.Error))
	} else {
		rows = append(rows, row("path command", p.PathCommand.String(), st.Value))
	}

	body := st.Title.Render("binpath plan") + "\n" + strings.Join(rows, "\n")

	return st.Box.Render(body)
}
