package cmd

import (
	"context"
	"fmt"
	"strings"

	"ticket/internal/config"
	"ticket/internal/logging"
	"ticket/internal/services"
	"ticket/internal/theme"
)

// ListCmd lists tickets by state
type ListCmd struct {
	Filter string `arg:"" optional:"" help:"Only show one section: active, open or blocked" enum:"all,active,open,blocked" default:"all"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	filter := services.ListAll
	if l.Filter != "all" {
		filter = services.ListFilter(l.Filter)
	}

	logging.Logger.Info("Executing list command", "filter", l.Filter)

	listing, err := cli.Container.ListService.List(context.Background(), filter)
	if err != nil {
		return err
	}

	var colors []string
	if cli.settings != nil {
		colors = cli.settings.ListColors
	}
	fmt.Print(renderListing(listing, config.NewListColors(colors)))
	return nil
}

// renderListing formats a listing, one section per included state
func renderListing(listing *services.TicketListing, colors *config.ListColors) string {
	var b strings.Builder

	sections := []struct {
		filter  services.ListFilter
		name    string
		title   string
		tickets []services.TicketSummary
	}{
		{services.ListActive, config.SectionActive, "Active", listing.Active},
		{services.ListOpen, config.SectionOpen, "Open", listing.Open},
		{services.ListBlocked, config.SectionBlocked, "Blocked", listing.Blocked},
	}

	for _, section := range sections {
		if !listing.Filter.Includes(section.filter) {
			continue
		}

		b.WriteString(theme.SectionStyle(colors.GetColor(section.name)).Render(section.title))
		b.WriteString("\n")

		if len(section.tickets) == 0 {
			b.WriteString("    " + theme.MutedStyle.Render("none") + "\n")
			continue
		}
		for _, ticket := range section.tickets {
			b.WriteString(renderTicketLine(ticket))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTicketLine(ticket services.TicketSummary) string {
	marker := "  "
	if ticket.CheckedOut {
		marker = theme.CheckedOutMarkerStyle.Render("*") + " "
	}

	line := "  " + marker + theme.NormalStyle.Render(ticket.ID.BranchName())
	if !ticket.HasBranch {
		line += "  " + theme.MutedStyle.Render("(no branch)")
	}
	if ticket.BlockReason != "" {
		line += "  " + theme.ReasonStyle.Render(ticket.BlockReason)
	}
	return line
}
