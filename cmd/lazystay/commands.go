package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/chmouel/lazystay/internal/buildinfo"
	"github.com/chmouel/lazystay/internal/catalog"
	"github.com/chmouel/lazystay/internal/log"
	"github.com/chmouel/lazystay/internal/models"
	"github.com/chmouel/lazystay/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

func catalogCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "catalog",
		Aliases: []string{"ls"},
		Usage:   "Print the listing catalog",
		Action:  handleCatalogAction,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
	}
}

func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			return printThemes(writerFor(cmd))
		},
	}
}

func versionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			info := buildinfo.Get()
			w := writerFor(cmd)
			if cmd.Bool("json") {
				return encodeJSON(w, info)
			}
			_, err := fmt.Fprintln(w, info.String())
			return err
		},
	}
}

// writerFor returns the output writer configured on the root command.
func writerFor(cmd *urfavecli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// handleCatalogAction handles the catalog subcommand action.
func handleCatalogAction(_ context.Context, cmd *urfavecli.Command) error {
	defer func() {
		_ = log.Close()
	}()
	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	listings, err := loadListings(cfg)
	if err != nil {
		return err
	}

	w := writerFor(cmd)
	if cmd.Bool("json") {
		return outputCatalogJSON(w, listings)
	}
	return outputCatalogTable(w, listings)
}

// listingJSON represents the JSON output format for a listing.
type listingJSON struct {
	models.Listing
	PriceLabel string `json:"price_label"`
}

func outputCatalogJSON(w io.Writer, listings []models.Listing) error {
	output := make([]listingJSON, 0, len(listings))
	for _, l := range listings {
		output = append(output, listingJSON{Listing: l, PriceLabel: catalog.FormatPrice(l.Price)})
	}
	return encodeJSON(w, output)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputCatalogTable outputs listings in a formatted table.
func outputCatalogTable(w io.Writer, listings []models.Listing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tTYPE\tPRICE\tRATING\tPHOTOS")

	for _, l := range listings {
		rating := strconv.FormatFloat(l.Rating, 'f', 1, 64) + " (" + strconv.Itoa(l.ReviewCount) + ")"
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			l.ID, l.Title, l.Location, string(l.Kind), catalog.FormatPrice(l.Price), rating, len(l.Images))
	}

	return tw.Flush()
}

// printThemes prints the theme names, marking the default.
func printThemes(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Available themes:\n")
	for _, name := range theme.AvailableThemes() {
		marker := ""
		if name == theme.DefaultDark() {
			marker = " (default)"
		}
		kind := "dark"
		if theme.IsLight(name) {
			kind = "light"
		}
		fmt.Fprintf(&b, "  %-18s %s%s\n", name, kind, marker)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
