package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sp0x/nyaarss/indexer"
	"github.com/sp0x/nyaarss/indexer/search"
	"github.com/sp0x/nyaarss/indexer/utils"
	"github.com/sp0x/nyaarss/server/rss"
)

type searchFlags struct {
	titles     []string
	episode    int
	resolution int
	exclusions []string
	format     string
}

func init() {
	for _, mode := range []search.Mode{search.ModeSingle, search.ModeBatch, search.ModeMovie} {
		rootCmd.AddCommand(newSearchCommand(mode))
	}
}

func newSearchCommand(mode search.Mode) *cobra.Command {
	flags := &searchFlags{}
	short := map[search.Mode]string{
		search.ModeSingle: "Searches for a single episode.",
		search.ModeBatch:  "Searches for batches of episodes.",
		search.ModeMovie:  "Searches for a movie.",
	}
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [title]", mode),
		Short: short[mode],
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				flags.titles = append([]string{args[0]}, flags.titles...)
			}
			runner, err := indexer.NewRunnerFromConfig(&appConfig, version)
			if err != nil {
				return err
			}
			return runSearch(context.Background(), runner, mode, flags, os.Stdout)
		},
	}
	cmdFlags := cmd.Flags()
	cmdFlags.StringArrayVarP(&flags.titles, "title", "t", nil, "The title to search for, only the first one is used.")
	if mode == search.ModeSingle {
		cmdFlags.IntVarP(&flags.episode, "episode", "e", 0, "The episode number.")
	}
	cmdFlags.IntVarP(&flags.resolution, "resolution", "r", 0, "The vertical resolution, eg: 1080.")
	cmdFlags.StringArrayVarP(&flags.exclusions, "exclude", "x", nil, "Leave out titles containing this.")
	cmdFlags.StringVarP(&flags.format, "format", "f", "table", "Output format: table, json or rss.")
	return cmd
}

func runSearch(ctx context.Context, ix indexer.Indexer, mode search.Mode, flags *searchFlags, out io.Writer) error {
	query := &search.Query{
		Titles:     flags.titles,
		Episode:    flags.episode,
		Resolution: flags.resolution,
		Exclusions: flags.exclusions,
	}
	var releases []search.Release
	switch mode {
	case search.ModeSingle:
		releases = ix.Single(ctx, query)
	case search.ModeBatch:
		releases = ix.Batch(ctx, query)
	case search.ModeMovie:
		releases = ix.Movie(ctx, query)
	}
	if len(releases) == 0 {
		log.WithFields(log.Fields{"mode": mode, "query": query.String()}).Info("No releases found")
	}
	for i := range releases {
		log.Debugf("Found %s", releases[i].String())
	}
	return writeReleases(out, flags.format, ix.Site(), fmt.Sprintf("%s %s", mode, query.Title()), releases)
}

func writeReleases(out io.Writer, format, site, name string, releases []search.Release) error {
	switch format {
	case "", "table":
		tabWr := new(tabwriter.Writer)
		tabWr.Init(out, 0, 8, 1, '\t', 0)
		_, _ = fmt.Fprintln(tabWr, "Title\tSize\tSeeders\tLeechers\tVerified\tLink")
		for _, r := range releases {
			_, _ = fmt.Fprintf(tabWr, "%s\t%s\t%d\t%d\t%t\t%s\n",
				utils.NormalizeSpace(r.Title), humanize.IBytes(r.Size), r.Seeders, r.Leechers, r.Verified, r.Link)
		}
		return tabWr.Flush()
	case "json":
		if releases == nil {
			releases = []search.Release{}
		}
		b, err := json.MarshalIndent(releases, "", "  ")
		if err != nil {
			return err
		}
		_, err = out.Write(append(b, '\n'))
		return err
	case rss.FormatRss, rss.FormatAtom:
		content, _, err := rss.Render(rss.NewFeed(site, name, releases), format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, content)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
