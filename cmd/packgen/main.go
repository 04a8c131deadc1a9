package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vibefunder/packgen/internal/campaign"
	"github.com/vibefunder/packgen/internal/docs"
	"github.com/vibefunder/packgen/internal/doctor"
	"github.com/vibefunder/packgen/internal/pipeline"
	"github.com/vibefunder/packgen/internal/scaffold"
	"github.com/vibefunder/packgen/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "packgen",
		Usage:       "Campaign document-pack generator",
		Description: "Run 'packgen docs' for documentation on config syntax, templates, deck backends, and archive semantics.",
		Commands: []*cli.Command{
			initCmd(),
			generateCmd(),
			listCmd(),
			checkCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "campaigns.yaml",
		Usage:   "Path to the campaign config file",
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the document packs and archive",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "output", Usage: "Output directory"},
			&cli.StringFlag{Name: "campaign", Usage: "Generate only the named campaign"},
			&cli.StringFlag{Name: "deck", Value: "auto", Usage: "Deck backend: auto, pptx, or text"},
			&cli.StringFlag{Name: "date", Usage: "Generation date (YYYY-MM-DD) for reproducible output; defaults to today"},
			&cli.BoolFlag{Name: "no-archive", Usage: "Skip writing the zip archive"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := campaign.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			opts := pipeline.Options{
				OutDir:    cmd.String("out"),
				DeckMode:  cmd.String("deck"),
				Only:      cmd.String("campaign"),
				NoArchive: cmd.Bool("no-archive"),
			}
			if d := cmd.String("date"); d != "" {
				t, err := time.Parse("2006-01-02", d)
				if err != nil {
					return fmt.Errorf("--date %q is not a YYYY-MM-DD date", d)
				}
				opts.GeneratedAt = t
			}

			_, err = pipeline.Run(cfg, opts)
			return err
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the campaigns in the config",
		Flags: []cli.Flag{configFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := campaign.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			fmt.Printf("\n%sPack:%s %s\n\n", ux.Bold, ux.Reset, cfg.PackName)
			for _, cp := range cfg.Campaigns {
				fmt.Printf("  %s%-24s%s $%d × %d backers — %s\n",
					ux.Cyan, cp.Name, ux.Reset, cp.Price, cp.Backers, cp.Audience)
			}
			fmt.Println()
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate the config and output location without generating",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "output", Usage: "Output directory"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := campaign.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return doctor.Check(cfg, cmd.String("out"))
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create an example campaigns.yaml in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'packgen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("\n%s%s%s\n\n%s\n\n", ux.Bold, t.Title, ux.Reset, t.Content)
			return nil
		},
	}
}
