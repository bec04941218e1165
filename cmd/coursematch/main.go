// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/coursematch"
	"github.com/poiesic/coursematch/ai"
	"github.com/poiesic/coursematch/ai/openai"
	"github.com/poiesic/coursematch/corpus"
	"github.com/poiesic/coursematch/embedding"
	"github.com/poiesic/coursematch/pipeline"
	"github.com/poiesic/coursematch/search"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "coursematch",
		Usage: "Compare keyword matching with embedding search over the course catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory for charts and the results file",
				Value:   "output",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Semantic backend (lsa, remote)",
				Value: string(coursematch.BackendLSA),
			},
			&cli.IntFlag{
				Name:  "top-k",
				Usage: "Number of courses ranked per method",
				Value: search.DefaultTopK,
			},
			&cli.IntFlag{
				Name:  "max-features",
				Usage: "Vocabulary cap of the LSA model",
				Value: embedding.DefaultMaxFeatures,
			},
			&cli.IntFlag{
				Name:  "components",
				Usage: "Requested LSA dimensionality (clamped to courses-1)",
				Value: embedding.DefaultComponents,
			},
			&cli.BoolFlag{
				Name:  "no-stemming",
				Usage: "Disable Porter stemming in the LSA analyzer",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Random seed of the 2D projection",
				Value: 42,
			},
			&cli.IntFlag{
				Name:  "iterations",
				Usage: "Iterations of the 2D projection",
				Value: 1000,
			},
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Query to compare (repeatable, replaces the demo queries)",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL for the remote backend",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name for the remote backend",
				Value: "embeddinggemma",
			},
		},
		Before: setupLogger,
		Action: runCommand,
		Commands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "Print both rankings for one query",
				ArgsUsage: "<text>",
				Action:    queryCommand,
			},
			{
				Name:   "features",
				Usage:  "Print the vocabulary size and heaviest terms of the LSA model",
				Action: featuresCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Usage: "Number of terms to print",
						Value: 20,
					},
				},
			},
			{
				Name:   "courses",
				Usage:  "List the catalog and prerequisites that name no course",
				Action: coursesCommand,
			},
		},
	}
}

// runCommand runs the full comparison and writes every output file.
func runCommand(c *cli.Context) error {
	catalog, err := corpus.Catalog()
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	cfg, err := pipelineConfig(c)
	if err != nil {
		return err
	}

	p, err := pipeline.New(catalog, cfg, pipeline.WithMonitor(newConsoleMonitor(c.App.Writer)))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := p.Run(c.Context); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}

func queryCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query text is required")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	cmp, err := engine.Compare(c.Context, query, c.Int("top-k"))
	if err != nil {
		return err
	}

	printComparison(c.App.Writer, pipeline.QueryRanking{
		Index:     1,
		Query:     query,
		Keyword:   cmp.Keyword,
		Embedding: cmp.Semantic,
	}, len(cmp.Keyword))
	return nil
}

func featuresCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	stats, err := engine.Stats()
	if err != nil {
		return err
	}
	features, err := engine.TopFeatures(c.Int("count"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Vocabulary: %d terms\n", stats.VocabularySize)
	for i, f := range features {
		fmt.Fprintf(w, "%3d. %s\n", i+1, f)
	}
	return nil
}

func coursesCommand(c *cli.Context) error {
	catalog, err := corpus.Catalog()
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	w := c.App.Writer
	for _, course := range catalog.Courses() {
		prereqs := "none"
		if len(course.Prereqs) > 0 {
			prereqs = strings.Join(course.Prereqs, ", ")
		}
		fmt.Fprintf(w, "%-8s %-32s %d cr  %-11s %-18s prereqs: %s\n",
			course.Code, course.Name, course.Credits, course.Semester, course.Category, prereqs)
	}

	if dangling := catalog.DanglingPrerequisites(); len(dangling) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Prerequisites not in the catalog:")
		for _, d := range dangling {
			fmt.Fprintf(w, "  %s requires %s\n", d.Course, d.Missing)
		}
	}
	return nil
}

// pipelineConfig maps the global flags onto a pipeline configuration.
func pipelineConfig(c *cli.Context) (*pipeline.Config, error) {
	opts := []pipeline.ConfigOption{
		pipeline.WithOutputDir(c.String("output-dir")),
		pipeline.WithTopK(c.Int("top-k")),
		pipeline.WithModel(c.Int("max-features"), c.Int("components"), !c.Bool("no-stemming")),
		pipeline.WithBackend(coursematch.Backend(strings.ToLower(c.String("backend")))),
		pipeline.WithAIConfig(aiConfig(c)),
	}
	if queries := c.StringSlice("query"); len(queries) > 0 {
		opts = append(opts, pipeline.WithQueries(queries...))
	}

	cfg := pipeline.NewConfig(opts...)
	cfg.Seed = c.Uint64("seed")
	cfg.Iterations = c.Int("iterations")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func aiConfig(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
}

// newEngine builds the engine the subcommands share.
func newEngine(c *cli.Context) (*coursematch.Engine, error) {
	cfg, err := pipelineConfig(c)
	if err != nil {
		return nil, err
	}
	catalog, err := corpus.Catalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Backend == coursematch.BackendRemote {
		embedder, err := openai.NewEmbedder(cfg.AI)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		return coursematch.NewEngine(ctx, catalog,
			coursematch.WithRemoteEmbedder(embedder, search.WithConfig(cfg.AI)))
	}

	return coursematch.NewEngine(ctx, catalog, coursematch.WithModelOptions(
		embedding.WithMaxFeatures(cfg.MaxFeatures),
		embedding.WithComponents(cfg.Components),
		embedding.WithStemming(cfg.Stemming),
	))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
