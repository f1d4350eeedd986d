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
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/matchbox/ai"
	"github.com/poiesic/matchbox/ai/openai"
	"github.com/poiesic/matchbox/core"
	"github.com/poiesic/matchbox/dataset"
	"github.com/poiesic/matchbox/pipeline"
	"github.com/urfave/cli/v2"
)

func main() {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "matchbox",
		Usage: "Semantic matching over events, users, and communities",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "match",
				Usage:     "Find entities matching a natural-language query",
				ArgsUsage: "QUERY",
				Action:    matchCommand,
				Flags: append(serviceFlags(),
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Entity type to search (event, user, community)",
						Value:   "event",
					},
					&cli.StringFlag{
						Name:    "dataset",
						Aliases: []string{"d"},
						Usage:   "Path to a JSON dataset file (defaults to the built-in sample data)",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of ranked chunks forwarded to the LLM",
						Value: pipeline.DefaultTopK,
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Corpus chunk size in bytes",
						Value: pipeline.DefaultChunkSize,
					},
				),
			},
			{
				Name:      "chat",
				Usage:     "Send a message straight to the completion service",
				ArgsUsage: "MESSAGE",
				Action:    chatCommand,
				Flags:     serviceFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			EnvVars: []string{"MATCHBOX_EMBEDDING_HOST"},
			Value:   "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:    "completion-host",
			Usage:   "Completion service host URL",
			EnvVars: []string{"MATCHBOX_COMPLETION_HOST"},
			Value:   "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			EnvVars: []string{"MATCHBOX_EMBEDDING_MODEL"},
			Value:   "all-minilm",
		},
		&cli.StringFlag{
			Name:    "completion-model",
			Usage:   "Completion model name",
			EnvVars: []string{"MATCHBOX_COMPLETION_MODEL"},
			Value:   "llama-3.3-70b-versatile",
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "API token for the model services",
			EnvVars: []string{"MATCHBOX_API_TOKEN"},
			Value:   "none",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Overall request timeout",
			Value: 30 * time.Second,
		},
	}
}

func newProvider(c *cli.Context) (ai.Provider, error) {
	config := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithCompletionHost(c.String("completion-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithCompletionModel(c.String("completion-model")),
		ai.WithAPIToken(c.String("api-token")),
	)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return openai.NewProvider(config)
}

func matchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	entityType, err := core.ParseEntityType(c.String("type"))
	if err != nil {
		return err
	}

	store, err := loadStore(c)
	if err != nil {
		return err
	}

	provider, err := newProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	matcher, err := pipeline.NewMatcher(store, provider,
		pipeline.WithTopK(c.Int("top-k")),
		pipeline.WithChunkSize(c.Int("chunk-size")),
	)
	if err != nil {
		return err
	}
	defer matcher.Release()

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	matched, err := matcher.FindMatches(ctx, query, entityType)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	resp := pipeline.BuildResponse(matched, entityType)
	fmt.Println(resp.Message)
	for _, entity := range resp.Entities {
		fmt.Printf("  [%d] %s\n", entity.EntityID(), entity.Key())
	}

	return nil
}

func chatCommand(c *cli.Context) error {
	message := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if message == "" {
		return fmt.Errorf("message is required")
	}

	provider, err := newProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	reply, err := provider.Completer().Chat(ctx, message)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	fmt.Println(reply)
	return nil
}

func loadStore(c *cli.Context) (*dataset.Store, error) {
	if path := c.String("dataset"); path != "" {
		store, err := dataset.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		return store, nil
	}
	return dataset.Seed(), nil
}

func setupLogger(c *cli.Context) error {
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
