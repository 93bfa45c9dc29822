// Package cli implements the lulu CLI commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/guloku/lulu/internal/chat"
	"github.com/guloku/lulu/internal/config"
	"github.com/guloku/lulu/internal/memory"
	"github.com/guloku/lulu/internal/provider"
	iredis "github.com/guloku/lulu/internal/redis"
	"github.com/guloku/lulu/internal/session"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "lulu",
	Short: "Lulu, Guloku's personal AI assistant",
	Long:  "Persona-constrained chat assistant with a user-editable memory bank injected into every session's system prompt.",
}

// app bundles the wired core shared by the serve and chat commands.
type app struct {
	cfg      *config.Config
	redis    *redis.Client
	store    *memory.Store
	sessions *session.Manager
	conv     *chat.Conversation
}

// bootstrap loads config, connects Redis and builds the core: memory store,
// session manager and conversation. The initial session is created from the
// persisted facts; a failure there is logged and the process continues
// uninitialized (sends are rejected until a memory edit rebuilds it).
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	setupLogger(cfg.Log)

	rdb, err := iredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	store := memory.NewStore(rdb, cfg.Memory.Key)
	client := provider.NewAnthropicClient(cfg.LLM.APIKey)
	sessions := session.NewManager(client, cfg.LLM)

	if err := sessions.Reinitialize(ctx, store.Load(ctx)); err != nil {
		slog.Warn("initial chat session setup failed", "error", err)
	}

	return &app{
		cfg:      cfg,
		redis:    rdb,
		store:    store,
		sessions: sessions,
		conv:     chat.NewConversation(sessions),
	}, nil
}

func (a *app) close() {
	if a.redis != nil {
		a.redis.Close()
	}
}

func setupLogger(cfg config.LogConfig) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
