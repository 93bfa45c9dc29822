package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guloku/lulu/internal/api"
	"github.com/guloku/lulu/internal/chat"
	"github.com/guloku/lulu/internal/memory"
	"github.com/guloku/lulu/internal/server"
	"github.com/guloku/lulu/internal/template"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API backing the web UI",
		RunE:  runServe,
	}
	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	memoryHandler := memory.NewHandler(a.store, a.sessions)
	chatHandler := chat.NewHandler(a.conv)
	templateHandler := template.NewHandler()

	router := api.NewRouter(a.redis, api.RouterConfig{
		CORSAllowedOrigins: a.cfg.CORS.AllowedOrigins,
	}, api.HandlerSet{
		GetMessages: chatHandler.GetMessages,
		SendMessage: chatHandler.SendMessage,
		ChatStatus:  chatHandler.Status,

		ListMemories: memoryHandler.List,
		CreateMemory: memoryHandler.Create,
		DeleteMemory: memoryHandler.Delete,

		ListTemplates: templateHandler.List,
		GetTemplate:   templateHandler.Get,
	})

	srv := server.New(a.cfg.Server, router)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
