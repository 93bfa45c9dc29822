package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guloku/lulu/internal/template"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with Lulu from the terminal",
		Long:  "Interactive REPL over the same core as the HTTP API. Type /templates to list prompt starters, /use <n> to pre-fill one.",
		RunE:  runChat,
	}
	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	// Graceful exit on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nBye~")
		cancel()
	}()

	// stdin reader goroutine -> lines into channel
	scanner := bufio.NewScanner(os.Stdin)
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	fmt.Println("Chat with Lulu (Ctrl-C to quit)")

	var pending string
	for {
		if pending != "" {
			fmt.Printf("\u001b[94mYou\u001b[0m [%s]: ", pending)
		} else {
			fmt.Print("\u001b[94mYou\u001b[0m: ")
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-inputCh:
			if !ok {
				return scanner.Err()
			}
		}

		switch {
		case line == "/templates":
			for i, t := range template.Catalog() {
				fmt.Printf("  %d. %s — %s\n", i, t.Label, t.Prompt)
			}
			continue
		case len(line) > 5 && line[:5] == "/use ":
			var idx int
			if _, err := fmt.Sscanf(line[5:], "%d", &idx); err != nil {
				fmt.Println("usage: /use <index>")
				continue
			}
			prompt, err := template.Select(idx)
			if err != nil {
				fmt.Println(err)
				continue
			}
			pending = prompt
			continue
		}

		text := pending + line
		pending = ""

		msg, err := a.conv.Submit(ctx, text, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\u001b[93mLulu\u001b[0m: %s\n", msg.Text)
	}
}
