package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vintrastudio/votebot/internal/bot"
	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/intent"
	"github.com/vintrastudio/votebot/internal/server"
	"github.com/vintrastudio/votebot/internal/session"
	"github.com/vintrastudio/votebot/internal/spinner"
	"github.com/vintrastudio/votebot/internal/translate"
)

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// buildBot assembles the bot from the persistent flags. The returned store
// must be closed when the command finishes.
func buildBot(cmd *cobra.Command) (*bot.Bot, session.Store, error) {
	contentPath, _ := cmd.Flags().GetString("content")
	content, err := botdata.Load(contentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load content: %w", err)
	}

	// the statistical stage is optional twice over: the flag disables it,
	// and a training failure degrades to rule-only classification
	var model intent.Model
	if noModel, _ := cmd.Flags().GetBool("no-model"); !noModel {
		m, err := intent.TrainModel(content)
		if err != nil {
			slog.Warn("Intent model training failed, continuing without it", "error", err)
		} else {
			model = m
		}
	}

	var translator translate.Translator
	if url, _ := cmd.Flags().GetString("translate-url"); url != "" {
		translator = translate.NewClient(url)
	}

	var store session.Store = session.NewMemoryStore()
	if statePath, _ := cmd.Flags().GetString("state"); statePath != "" {
		store, err = session.NewBoltStore(statePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open session store: %w", err)
		}
	}

	b := bot.New(content, bot.Options{
		Store:      store,
		Model:      model,
		Translator: translator,
	})
	return b, store, nil
}

var rootCmd = &cobra.Command{
	Use:   "votebot",
	Short: "Support chatbot for the game VOTE",
	Long: `Votebot answers player questions about the game VOTE by Vintra Studio:
pricing, release window, gameplay, the studio, and support ticket requests.
It detects the user's language, classifies each message into an intent, and
replies from a template set.

Examples:
  votebot ask "hva koster vote?"
  votebot chat
  votebot serve --port 8080`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [message...]",
	Short: "Answer a single message and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, store, err := buildBot(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := b.Handle(ctx, uuid.NewString(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("ask failed: %w", err)
		}

		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Println(result.Reply)
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively on the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, store, err := buildBot(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sessionID := uuid.NewString()
		fmt.Println("Type a message; /quit ends the conversation.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			if text == "/quit" {
				break
			}

			spin := spinner.New(os.Stderr, "Thinking...")
			spin.Start(ctx)
			result, err := b.Handle(ctx, sessionID, text)
			spin.Stop()
			if err != nil {
				return fmt.Errorf("chat turn failed: %w", err)
			}
			fmt.Printf("bot> %s\n", result.Reply)
		}
		return scanner.Err()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, store, err := buildBot(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		debug, _ := cmd.Flags().GetBool("debug")

		srv := server.New(b, server.Config{Host: host, Port: port, Debug: debug})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a YAML content override file")
	rootCmd.PersistentFlags().String("state", "", "Path to a bbolt session database (default: in-memory sessions)")
	rootCmd.PersistentFlags().String("translate-url", "", "Translation service endpoint (default: no translation)")
	rootCmd.PersistentFlags().Bool("no-model", false, "Disable the statistical intent model")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	askCmd.Flags().Bool("json", false, "Print the full turn result as JSON")

	serveCmd.Flags().String("host", "localhost", "Listen host")
	serveCmd.Flags().IntP("port", "p", 8080, "Listen port")

	rootCmd.AddCommand(askCmd, chatCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
