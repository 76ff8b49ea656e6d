package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/config"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/language"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/logger"
)

// main runs the terminal presentation layer: a line-oriented chat loop over
// one App. The core pipeline lives in app.go; this file only collects input,
// dispatches slash commands, and prints what the pipeline returns.
func main() {
	if err := logger.Init(logger.DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}
	defer logger.Close()

	cfgManager, err := config.NewManager("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfgManager.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	app, err := NewApp(ctx, cfgManager.Get())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🌍 Universal Language Translator")
	fmt.Println("Automatic language detection • Cultural context • Alternative translations")
	fmt.Printf("Target language: %s (change with /lang <name>, /help for commands)\n\n", app.Session().TargetLanguage().Name)

	if !cfgManager.HasAPIKey() {
		fmt.Printf("⚠️ set %s to enable translation\n\n", config.EnvAPIKey)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := runCommand(app, line); quit {
				break
			}
			continue
		}

		fmt.Println("… detecting language and translating …")
		reply := app.HandleInput(ctx, line)
		fmt.Println(reply)
		fmt.Println()
	}
}

// runCommand dispatches a slash command. Returns true when the session
// should end.
func runCommand(app *App, line string) bool {
	parts := strings.SplitN(line, " ", 2)
	cmd := parts[0]
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "/quit", "/exit":
		fmt.Println("bye 👋")
		return true

	case "/lang":
		if arg == "" {
			fmt.Printf("current target: %s — usage: /lang <name>\n", app.Session().TargetLanguage().Name)
			return false
		}
		if err := app.SetTargetLanguage(arg); err != nil {
			fmt.Printf("❌ %v (see /languages)\n", err)
			return false
		}
		fmt.Printf("target language set to %s\n", app.Session().TargetLanguage().Name)

	case "/languages":
		for _, l := range language.All() {
			fmt.Printf("  %s %s (%s)\n", l.Flag, l.Name, l.Code)
		}

	case "/history":
		entries := app.RecentHistory()
		if len(entries) == 0 {
			fmt.Println("no translations yet")
			return false
		}
		for _, e := range entries {
			fmt.Printf("  %s → %s: %q → %q\n", e.DetectedLanguage, e.TargetLanguage, e.SourceText, e.TranslatedText)
		}

	case "/clear":
		app.ClearHistory()
		fmt.Println("🗑️ history cleared")

	case "/help":
		fmt.Println("  /lang <name>   set the target language")
		fmt.Println("  /languages     list supported languages")
		fmt.Println("  /history       show the last translations")
		fmt.Println("  /clear         clear the translation history")
		fmt.Println("  /quit          leave")

	default:
		fmt.Printf("unknown command %s — try /help\n", cmd)
	}

	return false
}
