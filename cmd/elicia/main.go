// Command elicia runs an interactive health & fitness coaching session in the
// terminal. Answers stream to stdout as the model produces them; tool calls
// (BMI, TDEE, workout generation, nutrition lookups and friends) happen
// transparently between the question and the answer.
//
// Configuration comes from flags and the environment (a .env file is loaded
// if present): OPENAI_API_KEY for the default provider, ANTHROPIC_API_KEY
// when -provider=anthropic.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	sdkanthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"

	"github.com/eliciahq/elicia"
	"github.com/eliciahq/elicia/core"
	"github.com/eliciahq/elicia/logging"
	"github.com/eliciahq/elicia/model"
	"github.com/eliciahq/elicia/model/anthropic"
	"github.com/eliciahq/elicia/model/openai"
)

func main() {
	provider := flag.String("provider", "openai", "model provider: openai or anthropic")
	modelID := flag.String("model", "", "model identifier (provider default if empty)")
	logLevel := flag.String("log-level", "", "enable structured logging: debug, info, warn or error")
	flag.Parse()

	// Best effort; absence of a .env file is fine.
	_ = godotenv.Load()

	m, err := buildModel(*provider, *modelID)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.Logger(logging.NoOpLogger{})
	if *logLevel != "" {
		logger = logging.NewSlogLogger(parseLevel(*logLevel), "text")
	}

	app := elicia.New(m, func(o *elicia.Options) {
		o.Logger = logger
	})

	sessionID := core.NewID()
	welcome, err := app.StartSession(sessionID)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	fmt.Println(welcome)
	fmt.Println()

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
		switch strings.ToLower(text) {
		case "quit", "exit", "q":
			fmt.Println("Take care! Keep moving.")
			return
		}

		fragments, errs := app.Send(context.Background(), sessionID, text)
		for fragment := range fragments {
			fmt.Print(fragment)
		}
		fmt.Println()
		if err := <-errs; err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		fmt.Println()
	}
}

func buildModel(provider, modelID string) (model.Model, error) {
	switch provider {
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		return openai.NewModel(func(o *openai.Options) {
			if modelID != "" {
				o.Model = modelID
			}
		}), nil
	case "anthropic":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
		return anthropic.NewModel(func(o *anthropic.Options) {
			if modelID != "" {
				o.Model = sdkanthropic.Model(modelID)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai or anthropic)", provider)
	}
}

func parseLevel(s string) logging.LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
