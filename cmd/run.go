package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/juliencampergue/Hangman/application"
	"github.com/juliencampergue/Hangman/config"
	"github.com/juliencampergue/Hangman/database"
	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/services"
	"github.com/juliencampergue/Hangman/events"
	"github.com/juliencampergue/Hangman/infrastructure/wordapi"
	"github.com/juliencampergue/Hangman/repository"
)

// Run wires the application together and drives the terminal client.
func Run(ctx context.Context) error {
	cfg := config.Get()

	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeGameSaved, func(ctx context.Context, event events.Event) {
		saved := event.(events.GameSavedEvent)
		log.WithFields(log.Fields{
			"game_id": saved.GameID,
			"word_id": saved.WordID,
		}).Debug("Game persisted")
	})

	client := wordapi.New(cfg.WordServiceURL, cfg.HTTPTimeout)
	core := application.NewCore(
		repository.NewWordRepository(client),
		repository.NewGameRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewAuthRepository(client, cfg.LoginTimeout),
		services.NewGameEngine(bus),
		bus,
	)

	if _, err := core.Login(ctx); err != nil {
		return fmt.Errorf("failed to login to word service: %w", err)
	}

	if _, err := core.GetWordOfTheDay(ctx); err != nil {
		return fmt.Errorf("failed to get word of the day: %w", err)
	}

	return runClient(ctx, core)
}

// runClient runs the interactive play loop against Core's published state.
func runClient(ctx context.Context, core *application.Core) error {
	settings, err := core.GetSettings(ctx)
	if err != nil {
		log.WithError(err).Warn("Could not load settings, using defaults")
		settings = entities.DefaultSettings()
	}

	state := application.ReduceGameScreen(false, nil, core.CurrentGame().Get(), core.TodaysContent().Get())
	switch s := state.(type) {
	case application.GameScreenResult:
		printResult(s.Detail)
	case application.GameScreenPlaying:
		if err := playGame(ctx, core, s.Game, settings.DisplayTimer); err != nil {
			return err
		}
	}

	return runCommands(ctx, core)
}

func playGame(ctx context.Context, core *application.Core, game *entities.Game, displayTimer bool) error {
	game.Start()
	fmt.Printf("Word of the day: %s\n", game.MaskedWord())

	unsubscribe := game.Score().Subscribe(func(score int) {
		if score > 0 {
			fmt.Printf("Wrong guesses: %d/%d\n", score, game.MaxScore())
		}
	})
	defer unsubscribe()

	scanner := bufio.NewScanner(os.Stdin)
	for !game.State().Get().IsOver() {
		fmt.Print("Guess a letter: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if len(input) != 1 {
			fmt.Println("Please enter a single letter")
			continue
		}

		accepted, err := game.PlayLetter(rune(input[0]))
		if err != nil {
			return fmt.Errorf("failed to play letter: %w", err)
		}
		if !accepted {
			fmt.Println("Letter already played or not a letter")
			continue
		}

		fmt.Println(game.MaskedWord())
		if displayTimer {
			fmt.Printf("Play time: %s\n", game.PlayTime().Round(100*time.Millisecond))
		}
	}

	// Terminal state reached: persist without any user-facing save step.
	saved, err := core.SaveGame(ctx, game.Detail())
	if err != nil {
		return fmt.Errorf("failed to save finished game: %w", err)
	}
	printResult(saved)

	return nil
}

func runCommands(ctx context.Context, core *application.Core) error {
	fmt.Println("Commands: history, timer, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "history":
			if err := printHistory(ctx, core); err != nil {
				log.WithError(err).Error("Could not load history")
			}
		case "timer":
			if err := toggleTimer(ctx, core); err != nil {
				log.WithError(err).Error("Could not update settings")
			}
		case "quit":
			return nil
		default:
			fmt.Println("Commands: history, timer, quit")
		}
	}
}

func printHistory(ctx context.Context, core *application.Core) error {
	var from int64
	var state application.HistoryScreenState = application.HistoryScreenLoading{}

	for {
		page, err := core.GetPlayedGames(ctx, from)
		state = application.ReduceHistoryScreen(state, page, err)

		switch s := state.(type) {
		case application.HistoryScreenError:
			return s.Err
		case application.HistoryScreenLoaded:
			if len(page.Items) == 0 {
				fmt.Println("No more played games")
				return nil
			}
			for _, item := range page.Items {
				outcome := "lost"
				if item.Result {
					outcome = "won"
				}
				fmt.Printf("#%d %s: %s\n", item.ID, item.Word, outcome)
			}
			if s.IsLastPage {
				return nil
			}
			from = page.Items[len(page.Items)-1].ID
		}
	}
}

func toggleTimer(ctx context.Context, core *application.Core) error {
	settings, err := core.GetSettings(ctx)
	if err != nil {
		return err
	}

	updated := &entities.Settings{DisplayTimer: !settings.DisplayTimer}
	if err := core.SaveSettings(ctx, updated); err != nil {
		return err
	}

	fmt.Printf("Display timer: %t\n", updated.DisplayTimer)
	return nil
}

func printResult(detail *entities.GameDetail) {
	outcome := "lost"
	if detail.Result {
		outcome = "won"
	}
	fmt.Printf("Today's word was %q, you %s in %s (%d letters played)\n",
		detail.Word.Word, outcome, detail.PlayDuration.Round(time.Millisecond), len(detail.PlayedLetters))
}
