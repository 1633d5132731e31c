package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/5donuts/wordle/internal/cli"
	"github.com/5donuts/wordle/internal/game"
	"github.com/5donuts/wordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	playDaily := flag.Bool("daily", false, "play today's word instead of endless random rounds")
	flag.Parse()

	guesses, answers, err := words.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	log.Info().Int("answers", answers.Len()).Int("guesses", guesses.Len()).Msg("word lists loaded")

	session, err := game.New(guesses, answers)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	client := cli.New(os.Stdin, os.Stdout, session, answers, getEnv("DAILY_SALT", "local_dev_salt"))
	if *playDaily {
		err = client.RunDaily(time.Now())
	} else {
		err = client.Run()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
