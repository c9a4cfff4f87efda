package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Operator tool for one-shot maintenance: tournament setup, migrations and rescoring past days.
func main() {
	cliApp := &cli.App{
		Name:  "revalidator",
		Usage: "fantasy leaderboard maintenance",
		Commands: []*cli.Command{
			newMigrateCommand(),
			newTournamentCommand(),
			newRescoreCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
