package main

import "github.com/jetbrains-academy/pullrequest-labeler-action/cli"

func main() {
	cli.Main(
		cli.ShortDesc("Keep review-status labels of a pull request in sync with its reviews."),
		&cli.Command{
			Name:      "sync",
			ShortDesc: "Adds or removes the approval label of each configured team.",
			Build:     newSyncCommand,
		},
	)
}
