package zellij_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/grovetools/zelp/pkg/zellij"
)

func ExampleOrchestrator_Launch() {
	ctx := context.Background()

	// Create a new zellij client
	client, err := zellij.NewClient()
	if err != nil {
		log.Fatal(err)
	}

	// Describe the session: the first tab keeps focus once everything is set up
	opts := zellij.LaunchOptions{
		SessionName:        "my-dev-session",
		ShellCommandBefore: "cd ~/src/project",
		Tabs: []zellij.TabOptions{
			{Name: "editor", Focus: true, Commands: []string{"vim main.go"}},
			{Name: "tests", Commands: []string{"go test -v ./..."}},
			{Name: "shell"},
		},
	}

	// Slow machines may need a longer settle delay between actions
	timing := zellij.DefaultTiming()
	timing.SettleDelay = 300 * time.Millisecond

	// Launch blocks until the user leaves the session
	if err := zellij.NewOrchestrator(client, zellij.WithTiming(timing)).Launch(ctx, opts); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Session closed")
}

func ExampleClient_SessionExists() {
	ctx := context.Background()

	client, err := zellij.NewClient(zellij.WithMatchMode(zellij.MatchExact))
	if err != nil {
		log.Fatal(err)
	}

	exists, err := client.SessionExists(ctx, "my-session")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Session exists:", exists)
}

func ExampleCommand() {
	cmd := zellij.WriteChars{Session: "dev", Text: "make run"}
	fmt.Printf("%q\n", cmd.Args())
	// Output: ["--session" "dev" "action" "write-chars" "make run\n"]
}
