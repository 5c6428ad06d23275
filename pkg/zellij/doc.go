// Package zellij provides a Go client for bootstrapping zellij sessions.
// It drives the zellij binary through its command-line action interface and
// does not keep any model of the multiplexer's internal state.
//
// The package provides functionality to:
//   - Build argument vectors for zellij actions (new-tab, go-to-tab, rename-tab, write-chars)
//   - Check session existence through list-sessions
//   - Launch a session and configure its tabs with an explicit state machine
//
// Example usage:
//
//	client, err := zellij.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts := zellij.LaunchOptions{
//	    SessionName: "dev",
//	    Tabs: []zellij.TabOptions{
//	        {Name: "editor", Focus: true, Commands: []string{"vim"}},
//	        {Name: "shell"},
//	    },
//	}
//
//	if err := zellij.NewOrchestrator(client).Launch(ctx, opts); err != nil {
//	    log.Fatal(err)
//	}
package zellij
