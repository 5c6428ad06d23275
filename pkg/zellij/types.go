package zellij

import "time"

type LaunchOptions struct {
	SessionName        string
	ShellCommandBefore string
	Tabs               []TabOptions
}

type TabOptions struct {
	Name     string
	Focus    bool
	Commands []string
}

// FocusIndex returns the 1-based index of the tab that should hold focus once
// the session is configured. The last focused tab wins; with none set it is 1.
func (o LaunchOptions) FocusIndex() int {
	index := 1
	for i, tab := range o.Tabs {
		if tab.Focus {
			index = i + 1
		}
	}
	return index
}

// Timing controls how long the orchestrator waits on zellij.
type Timing struct {
	ProbeRetries  int
	ProbeInterval time.Duration
	SettleDelay   time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		ProbeRetries:  5,
		ProbeInterval: 50 * time.Millisecond,
		SettleDelay:   150 * time.Millisecond,
	}
}
