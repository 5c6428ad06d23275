package zellij

import "strconv"

// Command is a single zellij invocation. The set of implementations is closed;
// Args is a pure function of the value.
type Command interface {
	Args() []string
	command()
}

// NewTab creates a tab in the session. An empty Name lets zellij pick one.
type NewTab struct {
	Session string
	Name    string
}

// GoToTab focuses the tab at a 1-based index. Indices follow creation order.
type GoToTab struct {
	Session string
	Index   int
}

// RenameTab renames the focused tab.
type RenameTab struct {
	Session string
	Name    string
}

// WriteChars types Text into the focused pane followed by a newline, so the
// shell runs the line instead of leaving it in its input buffer.
type WriteChars struct {
	Session string
	Text    string
}

// ListSessions queries the sessions zellij knows about.
type ListSessions struct{}

// AttachSession attaches the caller's terminal to a session. With Create set,
// zellij creates the session when it does not exist yet.
type AttachSession struct {
	Session string
	Create  bool
}

func (c NewTab) Args() []string {
	args := action(c.Session, "new-tab")
	if c.Name != "" {
		args = append(args, "--name", c.Name)
	}
	return args
}

func (c GoToTab) Args() []string {
	return append(action(c.Session, "go-to-tab"), strconv.Itoa(c.Index))
}

func (c RenameTab) Args() []string {
	return append(action(c.Session, "rename-tab"), c.Name)
}

func (c WriteChars) Args() []string {
	return append(action(c.Session, "write-chars"), c.Text+"\n")
}

func (ListSessions) Args() []string {
	return []string{"list-sessions"}
}

func (c AttachSession) Args() []string {
	args := []string{"attach"}
	if c.Create {
		args = append(args, "--create")
	}
	return append(args, c.Session)
}

func (NewTab) command()        {}
func (GoToTab) command()       {}
func (RenameTab) command()     {}
func (WriteChars) command()    {}
func (ListSessions) command()  {}
func (AttachSession) command() {}

func action(session, name string) []string {
	return []string{"--session", session, "action", name}
}
