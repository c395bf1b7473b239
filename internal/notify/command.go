package notify

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// envPhase holds the name of the phase that just started.
const envPhase = "HVILA_PHASE"

// Command runs a user-defined shell command for every notification.
type Command struct {
	ctx  context.Context
	name string
	args []string
}

// NewCommand parses cmdline. An empty command line yields a nil Command,
// which ignores every notification.
func NewCommand(ctx context.Context, cmdline string) (*Command, error) {
	cmdSlice, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	return &Command{
		ctx:  ctx,
		name: cmdSlice[0],
		args: cmdSlice[1:],
	}, nil
}

func (c *Command) Notify(n Notification) error {
	if c == nil {
		return nil
	}

	cmd := exec.CommandContext(c.ctx, c.name, c.args...)
	cmd.Env = append(os.Environ(), envPhase+"="+string(n.Phase))

	if err := cmd.Run(); err != nil {
		return errRunCmd.Fmt(c.name).Wrap(err)
	}

	return nil
}
