package cli

import (
	"io"
	"os"

	"github.com/julianstephens/ghpulse/internal/config"
	"github.com/julianstephens/ghpulse/internal/github"
	"github.com/julianstephens/ghpulse/internal/widget"
)

type Context struct {
	Service *widget.Service
	Client  *github.Client
	Config  config.Config
	Out     io.Writer
}

func (c *Context) stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
