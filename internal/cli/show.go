package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/logger"
	"github.com/julianstephens/ghpulse/internal/render"
	"github.com/julianstephens/ghpulse/internal/widget"
)

type ShowCmd struct {
	User   string `arg:"" help:"GitHub username."`
	Format string `help:"Output format." enum:"text,json" default:"text" short:"f"`
	SVG    string `help:"Also write the calendar as an SVG heatmap to this path." type:"path" name:"svg"`
}

func (c *ShowCmd) Run(ctx *Context) error {
	res, err := ctx.Service.Lookup(context.Background(), c.User)
	if errors.Is(err, errors.ErrEmptyInput) {
		// nothing to look up
		return nil
	}
	if err != nil {
		return errors.New(strings.TrimPrefix(widget.FailureMessage(err), "Error: "))
	}

	out := ctx.stdout()
	switch c.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, render.ResultPanels(res))
	}

	if c.SVG != "" {
		opts := render.DefaultSVGOptions()
		opts.Title = res.Profile.DisplayName()
		if err := os.WriteFile(c.SVG, []byte(render.SVG(res.Grid, opts)), 0644); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
		logger.Info("Wrote SVG heatmap", "path", c.SVG)
	}

	return nil
}
