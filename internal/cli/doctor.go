package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/calendar"
	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/models"
	"github.com/julianstephens/ghpulse/internal/stats"
	"github.com/julianstephens/ghpulse/internal/validation"
)

type DoctorCmd struct {
	Offline bool `help:"Skip the API reachability check."`
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: configuration
	if err := ctx.Config.Validate(); err != nil {
		report(out, "Configuration", err)
		hasError = true
	} else {
		report(out, "Configuration", nil)
	}

	// Check 2: log directory writable
	if err := checkLogDir(ctx.Config.ConfigDir); err != nil {
		report(out, "Log directory writable", err)
		hasError = true
	} else {
		report(out, "Log directory writable", nil)
	}

	// Check 3: API reachable (needs the network)
	if cmd.Offline || ctx.Client == nil || ctx.Config.DemoUser == "" {
		fmt.Fprintf(out, "⊘ API reachable: SKIPPED\n")
	} else if err := checkAPIReachable(ctx); err != nil {
		report(out, "API reachable", err)
		hasError = true
	} else {
		report(out, "API reachable", nil)
	}

	// Check 4: clock sanity
	if err := checkClock(time.Now()); err != nil {
		report(out, "Clock", err)
		hasError = true
	} else {
		report(out, "Clock", nil)
	}

	// Check 5: generated activity is internally consistent
	if err := checkValidation(ctx, time.Now()); err != nil {
		report(out, "Data validation", err)
		hasError = true
	} else {
		report(out, "Data validation", nil)
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func report(out io.Writer, name string, err error) {
	if err != nil {
		fmt.Fprintf(out, "❌ %s: FAIL\n", name)
		fmt.Fprintf(out, "   Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "✓ %s: OK\n", name)
}

func checkLogDir(configDir string) error {
	logDir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", logDir, err)
	}
	f, err := os.CreateTemp(logDir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", logDir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkAPIReachable(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.Timeout)
	defer cancel()

	p, err := ctx.Client.FetchProfile(reqCtx, ctx.Config.DemoUser)
	if err != nil {
		return fmt.Errorf("profile lookup for %q failed: %w", ctx.Config.DemoUser, err)
	}
	if p.Login == "" {
		return fmt.Errorf("profile response for %q has no login", ctx.Config.DemoUser)
	}
	return nil
}

func checkValidation(ctx *Context, now time.Time) error {
	if ctx.Service == nil || ctx.Service.Activity == nil {
		return fmt.Errorf("no activity provider configured")
	}

	from, to := activity.Window(now)
	ds, err := ctx.Service.Activity.Dataset(context.Background(), from, to)
	if err != nil {
		return fmt.Errorf("failed to generate activity: %w", err)
	}
	grid, err := calendar.Build(ds)
	if err != nil {
		return fmt.Errorf("failed to build calendar: %w", err)
	}
	summary, err := stats.Summarize(ds, to)
	if err != nil {
		return fmt.Errorf("failed to summarize activity: %w", err)
	}

	result := validation.New().ValidateAll(ds, grid, summary)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflicts\n%s", len(result.Conflicts), result.FormatReport())
	}
	return nil
}

// checkClock verifies the activity window for now spans one calendar year.
func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	from, to := activity.Window(now)
	days := models.DaysBetween(from, to) + 1
	if days != 366 && days != 367 {
		return fmt.Errorf("activity window %s..%s has %d days", from.Format(constants.DateFormat), to.Format(constants.DateFormat), days)
	}
	return nil
}
