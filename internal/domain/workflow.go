package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/blocks/internal/adapter"
	"github.com/mouse-blink/blocks/internal/controller"
	m "github.com/mouse-blink/blocks/internal/model"
)

// ErrTestsFailed is returned by Run when any result failed.
var ErrTestsFailed = errors.New("one or more tests failed")

// RunArgs holds the arguments of a test run.
type RunArgs struct {
	Root     m.Path
	Reports  m.Path
	Parallel int
	Suites   []string
	Filter   m.Filter
}

// ViewArgs holds the arguments for viewing a stored run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow runs registered suites and presents their results.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(patterns []string) error
	View(args ViewArgs) error
}

// ProvisionerFactory creates the drive provisioner for one suite's session.
type ProvisionerFactory func(root m.Path) adapter.DriveProvisioner

type workflow struct {
	registry     *SuiteRegistry
	store        adapter.ResultStore
	ui           controller.UI
	provisioners ProvisionerFactory
}

// NewWorkflow creates a Workflow over the registered suites.
func NewWorkflow(
	registry *SuiteRegistry,
	store adapter.ResultStore,
	ui controller.UI,
	provisioners ProvisionerFactory,
) Workflow {
	if provisioners == nil {
		provisioners = func(root m.Path) adapter.DriveProvisioner {
			return adapter.NewLocalDriveProvisioner(root)
		}
	}

	return &workflow{
		registry:     registry,
		store:        store,
		ui:           ui,
		provisioners: provisioners,
	}
}

// Run executes the selected suites, each in its own session. Up to
// args.Parallel suites run at once.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	suites := w.registry.Select(args.Suites)
	if len(suites) == 0 {
		return ErrNoSuites
	}

	threads := args.Parallel
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	started := time.Now()
	results, err := w.runSuites(ctx, suites, args, threads)

	w.ui.Close()

	if err != nil {
		return err
	}

	run := m.Run{
		Started:  started,
		Duration: time.Since(started),
		Suites:   results,
	}

	if args.Reports != "" {
		if err := w.store.SaveRun(args.Reports, run); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
	}

	if err := w.ui.DisplaySummary(run); err != nil {
		return err
	}

	if run.Summary().Failed > 0 {
		return ErrTestsFailed
	}

	return nil
}

func (w *workflow) runSuites(ctx context.Context, suites []Suite, args RunArgs, threads int) ([]m.SuiteResult, error) {
	results := make([]m.SuiteResult, len(suites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, suite := range suites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = w.runSuite(suite, args, threads > 1 && len(suites) > 1)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run interrupted: %w", err)
	}

	return results, nil
}

// runSuite runs one suite in a fresh session. With concurrent suites the
// progress reported to the UI is qualified with the suite name.
func (w *workflow) runSuite(suite Suite, args RunArgs, concurrent bool) m.SuiteResult {
	log.Infof("running suite %q", suite.Name)

	var reporter Reporter = w.ui
	if concurrent {
		reporter = suiteReporter{suite: suite.Name, next: w.ui}
	}

	session := NewSession(SessionConfig{
		Name:        suite.Name,
		Root:        args.Root,
		Filter:      args.Filter,
		Reporter:    reporter,
		Provisioner: w.provisioners(args.Root),
	})

	session.RunSuite(suite.Run)

	return m.SuiteResult{
		Suite:   suite.Name,
		Results: session.Results(),
	}
}

// List displays the registered suites matching patterns.
func (w *workflow) List(patterns []string) error {
	suites := w.registry.Select(patterns)

	names := make([]string, 0, len(suites))
	for _, suite := range suites {
		names = append(names, suite.Name)
	}

	return w.ui.DisplaySuites(names)
}

// View displays a previously stored run.
func (w *workflow) View(args ViewArgs) error {
	run, err := w.store.LoadRun(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplaySummary(run)
}
