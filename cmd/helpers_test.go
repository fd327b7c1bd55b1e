package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/blocks/internal/domain"
)

type mockWorkflow struct {
	mock.Mock
}

func (w *mockWorkflow) Run(ctx context.Context, args domain.RunArgs) error {
	return w.Called(args).Error(0)
}

func (w *mockWorkflow) List(patterns []string) error {
	return w.Called(patterns).Error(0)
}

func (w *mockWorkflow) View(args domain.ViewArgs) error {
	return w.Called(args).Error(0)
}

func noPatterns(patterns []string) bool {
	return len(patterns) == 0
}

// setupCmd swaps the global workflow and config filesystem for test doubles
// and returns a root command with sub attached.
func setupCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *mockWorkflow, afero.Fs) {
	t.Helper()

	wf := &mockWorkflow{}
	fs := afero.NewMemMapFs()

	originalWorkflow := workflow
	originalFS := configFS
	workflow = wf
	configFS = fs

	t.Cleanup(func() {
		workflow = originalWorkflow
		configFS = originalFS
	})

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, wf, fs
}
