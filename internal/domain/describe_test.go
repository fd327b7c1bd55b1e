package domain

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/blocks/internal/adapter"
	m "github.com/mouse-blink/blocks/internal/model"
)

func TestDescribe_NestedBlocksRunDepthFirst(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(rec, m.Filter{})

	err := s.Describe("A", func() error {
		return s.Describe("B", func() error {
			rec.add("run B")
			return nil
		}, AfterAll(func() error {
			rec.add("teardown B")
			return nil
		}))
	}, AfterAll(func() error {
		rec.add("teardown A")
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter A",
		"enter A > B",
		"run B",
		"teardown B",
		"leave A > B",
		"teardown A",
		"leave A",
	}, rec.Events())
	assert.Empty(t, s.Results())
	assert.Equal(t, 0, s.Depth())
}

func TestDescribe_SetupRunsBeforeBodyAfterEnclosingSetup(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(rec, m.Filter{})

	err := s.Describe("A", func() error {
		rec.add("body A")

		return s.Context("B", func() error {
			rec.add("body B")
			return nil
		}, BeforeAll(func() error {
			rec.add("setup B")
			return nil
		}))
	}, BeforeAll(func() error {
		rec.add("setup A")
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter A",
		"setup A",
		"body A",
		"enter A > B",
		"setup B",
		"body B",
		"leave A > B",
		"leave A",
	}, rec.Events())
}

func TestDescribe_FilteredOut(t *testing.T) {
	tests := []struct {
		name   string
		block  string
		tags   []string
		filter m.Filter
	}{
		{name: "name filter", block: "Subtract numbers", filter: m.Filter{Names: []string{"Add*"}}},
		{name: "tag filter", block: "b", tags: []string{"fast"}, filter: m.Filter{Tags: []string{"slow"}}},
		{name: "exclude tag filter", block: "b", tags: []string{"wip", "fast"}, filter: m.Filter{ExcludeTags: []string{"wip"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s, _ := newTestSession(rec, tt.filter)
			ran := false

			err := s.Describe(tt.block, func() error {
				ran = true
				return nil
			}, WithTags(tt.tags...))
			require.NoError(t, err)

			assert.False(t, ran)
			assert.Empty(t, rec.Events())
			assert.Empty(t, s.Results())
			assert.Equal(t, 0, s.Depth())
		})
	}
}

func TestContext_RunsInsideSelectedDescribe(t *testing.T) {
	tests := []struct {
		name   string
		filter m.Filter
	}{
		{name: "tag filter", filter: m.Filter{Tags: []string{"slow"}}},
		{name: "name filter", filter: m.Filter{Names: []string{"Config*"}}},
		{name: "exclude tag filter", filter: m.Filter{ExcludeTags: []string{"wip"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s, _ := newTestSession(rec, tt.filter)
			innerRan := false

			err := s.Describe("Config writer", func() error {
				return s.Context("with a mocked clock", func() error {
					innerRan = true
					return s.It("stamps the file", ok)
				})
			}, WithTags("slow"))
			require.NoError(t, err)

			assert.True(t, innerRan)
			require.Len(t, s.Results(), 1)
			assert.Equal(t, "Config writer > with a mocked clock > stamps the file", s.Results()[0].Name)
			assert.Contains(t, rec.Events(), "enter Config writer > with a mocked clock")
		})
	}
}

func TestDescribe_NestedDescribeStillFiltered(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{Tags: []string{"slow"}})
	innerRan := false

	err := s.Describe("outer", func() error {
		return s.Describe("inner", func() error {
			innerRan = true
			return nil
		}, WithTags("fast"))
	}, WithTags("slow"))
	require.NoError(t, err)

	assert.False(t, innerRan)
}

type panickingReporter struct {
	nopReporter
}

func (panickingReporter) EnterBlock(m.Scope) {
	panic("reporter broke")
}

func TestDescribe_ReporterPanicKeepsScopeBalanced(t *testing.T) {
	s := NewSession(SessionConfig{Reporter: panickingReporter{}, Provisioner: adapter.NewMemDriveProvisioner()})

	assert.PanicsWithValue(t, "reporter broke", func() {
		_ = s.Describe("A", ok)
	})
	assert.Equal(t, 0, s.Depth())
}

func TestDescribe_BodyErrorRecordsOneFailureAndContinues(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(rec, m.Filter{})
	siblingRan := false

	require.NoError(t, s.Describe("broken", func() error {
		return errors.New("boom")
	}))
	require.NoError(t, s.Describe("sibling", func() error {
		siblingRan = true
		return nil
	}))

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Error occurred in Describe block", results[0].Name)
	assert.Equal(t, "broken", results[0].Describe)
	assert.Equal(t, m.StatusFailed, results[0].Status)
	assert.Contains(t, results[0].Message, "boom")
	assert.Contains(t, results[0].Location, "describe_test.go")
	assert.True(t, siblingRan)
	assert.Equal(t, 0, s.Depth())
	assert.Contains(t, rec.Events(), "failure Error occurred in Describe block")
}

func TestDescribe_PanicIsRecoveredAndScopeBalanced(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	require.NoError(t, s.Describe("outer", func() error {
		before := s.Depth()

		_ = s.Context("inner", func() error {
			panic("boom")
		})

		if s.Depth() != before {
			return Failf("depth %d after inner, want %d", s.Depth(), before)
		}

		return nil
	}))

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Error occurred in Context block", results[0].Name)
	assert.Equal(t, "outer > inner", results[0].Describe)
	assert.Equal(t, "boom", results[0].Message)
	assert.Contains(t, results[0].Location, "describe_test.go")
	assert.Equal(t, 0, s.Depth())
}

func TestDescribe_RestoresEnclosingDriveAfterFailure(t *testing.T) {
	s, provisioner := newTestSession(nil, m.Filter{})
	fs := provisioner.Fs()

	var outerBefore, outerAfter, inner m.Path

	require.NoError(t, s.Describe("outer", func() error {
		outerBefore = s.DrivePath()
		require.NoError(t, afero.WriteFile(s.TestDrive(), "keep.txt", []byte("outer"), 0o644))

		_ = s.Describe("inner", func() error {
			inner = s.DrivePath()
			return errors.New("boom")
		})

		outerAfter = s.DrivePath()

		return nil
	}))

	assert.NotEmpty(t, outerBefore)
	assert.NotEqual(t, outerBefore, inner)
	assert.Equal(t, outerBefore, outerAfter)

	innerExists, err := afero.DirExists(fs, string(inner))
	require.NoError(t, err)
	assert.False(t, innerExists)

	outerExists, err := afero.DirExists(fs, string(outerBefore))
	require.NoError(t, err)
	assert.False(t, outerExists, "outer drive must be released when outer exits")

	assert.Empty(t, s.DrivePath())
	assert.Nil(t, s.TestDrive())
}

func TestDescribe_EnclosingDriveContentSurvivesInnerBlock(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	require.NoError(t, s.Describe("outer", func() error {
		require.NoError(t, afero.WriteFile(s.TestDrive(), "keep.txt", []byte("outer"), 0o644))

		_ = s.Describe("inner", func() error {
			exists, err := afero.Exists(s.TestDrive(), "keep.txt")
			require.NoError(t, err)
			assert.False(t, exists, "inner drive must not see the outer drive's files")

			return nil
		})

		data, err := afero.ReadFile(s.TestDrive(), "keep.txt")
		require.NoError(t, err)
		assert.Equal(t, "outer", string(data))

		return nil
	}))

	assert.Empty(t, s.Results())
}

func TestDescribe_TeardownRunsExactlyOnce(t *testing.T) {
	tests := []struct {
		name string
		body m.Body
	}{
		{name: "success", body: ok},
		{name: "error", body: func() error { return errors.New("boom") }},
		{name: "panic", body: func() error { panic("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(nil, m.Filter{})
			teardowns := 0

			require.NoError(t, s.Describe("block", tt.body, AfterAll(func() error {
				teardowns++
				return nil
			})))

			assert.Equal(t, 1, teardowns)
			assert.True(t, s.hooks.Pending(1).Empty())
		})
	}
}

func TestDescribe_SetupFailureSkipsBodyButTearsDown(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})
	bodyRan, tornDown := false, false

	require.NoError(t, s.Describe("block", func() error {
		bodyRan = true
		return nil
	},
		BeforeAll(func() error { return errors.New("setup broke") }),
		AfterAll(func() error {
			tornDown = true
			return nil
		}),
	))

	assert.False(t, bodyRan)
	assert.True(t, tornDown)

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Error occurred in Describe block", results[0].Name)
	assert.Equal(t, "setup broke", results[0].Message)
}

func TestDescribe_TeardownFailureDoesNotReplaceBodyFailure(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	require.NoError(t, s.Describe("block", func() error {
		return errors.New("body broke")
	}, AfterAll(func() error {
		return errors.New("teardown broke")
	})))

	results := s.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "Error occurred in Describe block", results[0].Name)
	assert.Equal(t, "body broke", results[0].Message)
	assert.Equal(t, "Error occurred in Describe block teardown", results[1].Name)
	assert.Equal(t, "teardown broke", results[1].Message)
	assert.Equal(t, 0, s.Depth())
	assert.Empty(t, s.DrivePath())
}

func TestDescribe_InvokesSetupPendingForItsDepth(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})
	var calls []string

	require.NoError(t, s.Describe("outer", func() error {
		s.hooks.Register(2, m.HookSet{BeforeAll: []m.Hook{func() error {
			calls = append(calls, "pending")
			return nil
		}}})

		return s.Describe("inner", func() error {
			calls = append(calls, "body")
			return nil
		}, BeforeAll(func() error {
			calls = append(calls, "own")
			return nil
		}))
	}))

	assert.Equal(t, []string{"pending", "own", "body"}, calls)
	assert.True(t, s.hooks.Pending(2).Empty())
}

func TestDescribe_DiscardsMocksOnExit(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	require.NoError(t, s.Describe("outer", func() error {
		require.NoError(t, s.Mock("clock", func(...any) (any, error) { return "outer", nil }))

		_ = s.Describe("inner", func() error {
			require.NoError(t, s.Mock("clock", func(...any) (any, error) { return "inner", nil }))

			got, err := s.Call("clock")
			require.NoError(t, err)
			assert.Equal(t, "inner", got)

			return nil
		})

		got, err := s.Call("clock")
		require.NoError(t, err)
		assert.Equal(t, "outer", got)

		return nil
	}))

	_, err := s.Call("clock")
	require.ErrorIs(t, err, ErrMockNotFound)
	assert.Equal(t, 0, s.mocks.Depth())
}

func TestDescribe_ConfigurationErrors(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(rec, m.Filter{})

	err := s.Describe("", ok)
	require.ErrorIs(t, err, ErrEmptyName)

	err = s.Describe("no body", nil)
	require.ErrorIs(t, err, ErrNilBody)

	assert.Empty(t, rec.Events())
	assert.Empty(t, s.Results())
}

func TestDescribe_NestedConfigurationErrorFailsEnclosingBlock(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	require.NoError(t, s.Describe("outer", func() error {
		return s.Describe("inner", nil)
	}))

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "outer", results[0].Describe)
	assert.Contains(t, results[0].Message, ErrNilBody.Error())
}

func TestDescribe_FailLocationPointsAtCaller(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	require.NoError(t, s.Describe("block", func() error {
		return Fail("expected 5")
	}))

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "expected 5", results[0].Message)
	assert.Contains(t, results[0].Location, "describe_test.go:")
}

func TestSession_RunSuiteRecordsEscapedFailure(t *testing.T) {
	s, _ := newTestSession(nil, m.Filter{})

	s.RunSuite(func(s *Session) error {
		return s.Describe("", ok)
	})

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Error occurred in suite", results[0].Name)
	assert.Empty(t, results[0].Describe)
	assert.Equal(t, 1, s.Summary().Failed)
}
