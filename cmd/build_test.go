package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covmap.dev/pkg/covmap/internal/domain"
	domainmocks "covmap.dev/pkg/covmap/internal/domain/mocks"
	m "covmap.dev/pkg/covmap/internal/model"
)

func TestBuildCmd_Defaults(t *testing.T) {
	resetConfig(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.On("Build", mock.Anything, domain.BuildArgs{
		Reports:         []m.Path{"coverage.json"},
		Output:          m.Path(".covmap"),
		Format:          "json",
		TestDirPrefix:   "tests",
		ContextPrefixes: []string{"test", "tests"},
		Threads:         1,
	}).Return(nil)

	require.NoError(t, executeCommand(t, newBuildCmd(), "build", "coverage.json"))
}

func TestBuildCmd_Flags(t *testing.T) {
	resetConfig(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.On("Build", mock.Anything, domain.BuildArgs{
		Reports:         []m.Path{"unit.json", "integration.json"},
		Output:          m.Path("out"),
		Format:          "yaml",
		TestDirPrefix:   "spec",
		ContextPrefixes: []string{"spec", "check"},
		Threads:         4,
		Show:            true,
	}).Return(nil)

	err := executeCommand(t, newBuildCmd(), "build", "unit.json", "integration.json",
		"-o", "out",
		"-f", "yaml",
		"--test-dir", "spec",
		"--context-prefix", "spec,check",
		"-p", "4",
		"--show",
	)
	require.NoError(t, err)
}

func TestBuildCmd_EmptyTestDirDisablesClassification(t *testing.T) {
	resetConfig(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.On("Build", mock.Anything, mock.MatchedBy(func(args domain.BuildArgs) bool {
		return args.TestDirPrefix == ""
	})).Return(nil)

	require.NoError(t, executeCommand(t, newBuildCmd(), "build", "coverage.json", "--test-dir="))
}

func TestBuildCmd_RequiresReport(t *testing.T) {
	resetConfig(t)
	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	require.Error(t, executeCommand(t, newBuildCmd(), "build"))
}

func TestBuildCmd_PropagatesWorkflowError(t *testing.T) {
	resetConfig(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	buildErr := errors.New("no test contexts found in report")
	mockWorkflow.On("Build", mock.Anything, mock.Anything).Return(buildErr)

	err := executeCommand(t, newBuildCmd(), "build", "coverage.json")
	assert.ErrorIs(t, err, buildErr)
}
