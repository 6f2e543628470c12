package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covmap.dev/pkg/covmap/internal/domain"
	domainmocks "covmap.dev/pkg/covmap/internal/domain/mocks"
)

func TestDiffCmd_PassesBothPaths(t *testing.T) {
	resetConfig(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.On("Diff", mock.Anything, domain.DiffArgs{
		Old: "before.attribution.json",
		New: "after.attribution.json",
	}).Return(nil)

	require.NoError(t, executeCommand(t, newDiffCmd(), "diff", "before.attribution.json", "after.attribution.json"))
}

func TestDiffCmd_RequiresTwoPaths(t *testing.T) {
	resetConfig(t)
	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	require.Error(t, executeCommand(t, newDiffCmd(), "diff", "only.json"))
	require.Error(t, executeCommand(t, newDiffCmd(), "diff", "a.json", "b.json", "c.json"))
}
