package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// TestDependencyGraph checks every constructor's inputs are provided without
// starting anything.
func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(startServer),
	)
	require.NoError(t, err)
}
