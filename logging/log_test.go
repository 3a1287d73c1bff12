package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vxm/isotopeboat/logging"
)

func TestNamedLoggersAreDistinctAndNonNil(t *testing.T) {
	assert.NotNil(t, logging.Solver())
	assert.NotNil(t, logging.Search())
	assert.NotNil(t, logging.Parser())
	assert.NotNil(t, logging.CLI())
}

func TestAccessorsRebuildBackendWithoutPanicking(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.Solver().Info("solver logger smoke test")
		logging.Search().Debug("search logger smoke test")
		logging.Parser().Warning("parser logger smoke test")
		logging.CLI().Error("cli logger smoke test")
	})
}
