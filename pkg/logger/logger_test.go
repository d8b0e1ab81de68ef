package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRoutesByMessageType(t *testing.T) {
	var info, errs strings.Builder
	log := NewLogger(&info, &errs, 10)

	log.Write(NewMessage(TRAINER_LAYER, INFO, "trained %d categories", 2))
	log.Write(NewMessage(REPOSITORY_LAYER, ERROR, "save failed"))
	log.Close()

	assert.Contains(t, info.String(), "INFO: trained 2 categories on layer: trainer")
	assert.Contains(t, errs.String(), "ERROR: save failed on layer: repository")
	assert.NotContains(t, info.String(), "save failed")
}
