package idgenerator_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viglianco/go-sales-ledger/internal/common/idgenerator"
)

func TestGenerate(t *testing.T) {
	at := time.UnixMilli(1704189600000)
	generator := idgenerator.NewWithClock(func() time.Time { return at })

	t.Run("with prefix", func(t *testing.T) {
		id := generator.Generate("mec")
		assert.Regexp(t, regexp.MustCompile(`^mec-1704189600000[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("with several prefixes", func(t *testing.T) {
		id := generator.Generate("mec", "batch")
		assert.Regexp(t, regexp.MustCompile(`^mec-batch-1704189600000`), id)
	})

	t.Run("without prefix", func(t *testing.T) {
		id := generator.Generate()
		assert.Regexp(t, regexp.MustCompile(`^1704189600000[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("unique", func(t *testing.T) {
		assert.NotEqual(t, idgenerator.New().Generate("mec"), idgenerator.New().Generate("mec"))
	})
}
