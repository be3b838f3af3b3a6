package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/config"
	"github.com/ubiwhere/go-postal-codes/internal/source"
)

func TestRunContinuesPastFailingCountry(t *testing.T) {
	// Countries are independent imports; the second one still runs and the
	// errors of both surface.
	imp := New(nil, nil, source.Registry{}, config.Importer{
		Countries: []string{"atlantis", "mu"},
	}, zap.NewNop())

	err := imp.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "atlantis")
	assert.ErrorContains(t, err, "mu")
}

func TestImportCountryUnknownSource(t *testing.T) {
	imp := New(nil, nil, source.Registry{}, config.Importer{}, zap.NewNop())
	require.Error(t, imp.ImportCountry(context.Background(), "atlantis"))
}

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	batches := chunk(items, 2)
	require.Len(t, batches, 3)
	assert.Equal(t, []int{1, 2}, batches[0])
	assert.Equal(t, []int{5}, batches[2])

	assert.Nil(t, chunk([]int{}, 2))
	assert.Len(t, chunk(items, 0), 5)
	assert.Len(t, chunk(items, 100), 1)
}
