package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/ubiwhere/go-postal-codes/internal/importer"
	"github.com/ubiwhere/go-postal-codes/internal/queue/task"
)

type importCountryProcessor struct {
	importer *importer.Importer
}

func NewImportCountryProcessor(imp *importer.Importer) *importCountryProcessor {
	return &importCountryProcessor{
		importer: imp,
	}
}

func (p *importCountryProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.ImportCountry
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process import country task json unmarshal failed: %w", err)
	}

	if err = p.importer.ImportCountry(ctx, data.Source); err != nil {
		return fmt.Errorf("import country %q failed: %w", data.Source, err)
	}

	return nil
}
