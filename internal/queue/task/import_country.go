package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	ImportCountryTaskName  = "importCountryTask"
	ImportCountryQueueName = "importCountryQueue"
)

type ImportCountry struct {
	Source string `json:"source"`
}

func NewImportCountryTask(sourceName string) (*asynq.Task, error) {
	var data ImportCountry
	data.Source = sourceName

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		ImportCountryTaskName,
		payload,
		// A re-run of a failed import is a full rebuild anyway, so retrying
		// is safe; one attempt at a time is enforced by the queue size.
		asynq.MaxRetry(2),
		asynq.Queue(ImportCountryQueueName),
	), nil
}
