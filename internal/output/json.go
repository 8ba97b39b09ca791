package output

import (
	"encoding/json"

	"github.com/portslayer/portslayer/pkg/model"
)

func ToJSON(records []model.PortRecord) (string, error) {
	if records == nil {
		records = []model.PortRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
