package output

import (
	"github.com/goccy/go-json"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
)

// ToJSON serializes a ScanResult to JSON.
func ToJSON(result *models.ScanResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// BatchToJSON serializes several ScanResults as one JSON array.
func BatchToJSON(results []*models.ScanResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(results, "", "  ")
	}
	return json.Marshal(results)
}
