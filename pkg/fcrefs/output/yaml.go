package output

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"gopkg.in/yaml.v3"
)

// ToYAML serializes one or more ScanResults as a YAML document stream.
func ToYAML(results ...*models.ScanResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}
