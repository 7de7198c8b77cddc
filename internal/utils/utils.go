package utils

import (
	"fmt"

	"github.com/takoeight0821/awesome/internal/token"
	"gopkg.in/yaml.v3"
)

// ErrorAt attaches the position of where to err.
func ErrorAt(where token.Token, msg string) error {
	if where.Kind == "" {
		return fmt.Errorf("at end: %s", msg)
	}
	return fmt.Errorf("at %d: `%s`, %s", where.Line, where.Lexeme, msg)
}

// TestData is one end-to-end case of testdata/testcase.yaml. Expected is
// keyed by stage: "tokens", "ast", "output" or "error".
type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) ([]TestData, error) {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		return nil, fmt.Errorf("read test data: %w", err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	return data[:i], nil
}
