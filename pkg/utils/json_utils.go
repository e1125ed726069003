package utils

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// jsonConfig sorts map keys so resolving the same inputs twice yields
// byte-identical output.
var jsonConfig = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// MarshalJSON converts the provided value to indented JSON with sorted map
// keys.
func MarshalJSON(data any) ([]byte, error) {
	return jsonConfig.MarshalIndent(data, "", "  ")
}

// PrintAsJSON prints the provided value as a JSON document to the console.
func PrintAsJSON(data any) error {
	j, err := MarshalJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(string(j))
	return nil
}

// WriteToFileAsJSON converts the provided value to JSON and writes it to the
// provided file.
func WriteToFileAsJSON(filePath string, data any, fileMode os.FileMode) error {
	j, err := MarshalJSON(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, append(j, '\n'), fileMode)
}

// ConvertToMap round-trips a typed value through JSON into a generic map,
// preserving the struct's field names and omitempty behavior.
func ConvertToMap(data any) (map[string]any, error) {
	j, err := jsonConfig.Marshal(data)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := jsonConfig.Unmarshal(j, &result); err != nil {
		return nil, err
	}
	return result, nil
}
