// Package output renders extraction results as JSON.
package output

import (
	"encoding/json"
	"io"
)

// ToJSON serializes v. With pretty set, output is indented by two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Write serializes v to w followed by a newline.
func Write(w io.Writer, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
