package jsonvalidate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// JsonRootLevelKeyCount นับจำนวน key ระดับ root ของ JSON object
func JsonRootLevelKeyCount(body string) (int, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &root); err != nil {
		return 0, err
	}
	return len(root), nil
}

// CheckJSONOrder checks the root keys of body appear exactly in expected order.
func CheckJSONOrder(body []byte, expected []string) error {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("input must be a JSON object")
	}

	i := 0
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if i >= len(expected) || key != expected[i] {
			return fmt.Errorf("invalid JSON key order: expected %v", expected)
		}
		// skip value
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		i++
	}
	if i != len(expected) {
		return fmt.Errorf("invalid JSON key order: expected %v", expected)
	}
	return nil
}
