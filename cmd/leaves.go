package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

var errNotAnArray = errors.New("json path does not select an array")

// readLeaves returns the leaf values from file, or args when file is empty.
// With a jsonPath the file is a JSON document and the leaves are the string
// form of each element of the selected array; otherwise every non-empty
// line of the file is a leaf.
func readLeaves(file, jsonPath string, args []string) ([][]byte, error) {
	if file == "" {
		if jsonPath != "" {
			return nil, fmt.Errorf("--json-path requires --file")
		}
		values := make([][]byte, len(args))
		for i, arg := range args {
			values[i] = []byte(arg)
		}
		return values, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read leaves: %w", err)
	}
	if jsonPath != "" {
		return jsonLeaves(data, jsonPath)
	}
	return lineLeaves(data)
}

func jsonLeaves(doc []byte, path string) ([][]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("leaves document is not valid JSON")
	}
	result := gjson.GetBytes(doc, path)
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: %q", errNotAnArray, path)
	}

	var values [][]byte
	result.ForEach(func(_, value gjson.Result) bool {
		values = append(values, []byte(value.String()))
		return true
	})
	return values, nil
}

func lineLeaves(data []byte) ([][]byte, error) {
	var values [][]byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		values = append(values, bytes.Clone(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan leaves: %w", err)
	}
	return values, nil
}
