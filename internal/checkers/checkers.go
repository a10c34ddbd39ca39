// Package checkers provides quicktest checkers for asserting on JSON text.
package checkers

import (
	"encoding/json"
	"fmt"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

// JSONPath returns a checker that parses the got value as JSON (a string or
// []byte), selects the value at path and applies checker to it.
//
//	c.Assert(text, checkers.JSONPath("$.pairs", qt.HasLen), 3)
func JSONPath(path string, checker qt.Checker) qt.Checker {
	return &jsonPathChecker{path: path, checker: checker}
}

// JSONPathEquals checks that the value at path deep-equals the wanted value.
// JSON numbers decode as float64.
//
//	c.Assert(text, checkers.JSONPathEquals("$.valid"), true)
func JSONPathEquals(path string) qt.Checker {
	return JSONPath(path, qt.DeepEquals)
}

type jsonPathChecker struct {
	path    string
	checker qt.Checker
}

func (c *jsonPathChecker) ArgNames() []string {
	return c.checker.ArgNames()
}

func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var data []byte
	switch v := got.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return qt.BadCheckf("first argument is not a string or []byte, but %T", got)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	value, err := jsonpath.Read(doc, c.path)
	if err != nil {
		note("path", c.path)
		return fmt.Errorf("cannot read JSON path: %w", err)
	}
	note("path", c.path)
	return c.checker.Check(value, args, note)
}
