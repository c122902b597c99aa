package seeding

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field is one flattened form field of the submission payload.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// preservedKeys are object keys whose array values stay intact: each
// element becomes a repeated field under the same name instead of getting a
// numeric path segment. The editor form expects its release type that way.
var preservedKeys = map[string]bool{"type": true}

// Flatten serializes the seed into the flat field list the submission form
// expects. Nested objects turn into dot-joined key paths and array elements
// into numeric path segments, e.g. "labels.0.name".
func Flatten(seed any) ([]Field, error) {
	raw, err := json.Marshal(seed)
	if err != nil {
		return nil, fmt.Errorf("marshaling seed: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	var fields []Field
	flattenValue("", tree, &fields)
	sortFields(fields)
	return fields, nil
}

func flattenValue(path string, value any, fields *[]Field) {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			if preservedKeys[key] {
				if items, ok := child.([]any); ok {
					for _, item := range items {
						*fields = append(*fields, Field{Name: childPath, Value: scalarString(item)})
					}
					continue
				}
			}
			flattenValue(childPath, child, fields)
		}
	case []any:
		for i, child := range v {
			flattenValue(path+"."+strconv.Itoa(i), child, fields)
		}
	case nil:
		// omitted
	default:
		*fields = append(*fields, Field{Name: path, Value: scalarString(v)})
	}
}

// scalarString renders a JSON scalar as a form value. Whole-numbered floats
// lose the decimal point the JSON decoder gave them.
func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// sortFields orders fields by path with numeric segments compared as
// numbers, so "track.2" sorts before "track.10". Map iteration order would
// otherwise make the payload nondeterministic.
func sortFields(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return pathLess(fields[i].Name, fields[j].Name)
	})
}

func pathLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			return an < bn
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}
