package ir

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML (or JSON) document into a value tree. Mapping
// pair order is preserved via yaml.MapSlice.
func FromYAML(data []byte) (*Value, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return FromGo(doc)
}

// FromGo converts decoded Go data (the usual any/map/slice shapes produced
// by YAML and JSON decoders) into a value tree.
func FromGo(doc any) (*Value, error) {
	switch d := doc.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(d), nil
	case int:
		return FromFloat(float64(d)), nil
	case int64:
		return FromFloat(float64(d)), nil
	case uint64:
		return FromFloat(float64(d)), nil
	case float64:
		return FromFloat(d), nil
	case string:
		return FromText(d), nil
	case []any:
		vs := make([]*Value, len(d))
		for i, e := range d {
			v, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return FromSlice(vs), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(d))
		for i, item := range d {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not text", item.Key)
			}
			v, err := FromGo(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: key, Val: v}
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(d))
		for _, k := range slices.Sorted(maps.Keys(d)) {
			v, err := FromGo(d[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: k, Val: v})
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a value", doc)
	}
}
