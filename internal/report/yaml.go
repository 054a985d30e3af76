package report

import (
	"bytes"
	"sort"

	"gopkg.in/yaml.v3"
)

// MarshalYAML returns a canonical YAML mapping for c: sorted keys, two-space
// indent and a single trailing newline.
func MarshalYAML(c Coordinate) ([]byte, error) {
	lon, lat, h := fixedFields(c)
	top := canonicalMapNode(map[string]string{
		"longitude": lon,
		"latitude":  lat,
		"height":    h,
	})

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func keyNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func floatNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v}
}

func canonicalMapNode(m map[string]string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Content = append(n.Content, keyNode(k), floatNode(m[k]))
	}
	return n
}
