package styles

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadVariables reads a YAML variable file from the provided filesystem. The
// document must be a flat mapping of variable name to CSS expression; order
// is preserved as written.
func LoadVariables(fsys fs.FS, path string) (Variables, error) {
	if fsys == nil {
		return Variables{}, fmt.Errorf("styles: nil filesystem for %s", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Variables{}, fmt.Errorf("styles: read %s: %w", path, err)
	}
	vars, err := ParseVariables(data)
	if err != nil {
		return Variables{}, fmt.Errorf("styles: parse %s: %w", path, err)
	}
	return vars, nil
}

// ParseVariables decodes a YAML mapping into an ordered variable set.
func ParseVariables(data []byte) (Variables, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Variables{}, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Variables{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Variables{}, fmt.Errorf("expected a mapping at the document root, got %s", nodeKind(root))
	}

	out := Variables{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		value := root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return Variables{}, fmt.Errorf("variable %q: expected a scalar expression, got %s", key.Value, nodeKind(value))
		}
		out.Set(key.Value, value.Value)
	}
	return out, nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
