package value

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node converts the tree to a yaml.Node. Mapping keys keep insertion
// order, so encoding the same tree twice yields identical documents.
func (v *Value) Node() *yaml.Node {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		s := "false"
		if v.boolVal {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: s}
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.intVal, 10)}
	case KindFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		s := strconv.FormatFloat(v.floatVal, 'g', -1, 64)
		s = strings.ReplaceAll(s, "E", "e")
		if v.floatVal == 0 {
			s = "0"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.strVal}
	case KindList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.listVal {
			n.Content = append(n.Content, item.Node())
		}
		return n
	case KindMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.mapVal {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
				f.Value.Node())
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// MarshalYAML implements yaml.Marshaler, so a *Value can be passed
// directly to yaml.Marshal.
func (v *Value) MarshalYAML() (interface{}, error) {
	return v.Node(), nil
}
