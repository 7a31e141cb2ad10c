package extractor

import "github.com/example/gmdoc/internal/xmltree"

// attrReader reads required attributes off one element and keeps the
// first failure, so a record can be read field by field and checked once.
type attrReader struct {
	node   *xmltree.Node
	entity string
	err    error
}

func newAttrReader(node *xmltree.Node, entity string) *attrReader {
	return &attrReader{node: node, entity: entity}
}

func (r *attrReader) fail(attr, value string, err error) {
	if r.err != nil {
		return
	}
	r.err = &SchemaError{
		Tag:       r.node.TagName(),
		Entity:    r.entity,
		Attribute: attr,
		Value:     value,
		Err:       err,
	}
}

// String returns a required attribute.
func (r *attrReader) String(attr string) string {
	value, ok := r.node.Attribute(attr)
	if !ok {
		r.fail(attr, "", ErrMissingAttribute)
		return ""
	}
	return value
}

// Bool returns a required boolean attribute. Only the literals "true" and
// "false" are accepted.
func (r *attrReader) Bool(attr string) bool {
	value, ok := r.node.Attribute(attr)
	if !ok {
		r.fail(attr, "", ErrMissingAttribute)
		return false
	}
	switch value {
	case "true":
		return true
	case "false":
		return false
	default:
		r.fail(attr, value, ErrInvalidBool)
		return false
	}
}
