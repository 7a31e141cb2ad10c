// Package extractor turns the parsed GmlSpec.xml tree into a manual.Program.
package extractor

import (
	"github.com/example/gmdoc/internal/keywords"
	"github.com/example/gmdoc/internal/manual"
	"github.com/example/gmdoc/internal/xmltree"
)

// ImplicitArgument is a placeholder constant name in the spec file that
// does not describe a real constant.
const ImplicitArgument = "$$implicit_argument$$"

// Extractor builds a Program from a spec document, resolving links through
// its keyword table.
type Extractor struct {
	table keywords.Table
}

// New creates an extractor that resolves links with table. A nil table
// resolves no links.
func New(table keywords.Table) *Extractor {
	return &Extractor{table: table}
}

// Extract is shorthand for New(table).Extract(doc).
func Extract(doc *xmltree.Document, table keywords.Table) (*manual.Program, error) {
	return New(table).Extract(doc)
}

// Extract visits every node of doc once, in document order and at any
// depth, and collects one record per Function, Variable and Constant
// element. The first schema violation aborts the walk.
func (e *Extractor) Extract(doc *xmltree.Document) (*manual.Program, error) {
	program := manual.NewProgram()

	for _, node := range doc.Descendants() {
		switch node.TagName() {
		case "Function":
			fn, err := e.extractFunction(node)
			if err != nil {
				return nil, err
			}
			program.Functions = append(program.Functions, fn)

		case "Variable":
			v, err := e.extractVariable(node)
			if err != nil {
				return nil, err
			}
			program.Variables = append(program.Variables, v)

		case "Constant":
			c, skip, err := e.extractConstant(node)
			if err != nil {
				return nil, err
			}
			if !skip {
				program.Constants = append(program.Constants, c)
			}

		case "Structures", "Enumerations":
			// not modelled
		}
	}

	return program, nil
}

func (e *Extractor) extractFunction(node *xmltree.Node) (manual.Function, error) {
	r := newAttrReader(node, "")
	name := r.String("Name")
	r.entity = name
	deprecated := r.Bool("Deprecated")
	pure := r.Bool("Pure")
	returns := r.String("ReturnType")
	if r.err != nil {
		return manual.Function{}, r.err
	}

	fn := manual.Function{
		Name:       name,
		Parameters: []manual.Parameter{},
		Returns:    returns,
		Deprecated: deprecated,
		Pure:       pure,
	}

	foundDescription := false
	for _, sub := range node.Descendants() {
		switch {
		case sub.HasTagName("Description"):
			text, ok := sub.Text()
			if !ok {
				return manual.Function{}, &SchemaError{Tag: "Description", Entity: name, Err: ErrMissingText}
			}
			if !foundDescription {
				fn.Description = text
				foundDescription = true
			}

		case sub.HasTagName("Parameter"):
			param, err := extractParameter(sub, name)
			if err != nil {
				return manual.Function{}, err
			}
			fn.Parameters = append(fn.Parameters, param)
		}
	}

	link, err := ResolveLink(name, e.table)
	if err != nil {
		return manual.Function{}, err
	}
	fn.Link = link
	return fn, nil
}

func extractParameter(node *xmltree.Node, function string) (manual.Parameter, error) {
	r := newAttrReader(node, function)
	param := manual.Parameter{
		Name:     r.String("Name"),
		Type:     r.String("Type"),
		Optional: r.Bool("Optional"),
	}
	if r.err != nil {
		return manual.Parameter{}, r.err
	}
	param.Description, _ = node.Text()
	return param, nil
}

func (e *Extractor) extractVariable(node *xmltree.Node) (manual.Variable, error) {
	r := newAttrReader(node, "")
	name := r.String("Name")
	r.entity = name
	v := manual.Variable{
		Name:       name,
		Returns:    r.String("Type"),
		Deprecated: r.Bool("Deprecated"),
		Get:        r.Bool("Get"),
		Set:        r.Bool("Set"),
		Instance:   r.Bool("Instance"),
	}
	if r.err != nil {
		return manual.Variable{}, r.err
	}
	v.Description, _ = node.Text()

	link, err := ResolveLink(name, e.table)
	if err != nil {
		return manual.Variable{}, err
	}
	v.Link = link
	return v, nil
}

// extractConstant reports skip for the implicit argument placeholder.
func (e *Extractor) extractConstant(node *xmltree.Node) (manual.Constant, bool, error) {
	r := newAttrReader(node, "")
	name := r.String("Name")
	if r.err != nil {
		return manual.Constant{}, false, r.err
	}
	if name == ImplicitArgument {
		return manual.Constant{}, true, nil
	}
	r.entity = name

	c := manual.Constant{
		Name:       name,
		Returns:    r.String("Type"),
		Deprecated: r.Bool("Deprecated"),
	}
	if r.err != nil {
		return manual.Constant{}, false, r.err
	}
	if class, ok := node.Attribute("Class"); ok {
		c.Class = &class
	}
	c.Description, _ = node.Text()

	link, err := ResolveLink(name, e.table)
	if err != nil {
		return manual.Constant{}, false, err
	}
	c.Link = link
	return c, false, nil
}
