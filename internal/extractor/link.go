package extractor

import (
	"fmt"

	"github.com/example/gmdoc/internal/keywords"
	"github.com/example/gmdoc/internal/manual"
	"github.com/go-playground/validator/v10"
)

// LinkTemplate is the documentation page pattern keyword fragments are
// substituted into.
const LinkTemplate = "https://manual.yoyogames.com/%s.htm"

var linkValidator = validator.New()

// ResolveLink returns the documentation URL for name, or nil when the
// table has no entry for it.
func ResolveLink(name string, table keywords.Table) (*manual.URL, error) {
	fragment, ok := table.Lookup(name)
	if !ok {
		return nil, nil
	}

	raw := fmt.Sprintf(LinkTemplate, fragment)
	if err := linkValidator.Var(raw, "required,url"); err != nil {
		return nil, fmt.Errorf("%w for %q: %q", ErrInvalidLink, name, raw)
	}
	link, err := manual.ParseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("%w for %q: %v", ErrInvalidLink, name, err)
	}
	return link, nil
}
