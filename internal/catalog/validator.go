package catalog

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// Validator checks codestart and extension documents against the embedded
// CUE schema before they are decoded.
type Validator struct {
	ctx        *cue.Context
	codestart  cue.Value
	extensions cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling codestart schema: %w", err)
	}

	v := &Validator{
		ctx:        ctx,
		codestart:  schema.LookupPath(cue.ParsePath("#Codestart")),
		extensions: schema.LookupPath(cue.ParsePath("#Extensions")),
	}
	if err := v.codestart.Err(); err != nil {
		return nil, fmt.Errorf("looking up #Codestart: %w", err)
	}
	if err := v.extensions.Err(); err != nil {
		return nil, fmt.Errorf("looking up #Extensions: %w", err)
	}
	return v, nil
}

// ValidateCodestart validates the raw content of a codestart.yml file.
func (v *Validator) ValidateCodestart(filename string, data []byte) error {
	return v.validate(v.codestart, "invalid codestart spec", filename, data)
}

// ValidateExtensions validates the raw content of an extensions.yml file.
func (v *Validator) ValidateExtensions(filename string, data []byte) error {
	return v.validate(v.extensions, "invalid extension index", filename, data)
}

func (v *Validator) validate(schema cue.Value, kind, filename string, data []byte) error {
	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return &oerrors.DetailError{
			Type:     kind,
			Message:  cueerrors.Details(err, nil),
			Location: filename,
			Cause:    oerrors.ErrConfiguration,
		}
	}

	value := v.ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return &oerrors.DetailError{
			Type:     kind,
			Message:  cueerrors.Details(err, nil),
			Location: filename,
			Cause:    oerrors.ErrConfiguration,
		}
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &oerrors.DetailError{
			Type:     kind,
			Message:  cueerrors.Details(err, nil),
			Location: filename,
			Hint:     "see the codestart.yml reference for the accepted fields",
			Cause:    oerrors.ErrConfiguration,
		}
	}
	return nil
}
