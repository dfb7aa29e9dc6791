package catalog

import (
	"maps"

	"github.com/aretw0/objects/pkg/schema"
)

var proofProps = []schema.Property{
	schema.Prop("assumptions_string", schema.Unicode()),
	schema.Prop("target_string", schema.Unicode()),
	schema.Prop("proof_string", schema.Unicode()),
	schema.Prop("correct", schema.Bool()),
}

var proofErrorProps = []schema.Property{
	schema.Prop("error_category", schema.Unicode()),
	schema.Prop("error_code", schema.Unicode()),
	schema.Prop("error_message", schema.Unicode()),
	schema.Prop("error_line_number", schema.Int()),
}

var (
	correctProof   = schema.Dict(proofProps...)
	incorrectProof = schema.Dict(append(append([]schema.Property(nil), proofProps...), proofErrorProps...)...)
)

// checkedProofType requires the error_* keys only when the proof is
// incorrect. On a correct proof they are optional but still type-checked.
type checkedProofType struct{}

func (checkedProofType) Name() string { return TypeCheckedProof }

func (checkedProofType) Description() string {
	return "A proof attempt and any errors it makes. The error_* keys are required when correct is false."
}

func (checkedProofType) Normalize(raw any) (any, error) {
	m, err := schema.CoerceDict(raw)
	if err != nil {
		return nil, err
	}
	if _, ok := m["correct"]; !ok {
		return nil, &schema.ValidationError{Path: "correct", Reason: "missing required property"}
	}
	correct, err := schema.CoerceBool(m["correct"])
	if err != nil {
		return nil, schema.AtPath(err, "correct")
	}
	if !correct {
		return schema.Normalize(incorrectProof, m, nil)
	}

	// Correct proof: normalize the mandatory keys, then any error_* key present.
	base := maps.Clone(m)
	var present []schema.Property
	for _, p := range proofErrorProps {
		if _, ok := base[p.Name]; ok {
			present = append(present, p)
			delete(base, p.Name)
		}
	}
	v, err := schema.Normalize(correctProof, base, nil)
	if err != nil {
		return nil, err
	}
	out := v.(map[string]any)
	for _, p := range present {
		pv, err := schema.Normalize(p.Schema, m[p.Name], nil)
		if err != nil {
			return nil, schema.AtPath(err, p.Name)
		}
		out[p.Name] = pv
	}
	return out, nil
}

// CheckedProof is the typed view of a CheckedProof. The error fields are
// zero when the proof is correct and they were omitted.
type CheckedProof struct {
	AssumptionsString string `mapstructure:"assumptions_string" json:"assumptions_string"`
	TargetString      string `mapstructure:"target_string" json:"target_string"`
	ProofString       string `mapstructure:"proof_string" json:"proof_string"`
	Correct           bool   `mapstructure:"correct" json:"correct"`
	ErrorCategory     string `mapstructure:"error_category" json:"error_category,omitempty"`
	ErrorCode         string `mapstructure:"error_code" json:"error_code,omitempty"`
	ErrorMessage      string `mapstructure:"error_message" json:"error_message,omitempty"`
	ErrorLineNumber   int    `mapstructure:"error_line_number" json:"error_line_number,omitempty"`
}
