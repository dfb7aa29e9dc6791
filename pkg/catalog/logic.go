package catalog

import "github.com/aretw0/objects/pkg/schema"

func logicExpression() *schema.Schema {
	return schema.Dict(
		schema.Prop("top_kind_name", schema.Unicode()),
		schema.Prop("top_operator_name", schema.Unicode()),
		schema.Prop("arguments", schema.List(schema.Custom(TypeLogicExpression))),
		schema.Prop("dummies", schema.List(schema.Custom(TypeLogicExpression))),
	)
}

func logicQuestion() *schema.Schema {
	return schema.Dict(
		schema.Prop("assumptions", schema.List(schema.Custom(TypeLogicExpression))),
		schema.Prop("results", schema.List(schema.Custom(TypeLogicExpression))),
		schema.Prop("default_proof_string", schema.Unicode()),
	)
}

// Expression is the typed view of a LogicExpression.
type Expression struct {
	TopKindName     string       `mapstructure:"top_kind_name" json:"top_kind_name"`
	TopOperatorName string       `mapstructure:"top_operator_name" json:"top_operator_name"`
	Arguments       []Expression `mapstructure:"arguments" json:"arguments"`
	Dummies         []Expression `mapstructure:"dummies" json:"dummies"`
}

// LogicQuestion is the typed view of a LogicQuestion.
type LogicQuestion struct {
	Assumptions        []Expression `mapstructure:"assumptions" json:"assumptions"`
	Results            []Expression `mapstructure:"results" json:"results"`
	DefaultProofString string       `mapstructure:"default_proof_string" json:"default_proof_string"`
}

// CodeEvaluation is the typed view of a CodeEvaluation.
type CodeEvaluation struct {
	Code       string `mapstructure:"code" json:"code"`
	Output     string `mapstructure:"output" json:"output"`
	Evaluation string `mapstructure:"evaluation" json:"evaluation"`
	Error      string `mapstructure:"error" json:"error"`
}
