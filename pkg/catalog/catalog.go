package catalog

import (
	"github.com/aretw0/objects/pkg/registry"
	"github.com/aretw0/objects/pkg/schema"
)

// Built-in type names.
const (
	TypeNull                = "Null"
	TypeBoolean             = "Boolean"
	TypeReal                = "Real"
	TypeInt                 = "Int"
	TypeNonnegativeInt      = "NonnegativeInt"
	TypeUnicodeString       = "UnicodeString"
	TypeNormalizedString    = "NormalizedString"
	TypeMathLatexString     = "MathLatexString"
	TypeFilepath            = "Filepath"
	TypeHTML                = "Html"
	TypeSanitizedURL        = "SanitizedUrl"
	TypeCodeEvaluation      = "CodeEvaluation"
	TypeCoordTwoDim         = "CoordTwoDim"
	TypeListOfUnicodeString = "ListOfUnicodeString"
	TypeSetOfUnicodeString  = "SetOfUnicodeString"
	TypeMusicPhrase         = "MusicPhrase"
	TypeCheckedProof        = "CheckedProof"
	TypeLogicExpression     = "LogicExpression"
	TypeLogicQuestion       = "LogicQuestion"
	TypeLogicErrorCategory  = "LogicErrorCategory"
	TypeGraph               = "Graph"
)

// NewRegistry returns a registry holding every built-in type.
func NewRegistry() *registry.Registry {
	reg := registry.New()
	Register(reg)
	return reg
}

// Register adds every built-in type to reg. Types with custom schema parts
// resolve them against reg.
func Register(reg *registry.Registry) {
	st := func(name, desc string, s *schema.Schema) registry.Normalizable {
		return registry.NewSchemaType(name, desc, s.WithDescription(desc), reg)
	}

	reg.Register(
		nullType{},
		booleanType{},
		st(TypeReal, "A real number.", schema.Float()),
		st(TypeInt, "An integer. Non-integral numbers are truncated toward zero.", schema.Int()),
		st(TypeNonnegativeInt, "A non-negative integer.", nonnegativeInt()),
		st(TypeUnicodeString, "A unicode string.", schema.Unicode()),
		st(TypeNormalizedString, "A unicode string with adjacent whitespace collapsed.", normalizedString()),
		st(TypeMathLatexString, "A LaTeX string.", schema.Unicode()),
		st(TypeFilepath, "A string representing a filepath.", schema.Unicode()),
		st(TypeHTML, "An HTML string.", schema.HTML()),
		st(TypeSanitizedURL, "An HTTP or HTTPS url.", sanitizedURL()),
		st(TypeCodeEvaluation, "Evaluation result of programming code.", codeEvaluation()),
		st(TypeCoordTwoDim, "A two-dimensional coordinate (a pair of reals).", coordTwoDim()),
		st(TypeListOfUnicodeString, "A list of distinct unicode strings.", uniqueStrings()),
		st(TypeSetOfUnicodeString, "A set (a list with unique elements) of unicode strings.", uniqueStrings()),
		st(TypeMusicPhrase, "A musical phrase of at most eight notes.", musicPhrase()),
		checkedProofType{},
		st(TypeLogicExpression, "A logical expression, possibly nested.", logicExpression()),
		st(TypeLogicQuestion, "A question giving a formula to prove.", logicQuestion()),
		st(TypeLogicErrorCategory, "A string from a list of possible categories.", logicErrorCategory()),
		newGraphType(reg),
	)
}

func nonnegativeInt() *schema.Schema {
	return schema.Int().WithValidators(schema.NewRule("is_at_least", "min_value", 0))
}

func normalizedString() *schema.Schema {
	return schema.Unicode().WithPostNormalizers(schema.NewRule("normalize_spaces"))
}

func sanitizedURL() *schema.Schema {
	return schema.Unicode().
		WithValidators(schema.NewRule("is_nonempty")).
		WithPostNormalizers(schema.NewRule("sanitize_url"))
}

func codeEvaluation() *schema.Schema {
	return schema.Dict(
		schema.Prop("code", schema.Unicode()),
		schema.Prop("output", schema.Unicode()),
		schema.Prop("evaluation", schema.Unicode()),
		schema.Prop("error", schema.Unicode()),
	)
}

func coordTwoDim() *schema.Schema {
	return schema.List(schema.Float()).WithLen(2)
}

func uniqueStrings() *schema.Schema {
	return schema.List(schema.Unicode()).WithValidators(schema.NewRule("is_uniquified"))
}

func logicErrorCategory() *schema.Schema {
	return schema.Unicode().WithChoices("parsing", "typing", "mistake")
}
