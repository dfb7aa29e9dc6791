package schema

import (
	"encoding/json"
	"errors"
	"regexp"
	"sort"

	"github.com/aretw0/objects/pkg/sanitize"
)

// NormalizerFunc transforms a value after kind coercion.
type NormalizerFunc func(v any, args map[string]any) (any, error)

// ValidatorFunc returns an error when v does not satisfy the rule.
type ValidatorFunc func(v any, args map[string]any) error

type normalizerDef struct {
	fn   NormalizerFunc
	args []string
}

type validatorDef struct {
	fn   ValidatorFunc
	args []string
}

var postNormalizers = map[string]normalizerDef{
	"normalize_spaces": {fn: normalizeSpaces},
	"sanitize_url":     {fn: sanitizeURL},
}

var validators = map[string]validatorDef{
	"is_at_least":         {fn: isAtLeast, args: []string{"min_value"}},
	"is_at_most":          {fn: isAtMost, args: []string{"max_value"}},
	"is_nonempty":         {fn: isNonempty},
	"has_length_at_least": {fn: hasLengthAtLeast, args: []string{"min_value"}},
	"has_length_at_most":  {fn: hasLengthAtMost, args: []string{"max_value"}},
	"is_uniquified":       {fn: isUniquified},
	"is_regex_matched":    {fn: isRegexMatched, args: []string{"regex"}},
}

// PostNormalizerIDs returns the known post-normalizer ids, sorted.
func PostNormalizerIDs() []string { return sortedKeys(postNormalizers) }

// ValidatorIDs returns the known validator ids, sorted.
func ValidatorIDs() []string { return sortedKeys(validators) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func applyPostNormalizer(r Rule, v any) (any, error) {
	def, ok := postNormalizers[r.ID]
	if !ok {
		return nil, Failf(nil, "unknown post-normalizer %q", r.ID)
	}
	return def.fn(v, r.Args)
}

func applyValidator(r Rule, v any) error {
	def, ok := validators[r.ID]
	if !ok {
		return Failf(nil, "unknown validator %q", r.ID)
	}
	if err := def.fn(v, r.Args); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			out := *ve
			out.Reason = r.ID + ": " + ve.Reason
			return &out
		}
		return &ValidationError{Reason: r.ID + ": " + err.Error(), Err: err}
	}
	return nil
}

// --- Post-normalizers ---

func normalizeSpaces(v any, _ map[string]any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, Failf(v, "normalize_spaces expects a string")
	}
	return sanitize.Spaces(s), nil
}

func sanitizeURL(v any, _ map[string]any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, Failf(v, "sanitize_url expects a string")
	}
	clean, err := sanitize.URL(s)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error(), Value: v, Err: err}
	}
	return clean, nil
}

// --- Validators ---

func isAtLeast(v any, args map[string]any) error {
	minValue, err := numberArg(args, "min_value")
	if err != nil {
		return err
	}
	f, err := CoerceFloat(v)
	if err != nil {
		return err
	}
	if f < minValue {
		return Failf(nil, "value %v is less than %v", v, minValue)
	}
	return nil
}

func isAtMost(v any, args map[string]any) error {
	maxValue, err := numberArg(args, "max_value")
	if err != nil {
		return err
	}
	f, err := CoerceFloat(v)
	if err != nil {
		return err
	}
	if f > maxValue {
		return Failf(nil, "value %v is greater than %v", v, maxValue)
	}
	return nil
}

func isNonempty(v any, _ map[string]any) error {
	n, err := length(v)
	if err != nil {
		return err
	}
	if n == 0 {
		return Failf(nil, "value is empty")
	}
	return nil
}

func hasLengthAtLeast(v any, args map[string]any) error {
	minValue, err := numberArg(args, "min_value")
	if err != nil {
		return err
	}
	n, err := length(v)
	if err != nil {
		return err
	}
	if float64(n) < minValue {
		return Failf(nil, "length %d is less than %v", n, minValue)
	}
	return nil
}

func hasLengthAtMost(v any, args map[string]any) error {
	maxValue, err := numberArg(args, "max_value")
	if err != nil {
		return err
	}
	n, err := length(v)
	if err != nil {
		return err
	}
	if float64(n) > maxValue {
		return Failf(nil, "length %d is greater than %v", n, maxValue)
	}
	return nil
}

func isUniquified(v any, _ map[string]any) error {
	items, ok := v.([]any)
	if !ok {
		return Failf(v, "is_uniquified expects a list")
	}
	seen := make(map[string]int, len(items))
	for i, item := range items {
		key, err := canonicalKey(item)
		if err != nil {
			return AtPath(err, indexSegment(i))
		}
		if j, dup := seen[key]; dup {
			return Failf(nil, "items %d and %d are duplicates", j, i)
		}
		seen[key] = i
	}
	return nil
}

func isRegexMatched(v any, args map[string]any) error {
	pattern, ok := args["regex"].(string)
	if !ok {
		return Failf(nil, "argument regex must be a string")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Failf(nil, "invalid regex %q: %v", pattern, err)
	}
	s, ok := v.(string)
	if !ok {
		return Failf(v, "is_regex_matched expects a string")
	}
	if !re.MatchString(s) {
		return Failf(nil, "%q does not match %q", s, pattern)
	}
	return nil
}

func length(v any) (int, error) {
	switch t := v.(type) {
	case string:
		return len([]rune(t)), nil
	case []any:
		return len(t), nil
	case map[string]any:
		return len(t), nil
	default:
		return 0, Failf(v, "value has no length")
	}
}

// canonicalKey gives structurally equal normalized values the same key.
// encoding/json sorts map keys, and strings stay quoted so "1" != 1.
func canonicalKey(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", Failf(v, "value is not comparable: %v", err)
	}
	return string(b), nil
}

func numberArg(args map[string]any, key string) (float64, error) {
	raw, ok := args[key]
	if !ok {
		return 0, Failf(nil, "missing argument %s", key)
	}
	f, err := CoerceFloat(raw)
	if err != nil {
		return 0, Failf(raw, "argument %s must be a number", key)
	}
	return f, nil
}
