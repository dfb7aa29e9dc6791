package catalog

import "github.com/aretw0/objects/pkg/schema"

// NoteNames are the notes a MusicPhrase may use, lowest first.
var NoteNames = []any{
	"C4", "D4", "E4", "F4", "G4", "A4", "B4",
	"C5", "D5", "E5", "F5", "G5", "A5",
}

// MaxPhraseNotes bounds the length of a MusicPhrase.
const MaxPhraseNotes = 8

func musicPhrase() *schema.Schema {
	positive := schema.Int().WithValidators(schema.NewRule("is_at_least", "min_value", 1))
	note := schema.Dict(
		schema.Prop("readableNoteName", schema.Unicode().WithChoices(NoteNames...)),
		schema.Prop("noteDuration", schema.Dict(
			schema.Prop("num", positive),
			schema.Prop("den", positive),
		)),
	)
	return schema.List(note).
		WithValidators(schema.NewRule("has_length_at_most", "max_value", MaxPhraseNotes))
}

// Note is the typed view of one MusicPhrase entry.
type Note struct {
	ReadableNoteName string   `mapstructure:"readableNoteName" json:"readableNoteName"`
	NoteDuration     Duration `mapstructure:"noteDuration" json:"noteDuration"`
}

// Duration is a note length expressed as a fraction of a beat.
type Duration struct {
	Num int `mapstructure:"num" json:"num"`
	Den int `mapstructure:"den" json:"den"`
}
