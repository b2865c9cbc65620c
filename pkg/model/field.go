package model

// Field is the leaf node of a form tree. It owns one field's mutable
// state: the current value, the touched flag, the rejection messages from
// the most recent Validate, display metadata, and the ordered rule chain.
type Field struct {
	name        string
	label       string
	placeholder string
	choices     []string
	required    bool
	validateAll bool
	rules       []Rule
	initial     any
	value       any
	touched     bool
	rejections  []string
}

var _ Node = (*Field)(nil)

// NewField constructs a leaf node from its definition. The initial value
// is deep-copied so later writes to the live value can never reach the
// reset snapshot. Nil entries in the rule list are dropped; when the
// definition is marked required the built-in Required rule is appended
// after the user-supplied rules.
func NewField(def FieldDef, opts Options) *Field {
	rules := make([]Rule, 0, len(def.Rules)+1)
	for _, rule := range def.Rules {
		if rule == nil {
			continue
		}
		rules = append(rules, rule)
	}
	if def.Required {
		rules = append(rules, Required)
	}

	return &Field{
		name:        def.Name,
		label:       def.Label,
		placeholder: def.Placeholder,
		choices:     append([]string(nil), def.Choices...),
		required:    def.Required,
		validateAll: opts.ValidateAllRules,
		rules:       rules,
		initial:     deepCopy(def.InitialValue),
		value:       deepCopy(def.InitialValue),
	}
}

// Name returns the property name the field occupies within its parent.
func (f *Field) Name() string { return f.name }

// Label returns the display label. Opaque to validation.
func (f *Field) Label() string { return f.label }

// Placeholder returns the display placeholder. Opaque to validation.
func (f *Field) Placeholder() string { return f.placeholder }

// Required reports whether the field was constructed with the required
// flag set.
func (f *Field) Required() bool { return f.required }

// Touched reports whether the value has been set or the field validated
// at least once.
func (f *Field) Touched() bool { return f.touched }

// Choices returns a copy of the selectable options attached to the field,
// if any. Opaque to validation; prompt layers use it to offer selects.
func (f *Field) Choices() []string {
	return append([]string(nil), f.choices...)
}

// Rejections returns a copy of the messages stored by the most recent
// Validate. It is empty before the first validation pass.
func (f *Field) Rejections() []string {
	return append([]string(nil), f.rejections...)
}

// Value returns the current stored value without side effects.
func (f *Field) Value() any { return f.value }

// SetValue stores v verbatim and marks the field touched. No rules run,
// no coercion happens, and the stored rejections are left as they were.
func (f *Field) SetValue(v any) {
	f.value = v
	f.touched = true
}

// Valid reports whether the field is untouched or carries rejections from
// the most recent Validate. Callers gating on rule outcomes should
// inspect Validate results or Rejections directly.
func (f *Field) Valid() bool {
	return !f.touched || len(f.rejections) > 0
}

// Validate marks the field touched and runs the rule chain against the
// current value. By default evaluation stops at the first rejection; with
// ValidateAllRules set every rule runs and every rejection is collected
// in rule order. The returned messages replace the stored rejections.
func (f *Field) Validate() Result {
	f.touched = true

	var messages []string
	for _, rule := range f.rules {
		message := rule(f.value)
		if message == "" {
			continue
		}
		messages = append(messages, message)
		if !f.validateAll {
			break
		}
	}

	f.rejections = messages
	return Result{Messages: messages}
}

// Reset restores the value to a deep copy of the construction-time
// initial value and clears the touched flag. Stored rejections stay in
// place until the next Validate.
func (f *Field) Reset() {
	f.value = deepCopy(f.initial)
	f.touched = false
}
