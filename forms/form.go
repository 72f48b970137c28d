package forms

// FlowKind names one branch of a form with a dynamic section set. Each
// form declares its own closed set of flow kinds; free-text answers are
// mapped onto them at the point of entry and never string-matched later.
type FlowKind string

const FlowNone FlowKind = ""

// FlowRule is the branch rule of a form: one flow-selector question whose
// answer picks the active section list. While the selector is unanswered,
// only the Default (partial) section list is active so the user can make
// the selection.
type FlowRule struct {
	QuestionID string
	Flows      map[string]FlowKind // selector answer value -> flow
	Sections   map[FlowKind][]string
	Default    []string
}

// Denorm names the answer keys whose values are copied onto top-level
// Record fields at submit time, with defaults for missing optional answers.
type Denorm struct {
	ClientKey       string
	WorkLocationKey string
	VisitDateKey    string
}

const (
	DefaultClient       = "Cliente não informado"
	DefaultWorkLocation = "Local não informado"
)

// Form is the static declarative description of one wizard: its questions
// grouped into ordered sections, the branch rule (if any), the record
// vocabulary, and the denormalization rules.
type Form struct {
	ID           string
	Title        string
	Collection   string
	RecordPrefix string

	Questions []Question

	// Sections is the ordered static section list; Flow overrides it when set.
	Sections []string
	Flow     *FlowRule

	Statuses      []string
	InitialStatus string
	DraftStatus   string

	Denorm Denorm
}

// QuestionsForSection filters by exact section-name match, preserving
// declaration order.
func (f *Form) QuestionsForSection(name string) []Question {
	out := []Question{}
	for _, q := range f.Questions {
		if q.Section == name {
			out = append(out, q)
		}
	}
	return out
}

// Question looks up a question by id.
func (f *Form) Question(id string) (Question, bool) {
	for _, q := range f.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// FlowOf resolves the active flow from the answer map. Unset or unknown
// selector values resolve to FlowNone.
func (f *Form) FlowOf(answers AnswerMap) FlowKind {
	if f.Flow == nil {
		return FlowNone
	}
	return f.Flow.Flows[answers.String(f.Flow.QuestionID)]
}

// ActiveSections returns the ordered section names active for the given
// answers. Forms without a branch rule always return the static list;
// branched forms return the default partial list until the flow selector
// holds a recognized value.
func (f *Form) ActiveSections(answers AnswerMap) []string {
	if f.Flow == nil {
		return f.Sections
	}
	flow := f.FlowOf(answers)
	if flow == FlowNone {
		return f.Flow.Default
	}
	return f.Flow.Sections[flow]
}

// ValidStatus reports whether s belongs to the form's status vocabulary.
func (f *Form) ValidStatus(s string) bool {
	for _, st := range f.Statuses {
		if st == s {
			return true
		}
	}
	return false
}
