package questionnaire

// Question input types.
const (
	TypeText   = "text"
	TypeNumber = "number"
	TypeSelect = "select"
)

// Question is a follow-up question presented to the user after a scan.
// Options is present iff Type is select.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

type template struct {
	text    string
	qType   string
	options []string
}

// table maps known issue tags to their follow-up question. The wording and
// option order are a client-facing contract; do not reword.
var table = map[string]template{
	"dryness": {
		text:  "On a scale of 1–5, how dry does your skin feel?",
		qType: TypeNumber,
	},
	"acne": {
		text:    "Are your breakouts occasional or frequent?",
		qType:   TypeSelect,
		options: []string{"Occasional", "Frequent", "Severe"},
	},
	"redness": {
		text:    "Do you experience redness throughout the day?",
		qType:   TypeSelect,
		options: []string{"Yes", "No"},
	},
	"dullness": {
		text:    "Would you describe your complexion as dull?",
		qType:   TypeSelect,
		options: []string{"Yes", "No"},
	},
	"oily": {
		text:    "How oily does your skin get during the day?",
		qType:   TypeSelect,
		options: []string{"Slightly", "Moderately", "Very"},
	},
}

// Generate maps detected issues to follow-up questions. Questions come out
// in the same order as their tags appear in issues; tags without a table
// entry produce no question. Pure and total.
func Generate(issues []string) []Question {
	questions := make([]Question, 0, len(issues))
	for _, issue := range issues {
		tpl, ok := table[issue]
		if !ok {
			continue
		}
		q := Question{
			ID:   issue,
			Text: tpl.text,
			Type: tpl.qType,
		}
		if len(tpl.options) > 0 {
			q.Options = append([]string(nil), tpl.options...)
		}
		questions = append(questions, q)
	}
	return questions
}
