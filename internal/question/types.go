package question

// ChoiceCount is the number of choices every question offers.
const ChoiceCount = 4

// SetSize is the number of questions in one quiz.
const SetSize = 3

// Question is a single multiple-choice item. Answer is the 0-based index of
// the correct entry in Choices.
type Question struct {
	Text    string   `json:"text" yaml:"text"`
	Choices []string `json:"choices" yaml:"choices"`
	Answer  int      `json:"answer" yaml:"answer"`
}

// CorrectChoice returns the text of the correct choice.
func (q Question) CorrectChoice() string {
	return q.Choices[q.Answer]
}

// Clone returns a deep copy of a question set.
func Clone(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Choices = append([]string(nil), q.Choices...)
		out[i] = q
	}
	return out
}
