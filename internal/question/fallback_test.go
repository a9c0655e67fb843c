package question

import "testing"

// TestFallbackIsValid verifies the built-in set always passes validation.
func TestFallbackIsValid(t *testing.T) {
	set := Fallback()
	if err := Validate(set); err != nil {
		t.Fatalf("fallback set invalid: %v", err)
	}
	for i, q := range set {
		if len(q.Choices) != ChoiceCount {
			t.Fatalf("question %d: expected %d choices, got %d", i, ChoiceCount, len(q.Choices))
		}
		if q.Answer < 0 || q.Answer >= ChoiceCount {
			t.Fatalf("question %d: answer %d out of range", i, q.Answer)
		}
	}
}

// TestFallbackAnswerKey pins the answer key the quiz scenarios rely on.
func TestFallbackAnswerKey(t *testing.T) {
	want := []int{0, 1, 1}
	set := Fallback()
	if len(set) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(set))
	}
	for i, q := range set {
		if q.Answer != want[i] {
			t.Fatalf("question %d: expected answer %d, got %d", i, want[i], q.Answer)
		}
	}
}

// TestFallbackReturnsCopy verifies callers cannot mutate the built-in set.
func TestFallbackReturnsCopy(t *testing.T) {
	first := Fallback()
	first[0].Choices[0] = "changed"
	first[1].Answer = 3
	second := Fallback()
	if second[0].Choices[0] == "changed" || second[1].Answer == 3 {
		t.Fatalf("fallback set was mutated: %+v", second)
	}
}
