package question

// fallbackSet is served whenever generation is unavailable. It must always
// pass Validate since nothing replaces it.
var fallbackSet = []Question{
	{
		Text:    "Which keyword declares a function in Go?",
		Choices: []string{"func", "def", "fn", "function"},
		Answer:  0,
	},
	{
		Text:    "Where does a Go program start executing?",
		Choices: []string{"init in any package", "main in package main", "the first declared function", "Start in package app"},
		Answer:  1,
	},
	{
		Text:    "Which operator declares and assigns a variable in one step?",
		Choices: []string{"=", ":=", "<-", "=>"},
		Answer:  1,
	},
}

// Fallback returns a copy of the built-in question set.
func Fallback() []Question {
	return Clone(fallbackSet)
}
