package quiz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type Question struct {
	Prompt    string
	Options   []string
	Answer    string
	Correct   string
	Incorrect string
}

var bank = []Question{
	{
		Prompt:    "What particle has a positive charge?",
		Options:   []string{"Proton", "Neutron", "Electron", "Photon"},
		Answer:    "Proton",
		Correct:   "Correct! Protons have a positive charge.",
		Incorrect: "Incorrect. The correct answer is Proton.",
	},
	{
		Prompt:    "Where are electrons located in an atom?",
		Options:   []string{"Nucleus", "Electron cloud", "Proton shell", "Neutron orbit"},
		Answer:    "Electron cloud",
		Correct:   "Correct! Electrons move in the electron cloud around the nucleus.",
		Incorrect: "Incorrect. The correct answer is Electron cloud.",
	},
	{
		Prompt:    "What determines the atomic number of an element?",
		Options:   []string{"Number of protons", "Number of neutrons", "Number of electrons", "Total mass"},
		Answer:    "Number of protons",
		Correct:   "Correct! The atomic number is the number of protons.",
		Incorrect: "Incorrect. The correct answer is Number of protons.",
	},
}

// Bank returns a copy of the built-in questions.
func Bank() []Question {
	out := make([]Question, len(bank))
	for i, q := range bank {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

func Get(i int) (Question, error) {
	if i < 0 || i >= len(bank) {
		return Question{}, fmt.Errorf("%w: %d (have %d)", ErrNoQuestion, i, len(bank))
	}
	return Bank()[i], nil
}

// Resolve matches an option case-insensitively, also accepting a 1-based
// option number.
func (q Question) Resolve(input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, o := range q.Options {
		if strings.EqualFold(o, input) {
			return o, true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1], true
	}
	return "", false
}

type Mark int

const (
	Unmarked Mark = iota
	Correct
	Incorrect
)

// Session is a single question answered at most once.
type Session struct {
	Question Question
	selected string
	answered bool
}

func NewSession(q Question) *Session {
	return &Session{Question: q}
}

// Submit records option as the answer and reports whether it was right.
func (s *Session) Submit(option string) (bool, error) {
	if s.answered {
		return false, ErrAlreadyAnswered
	}
	chosen, ok := s.Question.Resolve(option)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	s.selected, s.answered = chosen, true
	return chosen == s.Question.Answer, nil
}

func (s *Session) Answered() bool   { return s.answered }
func (s *Session) Selected() string { return s.selected }

func (s *Session) IsCorrect() bool {
	return s.answered && s.selected == s.Question.Answer
}

// Mark shows the right answer and the chosen wrong one once the question is
// answered.
func (s *Session) Mark(option string) Mark {
	if !s.answered {
		return Unmarked
	}
	if option == s.Question.Answer {
		return Correct
	}
	if option == s.selected {
		return Incorrect
	}
	return Unmarked
}

func (s *Session) Feedback() string {
	if !s.answered {
		return ""
	}
	if s.IsCorrect() {
		return s.Question.Correct
	}
	return s.Question.Incorrect
}
