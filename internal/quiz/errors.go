package quiz

import "errors"

var (
	// ErrAlreadyAnswered indicates a second submission to a session.
	ErrAlreadyAnswered = errors.New("quiz: question already answered")

	// ErrUnknownOption indicates a submission that is not one of the options.
	ErrUnknownOption = errors.New("quiz: not one of the options")

	// ErrNoQuestion indicates a question index outside the bank.
	ErrNoQuestion = errors.New("quiz: no such question")
)
