package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopic is matched by InvalidTopicError.
	ErrInvalidTopic = errors.New("invalid topic number")
	// ErrQuestionExists is matched by QuestionExistsError.
	ErrQuestionExists = errors.New("question folder already exists")
	// ErrEmptyName is returned for a blank question name.
	ErrEmptyName = errors.New("question name is empty")
	// ErrInvalidName is returned for names that would escape the topic folder.
	ErrInvalidName = errors.New("invalid question name")
	// ErrTemplateExists is returned by InitTemplate when it would overwrite.
	ErrTemplateExists = errors.New("template already exists")
)

// InvalidTopicError reports a topic number missing from the table.
type InvalidTopicError struct {
	Number   int
	Min, Max int
}

func (e *InvalidTopicError) Error() string {
	return fmt.Sprintf("invalid topic number %d: must be between %d-%d", e.Number, e.Min, e.Max)
}

func (e *InvalidTopicError) Is(target error) bool { return target == ErrInvalidTopic }

// QuestionExistsError names the path that blocked creation.
type QuestionExistsError struct {
	Path string
}

func (e *QuestionExistsError) Error() string {
	return "question folder already exists: " + e.Path
}

func (e *QuestionExistsError) Is(target error) bool { return target == ErrQuestionExists }
