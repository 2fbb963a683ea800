package domain

import "errors"

var (
	ErrInvalidCount        = errors.New("count must be between 1 and the deck size")
	ErrSpreadNotFound      = errors.New("spread not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrReadingNotFound     = errors.New("reading not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidTransition   = errors.New("invalid phase transition")
	ErrSelectionIncomplete = errors.New("not all spread positions have been picked")
	ErrInvalidPick         = errors.New("pick index out of range")
	ErrEmptyQuestion       = errors.New("question must not be empty")
	ErrQuestionTooLong     = errors.New("question must be at most 500 characters")
	ErrUpstreamLLM         = errors.New("upstream LLM failure")
	ErrInvalidLLMJSON      = errors.New("LLM returned invalid JSON after retry")
)
