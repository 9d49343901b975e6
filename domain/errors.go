package domain

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSessionNotFound = errors.New("session not found")

	ErrInvalidEventKind   = errors.New("invalid event kind")
	ErrInvalidUserRef     = errors.New("invalid user reference")
	ErrInvalidArticleRef  = errors.New("invalid article reference")
	ErrInvalidDuration    = errors.New("duration must not be negative")
	ErrInvalidScrollDepth = errors.New("scroll depth must be within [0, 1]")
	ErrInvalidCategory    = errors.New("unknown category")
)
