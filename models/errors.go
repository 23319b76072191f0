package models

import "errors"

var (
	// ErrFileOpen is returned when an input dataset cannot be opened.
	ErrFileOpen = errors.New("cannot open input file")

	// ErrEmptyGroup is returned when a mean is requested over zero records.
	ErrEmptyGroup = errors.New("mean over empty group")

	// ErrInvalidSelection is returned when a menu choice is out of range.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrUnknownAlgorithm is returned for an unrecognised sort algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

	// ErrUnknownSource is returned for an unrecognised data source name.
	ErrUnknownSource = errors.New("unknown data source")

	// ErrUnknownFormat is returned for an unrecognised report format.
	ErrUnknownFormat = errors.New("unknown report format")
)
