// Package ner defines the entity-recognition boundary. The counting logic
// in internal/analysis depends only on the Recognizer interface, so it can
// be tested with a deterministic stub.
package ner

import "fmt"

// LabelPerson marks an entity span recognized as a person name.
const LabelPerson = "PERSON"

// Entity is a labeled span produced by a recognition engine.
type Entity struct {
	Text  string
	Label string
}

// Recognizer runs named-entity recognition over free text.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
	Name() string
}

// New creates a recognition engine by name.
func New(engine string) (Recognizer, error) {
	switch engine {
	case "prose":
		return NewProse(), nil
	default:
		return nil, fmt.Errorf("unknown recognition engine: %s", engine)
	}
}
