package ner

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Prose implements Recognizer using the prose English NLP pipeline.
type Prose struct{}

// NewProse creates a prose-backed recognizer. Model data ships with the
// library, so construction cannot fail.
func NewProse() *Prose {
	return &Prose{}
}

// Name returns the engine name.
func (p *Prose) Name() string {
	return "prose"
}

// Recognize tokenizes, tags, and extracts named entities from text.
func (p *Prose) Recognize(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	var entities []Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, Entity{
			Text:  ent.Text,
			Label: ent.Label,
		})
	}
	return entities, nil
}
