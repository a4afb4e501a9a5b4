// Package news is a fixture for the analyzer tests.
package news

import (
	"time"

	"github.com/google/uuid"

	"rdf-mapper/schema"
)

// Status is the publication state of an article.
type Status string

// Article is a published news item.
//
//rdf:subject uri
//rdf:type ex:Article
//rdf:prefix ex http://example.org/ns#
//rdf:prefix schema https://schema.org/
type Article struct {
	URI       string      `json:"uri" schema:"required"`
	ID        uuid.UUID   `json:"id" rdf:"ex:id"`
	Title     string      `json:"title" schema:"required" rdf:"schema:headline"`
	Status    Status      `json:"status" rdf:"ex:status"`
	Published time.Time   `json:"published" rdf:"schema:datePublished"`
	Issue     schema.Date `json:"issue" rdf:"ex:issue"`
	Words     int         `json:"words" rdf:"schema:wordCount"`
	Score     float64     `json:"score" rdf:"ex:score"`
	Draft     bool        `json:"draft" rdf:"ex:draft"`
	Author    *Author     `json:"author" rdf:"schema:author"`
	Tags      []string    `json:"tags" rdf:"schema:keywords"`
	Meta      Meta        `json:"meta" rdf:"@collapse"`
	Internal  string      `json:"internal" rdf:"-"`
	Hidden    string      `json:"-"`
	note      string
}

// Author wrote an article.
type Author struct {
	Name  string `json:"name" rdf:"schema:name"`
	Email string `json:"email,omitempty" rdf:"schema:email"`
}

// Meta is merged into its owner's subject.
type Meta struct {
	Section string `json:"section" rdf:"ex:section"`
}

// Thread replies to itself.
type Thread struct {
	Title   string   `json:"title" rdf:"ex:title"`
	Replies []Thread `json:"replies" rdf:"ex:reply"`
}

// Plain carries no mapping.
type Plain struct {
	Name string `json:"name"`
}

// Broken has a malformed directive.
//
//rdf:prefix ex
type Broken struct {
	Name string `json:"name" rdf:"ex:name"`
}

// Feed holds fields no mapping exists for.
type Feed struct {
	Title   string            `json:"title" rdf:"ex:title"`
	Refresh func() string     `json:"refresh" rdf:"ex:refresh"`
	Labels  map[string]string `json:"labels" rdf:"ex:label"`
	Hooks   []chan int        `json:"hooks" rdf:"ex:hook"`
}
