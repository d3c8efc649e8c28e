// Copyright Science Live Hub, 2026. All rights reserved.

// Package types defines the shared data structures for nanopublication
// generation: the configuration schema, the per-type record shapes, and the
// signing profile.
package types

import (
	"fmt"
	"strings"
)

// NanopubType identifies which kind of nanopublication a record produces.
type NanopubType string

const (
	TypeAIDA     NanopubType = "aida"
	TypeSoftware NanopubType = "software"
	TypeDataset  NanopubType = "dataset"
	TypeCiTO     NanopubType = "cito"
	TypeComment  NanopubType = "comment"
	TypeWikidata NanopubType = "wikidata"
)

// AllTypes lists the supported nanopublication types in canonical order.
func AllTypes() []NanopubType {
	return []NanopubType{
		TypeAIDA, TypeSoftware, TypeDataset, TypeCiTO, TypeComment, TypeWikidata,
	}
}

// Valid reports whether t is a known nanopublication type.
func (t NanopubType) Valid() bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// PartOfLink associates a nanopublication with a parent collection, usually
// a systematic review nanopub. The label is shown in pubinfo so readers see
// a human-readable name next to the review URI.
type PartOfLink struct {
	URI   string `json:"uri" yaml:"uri"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Metadata holds the paper- and creator-level fields shared by every record
// in a configuration file.
type Metadata struct {
	// PaperTitle is the title of the paper the nanopublications describe.
	PaperTitle string `json:"paper_title" yaml:"paper_title"`

	// PaperDOI is the DOI of the paper (bare, e.g. "10.1038/s41586-024-07487-w").
	PaperDOI string `json:"paper_doi,omitempty" yaml:"paper_doi,omitempty"`

	// CreatorORCID is the bare ORCID of the person publishing
	// (e.g. "0000-0002-1825-0097").
	CreatorORCID string `json:"creator_orcid" yaml:"creator_orcid"`

	// CreatorName is the display name used for the foaf:name triple.
	CreatorName string `json:"creator_name" yaml:"creator_name"`

	// IsPartOf links every generated nanopublication to a parent review.
	IsPartOf *PartOfLink `json:"is_part_of,omitempty" yaml:"is_part_of,omitempty"`
}

// Validate checks that the fields needed for attribution triples are set.
func (m Metadata) Validate() error {
	var missing []string
	if m.CreatorORCID == "" {
		missing = append(missing, "creator_orcid")
	}
	if m.CreatorName == "" {
		missing = append(missing, "creator_name")
	}
	if m.PaperTitle == "" {
		missing = append(missing, "paper_title")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required metadata fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Citation is one typed citation in a CiTO record. Relation is a CiTO
// property local name (e.g. "cites", "citesAsEvidence", "disagreesWith");
// Target is the DOI or URI of the cited work.
type Citation struct {
	Relation string `json:"cito_type" yaml:"cito_type"`
	Target   string `json:"target" yaml:"target"`
}

// WikidataTerm identifies one position of a Wikidata statement. Exactly one
// of URI or ID is set: URI for arbitrary resources (e.g. "urn:x"), ID for
// Wikidata entities ("Q7397") and properties ("P31"). Label, when present,
// is surfaced in pubinfo for readability.
type WikidataTerm struct {
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// IsZero reports whether neither URI nor ID is set.
func (t WikidataTerm) IsZero() bool {
	return t.URI == "" && t.ID == ""
}

// WikidataStatement is one subject-property-object statement mirrored to a
// Wikidata-style triple.
type WikidataStatement struct {
	Subject  WikidataTerm `json:"subject" yaml:"subject"`
	Property WikidataTerm `json:"property" yaml:"property"`
	Object   WikidataTerm `json:"object" yaml:"object"`
}

// NanopubRecord is one heterogeneous entry in a configuration file. ID and
// Type are always required; which of the remaining fields matter depends on
// Type. Unused fields are simply ignored by the renderer for that type.
type NanopubRecord struct {
	// ID is the output filename stem. Unique within a config file; records
	// sharing an ID overwrite each other's output.
	ID string `json:"id" yaml:"id"`

	// Type selects the renderer.
	Type NanopubType `json:"type" yaml:"type"`

	// Label overrides the auto-derived rdfs:label in pubinfo.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Supersedes is the URI of an earlier nanopublication this one replaces.
	Supersedes string `json:"supersedes,omitempty" yaml:"supersedes,omitempty"`

	// AIDA fields.
	AIDASentence string   `json:"aida_sentence,omitempty" yaml:"aida_sentence,omitempty"`
	Topics       []string `json:"topics,omitempty" yaml:"topics,omitempty"`

	// Software and dataset fields.
	Name                string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description         string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL                 string   `json:"url,omitempty" yaml:"url,omitempty"`
	License             string   `json:"license,omitempty" yaml:"license,omitempty"`
	ProgrammingLanguage string   `json:"programming_language,omitempty" yaml:"programming_language,omitempty"`
	Keywords            []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// CiTO fields.
	Citations []Citation `json:"citations,omitempty" yaml:"citations,omitempty"`

	// Comment fields. About defaults to the paper DOI when empty.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
	About   string `json:"about,omitempty" yaml:"about,omitempty"`

	// Wikidata fields.
	Statements []WikidataStatement `json:"statements,omitempty" yaml:"statements,omitempty"`
}

// DisplayLabel returns a human-readable label for listings: the explicit
// Label when set, otherwise the most descriptive field the type carries.
func (r *NanopubRecord) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	for _, candidate := range []string{r.AIDASentence, r.Name, r.Comment} {
		if candidate != "" {
			return candidate
		}
	}
	return r.ID
}

// Validate checks that the record carries the fields its type requires.
// The error message lists every missing field so the diagnostic is
// actionable in one pass.
func (r *NanopubRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("missing required fields: id")
	}
	if !r.Type.Valid() {
		return fmt.Errorf("unknown nanopublication type %q", r.Type)
	}

	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch r.Type {
	case TypeAIDA:
		require("aida_sentence", r.AIDASentence)
	case TypeSoftware:
		require("name", r.Name)
		require("description", r.Description)
		require("url", r.URL)
	case TypeDataset:
		require("name", r.Name)
		require("description", r.Description)
		require("url", r.URL)
	case TypeCiTO:
		if len(r.Citations) == 0 {
			missing = append(missing, "citations")
		}
		for i, c := range r.Citations {
			if c.Relation == "" || c.Target == "" {
				missing = append(missing, fmt.Sprintf("citations[%d]", i))
			}
		}
	case TypeComment:
		require("comment", r.Comment)
	case TypeWikidata:
		if len(r.Statements) == 0 {
			missing = append(missing, "statements")
		}
		for i, st := range r.Statements {
			if st.Subject.IsZero() || st.Property.IsZero() || st.Object.IsZero() {
				missing = append(missing, fmt.Sprintf("statements[%d]", i))
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Config is one nanopublication configuration file: shared metadata plus a
// list of heterogeneous records.
type Config struct {
	Metadata         Metadata        `json:"metadata" yaml:"metadata"`
	Nanopublications []NanopubRecord `json:"nanopublications" yaml:"nanopublications"`
}
