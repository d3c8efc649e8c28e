// Copyright Science Live Hub, 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/trig"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/vocab"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

func init() {
	register(wikidataRenderer{})
}

// wikidataRenderer mirrors subject-property-object statements into
// Wikidata-style triples, one per statement in input order. Entity labels
// are surfaced in pubinfo via nt:hasLabelFromApi so readers see names next
// to Q and P identifiers. The parent-review link sits at the nanopub level.
type wikidataRenderer struct{}

func (wikidataRenderer) Type() types.NanopubType { return types.TypeWikidata }

func (wikidataRenderer) Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error) {
	g := trig.NewGraph(assertionGraph)

	var labels []labeledURI
	seen := make(map[string]bool)
	collect := func(term types.WikidataTerm, namespace string) {
		if term.Label == "" {
			return
		}
		uri := term.URI
		if uri == "" {
			uri = namespace + term.ID
		}
		if !strings.Contains(uri, "wikidata.org") {
			return
		}
		if !seen[uri] {
			seen[uri] = true
			labels = append(labels, labeledURI{uri: uri, label: term.Label})
		}
	}

	for i, st := range rec.Statements {
		subject, err := entityTerm(st.Subject)
		if err != nil {
			return nil, fmt.Errorf("statements[%d] subject: %w", i, err)
		}
		property, err := propertyTerm(st.Property)
		if err != nil {
			return nil, fmt.Errorf("statements[%d] property: %w", i, err)
		}
		object, err := entityTerm(st.Object)
		if err != nil {
			return nil, fmt.Errorf("statements[%d] object: %w", i, err)
		}

		g.Add(subject, property, object)

		collect(st.Subject, vocab.Prefixes["wd"])
		collect(st.Object, vocab.Prefixes["wd"])
	}

	return &assertion{
		graph:                g,
		prefixes:             []string{"wd", "wdt"},
		label:                wikidataLabel(rec.Statements),
		npTypes:              []string{vocab.ClassWikidata},
		partOfAtNanopubLevel: true,
		extraLabels:          labels,
	}, nil
}

// entityTerm formats a subject or object position: an explicit URI wins,
// otherwise the ID is taken as a Wikidata entity.
func entityTerm(t types.WikidataTerm) (string, error) {
	if t.URI != "" {
		return trig.IRI(t.URI), nil
	}
	if t.ID != "" {
		return trig.CURIE("wd", t.ID), nil
	}
	return "", fmt.Errorf("needs a uri or id")
}

// propertyTerm formats a property position as a Wikidata direct property.
func propertyTerm(t types.WikidataTerm) (string, error) {
	if t.URI != "" {
		return trig.IRI(t.URI), nil
	}
	if t.ID != "" {
		return trig.CURIE("wdt", t.ID), nil
	}
	return "", fmt.Errorf("needs a uri or id")
}

// wikidataLabel derives a readable label from the first fully labeled
// statement, falling back to a generic label.
func wikidataLabel(statements []types.WikidataStatement) string {
	for _, st := range statements {
		if st.Subject.Label != "" && st.Property.Label != "" && st.Object.Label != "" {
			return st.Subject.Label + " " + st.Property.Label + " " + st.Object.Label
		}
	}
	return "Wikidata statements"
}
