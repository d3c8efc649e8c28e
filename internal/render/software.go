// Copyright Science Live Hub, 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/trig"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/vocab"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

func init() {
	register(softwareRenderer{})
}

// softwareRenderer describes a piece of research software in schema.org
// terms. The parent-review link sits on the software entity.
type softwareRenderer struct{}

func (softwareRenderer) Type() types.NanopubType { return types.TypeSoftware }

func (softwareRenderer) Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error) {
	pairs := []trig.Pair{
		{Predicate: "a", Object: "schema:SoftwareApplication"},
		{Predicate: "schema:name", Object: trig.Literal(rec.Name)},
		{Predicate: "schema:description", Object: trig.Literal(rec.Description)},
		{Predicate: "schema:url", Object: trig.IRI(rec.URL)},
	}

	if rec.License != "" {
		pairs = append(pairs, trig.Pair{Predicate: "schema:license", Object: licenseTerm(rec.License)})
	}
	if rec.ProgrammingLanguage != "" {
		pairs = append(pairs, trig.Pair{Predicate: "schema:programmingLanguage", Object: trig.Literal(rec.ProgrammingLanguage)})
	}
	for _, kw := range rec.Keywords {
		pairs = append(pairs, trig.Pair{Predicate: "schema:keywords", Object: trig.Literal(kw)})
	}

	if meta.IsPartOf != nil && meta.IsPartOf.URI != "" {
		pairs = append(pairs, trig.Pair{Predicate: "dct:isPartOf", Object: trig.IRI(meta.IsPartOf.URI)})
	}

	g := trig.NewGraph(assertionGraph)
	g.AddBlock("sub:software", pairs)

	return &assertion{
		graph:      g,
		prefixes:   []string{"schema"},
		introduces: "sub:software",
		label:      rec.Name,
		npTypes:    []string{vocab.ClassSoftware},
	}, nil
}

// licenseTerm formats a license as a URI reference when it looks like one,
// otherwise as a literal (e.g. an SPDX identifier).
func licenseTerm(license string) string {
	if strings.HasPrefix(license, "http://") || strings.HasPrefix(license, "https://") {
		return trig.IRI(license)
	}
	return trig.Literal(license)
}
