// Copyright Science Live Hub, 2026. All rights reserved.

package render

import (
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/trig"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/vocab"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

func init() {
	register(aidaRenderer{})
}

// aidaRenderer publishes a single scientific claim as an AIDA sentence:
// Atomic, Independent, Declarative, Absolute. The sentence text is kept
// verbatim as the claim label; listed topics become one schema:about triple
// each, in input order. The parent-review link sits on the claim entity.
type aidaRenderer struct{}

func (aidaRenderer) Type() types.NanopubType { return types.TypeAIDA }

func (aidaRenderer) Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error) {
	prefixes := []string{"hycl"}

	pairs := []trig.Pair{
		{Predicate: "a", Object: "hycl:AIDA-Sentence"},
		{Predicate: "rdfs:label", Object: trig.Literal(rec.AIDASentence)},
	}

	if len(rec.Topics) > 0 {
		prefixes = append(prefixes, "schema")
		for _, topic := range rec.Topics {
			pairs = append(pairs, trig.Pair{Predicate: "schema:about", Object: trig.IRI(topic)})
		}
	}

	if meta.IsPartOf != nil && meta.IsPartOf.URI != "" {
		pairs = append(pairs, trig.Pair{Predicate: "dct:isPartOf", Object: trig.IRI(meta.IsPartOf.URI)})
	}

	g := trig.NewGraph(assertionGraph)
	g.AddBlock("sub:claim", pairs)

	return &assertion{
		graph:      g,
		prefixes:   prefixes,
		introduces: "sub:claim",
		label:      rec.AIDASentence,
		npTypes:    []string{vocab.ClassAIDASentence},
	}, nil
}
