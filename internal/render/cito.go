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
	register(citoRenderer{})
}

// citoRenderer publishes typed citations from the configured paper to other
// works, one cito triple per citation in input order. The citing paper is
// identified by the metadata DOI, so the parent-review link sits at the
// nanopub level rather than on an assertion entity.
type citoRenderer struct{}

func (citoRenderer) Type() types.NanopubType { return types.TypeCiTO }

func (citoRenderer) Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error) {
	if meta.PaperDOI == "" {
		return nil, fmt.Errorf("citation records require metadata paper_doi")
	}

	pairs := make([]trig.Pair, 0, len(rec.Citations))
	for i, c := range rec.Citations {
		if !vocab.ValidCiTORelation(c.Relation) {
			return nil, fmt.Errorf("citations[%d]: unknown CiTO relation %q", i, c.Relation)
		}
		pairs = append(pairs, trig.Pair{
			Predicate: trig.CURIE("cito", c.Relation),
			Object:    citedWork(c.Target),
		})
	}

	g := trig.NewGraph(assertionGraph)
	g.AddBlock(trig.IRI(vocab.DOIBase+meta.PaperDOI), pairs)

	return &assertion{
		graph:                g,
		prefixes:             []string{"cito"},
		label:                "Citations from: " + meta.PaperTitle,
		npTypes:              []string{vocab.ClassCitation},
		partOfAtNanopubLevel: true,
	}, nil
}

// citedWork resolves a citation target to a URI reference. Bare DOIs are
// resolved through doi.org; anything else is taken as a URI.
func citedWork(target string) string {
	if strings.HasPrefix(target, "10.") {
		return trig.IRI(vocab.DOIBase + target)
	}
	return trig.IRI(target)
}
