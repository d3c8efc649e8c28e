// Copyright Science Live Hub, 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/trig"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/vocab"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

func init() {
	register(commentRenderer{})
}

// commentRenderer publishes a free-text comment about a resource. When no
// target is given the comment is about the configured paper. The
// parent-review link sits on the comment entity. Comment nanopubs reference
// no assertion template; they are free-form.
type commentRenderer struct{}

func (commentRenderer) Type() types.NanopubType { return types.TypeComment }

func (commentRenderer) Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error) {
	about := rec.About
	if about == "" {
		if meta.PaperDOI == "" {
			return nil, fmt.Errorf("comment records require an about URI or metadata paper_doi")
		}
		about = vocab.DOIBase + meta.PaperDOI
	}

	pairs := []trig.Pair{
		{Predicate: "a", Object: "schema:Comment"},
		{Predicate: "schema:text", Object: trig.Literal(rec.Comment)},
		{Predicate: "schema:about", Object: trig.IRI(about)},
	}

	if meta.IsPartOf != nil && meta.IsPartOf.URI != "" {
		pairs = append(pairs, trig.Pair{Predicate: "dct:isPartOf", Object: trig.IRI(meta.IsPartOf.URI)})
	}

	g := trig.NewGraph(assertionGraph)
	g.AddBlock("sub:comment", pairs)

	return &assertion{
		graph:      g,
		prefixes:   []string{"schema"},
		introduces: "sub:comment",
		label:      truncateLabel(rec.Comment),
		npTypes:    []string{vocab.ClassComment},
	}, nil
}

// truncateLabel shortens long comment text for the rdfs:label triple.
func truncateLabel(s string) string {
	const max = 100
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
