// Copyright Science Live Hub, 2026. All rights reserved.

package render

import (
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/trig"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/vocab"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

func init() {
	register(datasetRenderer{})
}

// datasetRenderer describes a published dataset in DCAT terms. The
// parent-review link sits on the dataset entity.
type datasetRenderer struct{}

func (datasetRenderer) Type() types.NanopubType { return types.TypeDataset }

func (datasetRenderer) Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error) {
	pairs := []trig.Pair{
		{Predicate: "a", Object: "dcat:Dataset"},
		{Predicate: "dct:title", Object: trig.Literal(rec.Name)},
		{Predicate: "dct:description", Object: trig.Literal(rec.Description)},
		{Predicate: "dcat:downloadURL", Object: trig.IRI(rec.URL)},
	}

	if rec.License != "" {
		pairs = append(pairs, trig.Pair{Predicate: "dct:license", Object: licenseTerm(rec.License)})
	}
	for _, kw := range rec.Keywords {
		pairs = append(pairs, trig.Pair{Predicate: "dcat:keyword", Object: trig.Literal(kw)})
	}

	if meta.IsPartOf != nil && meta.IsPartOf.URI != "" {
		pairs = append(pairs, trig.Pair{Predicate: "dct:isPartOf", Object: trig.IRI(meta.IsPartOf.URI)})
	}

	g := trig.NewGraph(assertionGraph)
	g.AddBlock("sub:dataset", pairs)

	return &assertion{
		graph:      g,
		prefixes:   []string{"dcat"},
		introduces: "sub:dataset",
		label:      rec.Name,
		npTypes:    []string{vocab.ClassDataset},
	}, nil
}
