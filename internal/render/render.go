// Copyright Science Live Hub, 2026. All rights reserved.

// Package render turns validated nanopublication records into TriG
// documents. Each record type has a Renderer producing the assertion graph;
// the shared assembly here adds the Head, provenance, and pubinfo graphs
// around it.
package render

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/trig"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/vocab"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

const (
	headGraph       = "sub:Head"
	assertionGraph  = "sub:assertion"
	provenanceGraph = "sub:provenance"
	pubinfoGraph    = "sub:pubinfo"

	// timestampLayout matches the millisecond-precision UTC format the
	// nanopub network expects in dct:created.
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// Options controls document assembly. The timestamp is injected so that a
// run stamps all its documents identically and tests render reproducibly.
type Options struct {
	// Timestamp is used for dct:created and prov:generatedAtTime.
	// Zero means time.Now().
	Timestamp time.Time
}

// labeledURI pairs a resource with the human-readable label shown in
// pubinfo via nt:hasLabelFromApi.
type labeledURI struct {
	uri   string
	label string
}

// assertion is what a Renderer produces: the assertion graph plus the
// type-specific hints the shared assembly needs for the other graphs.
type assertion struct {
	graph *trig.Graph

	// prefixes lists namespace prefixes used beyond the core set.
	prefixes []string

	// introduces is the formatted term for npx:introduces, empty if the
	// nanopub introduces no entity.
	introduces string

	// label is the auto-derived rdfs:label, overridable per record.
	label string

	// npTypes are the class IRIs for npx:hasNanopubType.
	npTypes []string

	// partOfAtNanopubLevel moves the is_part_of link from the assertion
	// entity to the nanopub itself (this: dct:isPartOf). The placement is
	// a fixed per-type policy, not configurable.
	partOfAtNanopubLevel bool

	// extraLabels are Wikidata entity labels surfaced in pubinfo, in
	// first-appearance order.
	extraLabels []labeledURI
}

// Renderer produces the assertion graph for one nanopublication type.
type Renderer interface {
	// Type returns the record type this renderer handles.
	Type() types.NanopubType

	// Assert builds the assertion graph for a validated record.
	Assert(rec *types.NanopubRecord, meta types.Metadata) (*assertion, error)
}

var registry = map[types.NanopubType]Renderer{}

// register adds a renderer to the dispatch table. Called from init in each
// renderer file; duplicate registration is a programming error.
func register(r Renderer) {
	if _, exists := registry[r.Type()]; exists {
		panic("duplicate renderer registration for type " + string(r.Type()))
	}
	registry[r.Type()] = r
}

// PlaceholderURI mints the pre-signing nanopub URI for a record. It is
// derived from the record content so rendering is deterministic; the
// network client replaces it with a trusty URI at signing time.
func PlaceholderURI(rec *types.NanopubRecord) string {
	data, _ := json.Marshal(rec)
	sum := sha256.Sum256(data)
	return vocab.NanopubNamespace + "RA" + hex.EncodeToString(sum[:])[:43]
}

// Render produces the complete TriG document for one record. Rendering is a
// pure function of (record, metadata, timestamp): identical inputs yield
// byte-identical output.
func Render(rec *types.NanopubRecord, meta types.Metadata, opts Options) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	r, ok := registry[rec.Type]
	if !ok {
		return "", fmt.Errorf("no renderer registered for type %q", rec.Type)
	}

	a, err := r.Assert(rec, meta)
	if err != nil {
		return "", err
	}

	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	stamp := ts.UTC().Format(timestampLayout)

	npURI := PlaceholderURI(rec)

	label := a.label
	if rec.Label != "" {
		label = rec.Label
	}

	parts := []string{
		prefixBlock(npURI, a.prefixes),
		headBlock().Render(),
		a.graph.Render(),
		provenanceBlock(meta, stamp).Render(),
		pubinfoBlock(a, rec, meta, stamp, label).Render(),
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

// prefixBlock declares this:/sub: plus the core and renderer-specific
// namespace prefixes.
func prefixBlock(npURI string, extra []string) string {
	names := make([]string, 0, len(vocab.CorePrefixes)+len(extra))
	seen := make(map[string]bool)
	for _, n := range append(append([]string{}, vocab.CorePrefixes...), extra...) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@prefix this: <%s> .\n", npURI)
	fmt.Fprintf(&b, "@prefix sub: <%s/> .\n", npURI)
	b.WriteString(trig.FormatPrefixes(names, vocab.Prefixes))
	return b.String()
}

func headBlock() *trig.Graph {
	g := trig.NewGraph(headGraph)
	g.AddBlock("this:", []trig.Pair{
		{Predicate: "a", Object: "np:Nanopublication"},
		{Predicate: "np:hasAssertion", Object: assertionGraph},
		{Predicate: "np:hasProvenance", Object: provenanceGraph},
		{Predicate: "np:hasPublicationInfo", Object: pubinfoGraph},
	})
	return g
}

func provenanceBlock(meta types.Metadata, stamp string) *trig.Graph {
	g := trig.NewGraph(provenanceGraph)
	g.AddBlock(assertionGraph, []trig.Pair{
		{Predicate: "prov:wasAttributedTo", Object: trig.CURIE("orcid", meta.CreatorORCID)},
		{Predicate: "prov:generatedAtTime", Object: trig.TypedLiteral(stamp, "xsd:dateTime")},
	})
	return g
}

func pubinfoBlock(a *assertion, rec *types.NanopubRecord, meta types.Metadata, stamp, label string) *trig.Graph {
	g := trig.NewGraph(pubinfoGraph)

	for _, l := range a.extraLabels {
		g.Add(trig.IRI(l.uri), "nt:hasLabelFromApi", trig.Literal(l.label))
	}
	if len(a.extraLabels) > 0 {
		g.AddBlank()
	}

	if meta.IsPartOf != nil && meta.IsPartOf.Label != "" {
		g.Add(trig.IRI(meta.IsPartOf.URI), "nt:hasLabelFromApi", trig.Literal(meta.IsPartOf.Label))
		g.AddBlank()
	}

	g.Add(trig.CURIE("orcid", meta.CreatorORCID), "foaf:name", trig.Literal(meta.CreatorName))
	g.AddBlank()

	pairs := []trig.Pair{
		{Predicate: "dct:created", Object: trig.TypedLiteral(stamp, "xsd:dateTime")},
		{Predicate: "dct:creator", Object: trig.CURIE("orcid", meta.CreatorORCID)},
		{Predicate: "dct:license", Object: trig.IRI(vocab.LicenseCCBY)},
	}

	if len(a.npTypes) > 0 {
		pairs = append(pairs, trig.Pair{Predicate: "npx:hasNanopubType", Object: joinIRIs(a.npTypes)})
	}
	if a.introduces != "" {
		pairs = append(pairs, trig.Pair{Predicate: "npx:introduces", Object: a.introduces})
	}
	if rec.Supersedes != "" {
		pairs = append(pairs, trig.Pair{Predicate: "npx:supersedes", Object: trig.IRI(rec.Supersedes)})
	}
	if a.partOfAtNanopubLevel && meta.IsPartOf != nil && meta.IsPartOf.URI != "" {
		pairs = append(pairs, trig.Pair{Predicate: "dct:isPartOf", Object: trig.IRI(meta.IsPartOf.URI)})
	}

	pairs = append(pairs,
		trig.Pair{Predicate: "npx:wasCreatedAt", Object: trig.IRI(vocab.CreationSite)},
		trig.Pair{Predicate: "rdfs:label", Object: trig.Literal(label)},
		trig.Pair{Predicate: "nt:wasCreatedFromProvenanceTemplate", Object: trig.IRI(vocab.ProvenanceTemplate)},
		trig.Pair{Predicate: "nt:wasCreatedFromPubinfoTemplate", Object: joinIRIs(vocab.PubinfoTemplates)},
	)

	if tmpl, ok := vocab.AssertionTemplate(rec.Type); ok {
		pairs = append(pairs, trig.Pair{Predicate: "nt:wasCreatedFromTemplate", Object: trig.IRI(tmpl)})
	}

	g.AddBlock("this:", pairs)
	return g
}

// joinIRIs formats a comma-separated object list.
func joinIRIs(uris []string) string {
	refs := make([]string, len(uris))
	for i, u := range uris {
		refs[i] = trig.IRI(u)
	}
	return strings.Join(refs, ", ")
}
