// Copyright Science Live Hub, 2026. All rights reserved.

// Package vocab holds the RDF vocabulary used by the nanopublication
// builder: namespace prefixes, the class IRIs asserted per record type, and
// the registry of external templates each document instantiates.
package vocab

// Prefixes maps prefix names to namespace IRIs. This is the superset of
// namespaces any renderer may declare; each document only declares the
// prefixes it uses.
var Prefixes = map[string]string{
	"np":       "http://www.nanopub.org/nschema#",
	"dct":      "http://purl.org/dc/terms/",
	"rdf":      "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":     "http://www.w3.org/2000/01/rdf-schema#",
	"xsd":      "http://www.w3.org/2001/XMLSchema#",
	"prov":     "http://www.w3.org/ns/prov#",
	"foaf":     "http://xmlns.com/foaf/0.1/",
	"orcid":    "https://orcid.org/",
	"npx":      "http://purl.org/nanopub/x/",
	"nt":       "https://w3id.org/np/o/ntemplate/",
	"cito":     "http://purl.org/spar/cito/",
	"fabio":    "http://purl.org/spar/fabio/",
	"schema":   "https://schema.org/",
	"skos":     "http://www.w3.org/2004/02/skos/core#",
	"hycl":     "http://purl.org/petapico/o/hycl#",
	"aida":     "http://purl.org/aida/",
	"wd":       "http://www.wikidata.org/entity/",
	"wdt":      "http://www.wikidata.org/prop/direct/",
	"dcmitype": "http://purl.org/dc/dcmitype/",
	"dcat":     "https://www.w3.org/ns/dcat#",
}

// CorePrefixes are declared in every document regardless of type.
var CorePrefixes = []string{
	"np", "dct", "rdf", "rdfs", "xsd", "prov", "foaf", "orcid", "npx", "nt",
}

// NanopubNamespace is the base of minted nanopublication URIs.
const NanopubNamespace = "https://w3id.org/np/"

// Well-known IRIs appearing in pubinfo.
const (
	// LicenseCCBY is the license attached to every published nanopub.
	LicenseCCBY = "https://creativecommons.org/licenses/by/4.0/"

	// CreationSite identifies the tool environment in npx:wasCreatedAt.
	CreationSite = "https://nanodash.knowledgepixels.com/"

	// DOIBase resolves bare DOIs to URIs.
	DOIBase = "https://doi.org/"
)

// Class IRIs asserted per record type via npx:hasNanopubType and rdf:type.
const (
	// ClassAIDASentence marks an Atomic, Independent, Declarative,
	// Absolute claim sentence.
	ClassAIDASentence = "http://purl.org/petapico/o/hycl#AIDA-Sentence"

	// ClassSoftware marks a software application description.
	ClassSoftware = "https://schema.org/SoftwareApplication"

	// ClassDataset marks a dataset description.
	ClassDataset = "https://www.w3.org/ns/dcat#Dataset"

	// ClassCitation marks a typed-citation nanopub.
	ClassCitation = "http://purl.org/spar/cito/Citation"

	// ClassComment marks a free-text comment.
	ClassComment = "https://schema.org/Comment"

	// ClassWikidata marks a nanopub mirroring Wikidata statements.
	ClassWikidata = "http://purl.org/nanopub/x/WikidataStatement"
)
