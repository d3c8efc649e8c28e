// Copyright Science Live Hub, 2026. All rights reserved.

package vocab

import "github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"

// ProvenanceTemplate is the Nanodash provenance template every document
// references via nt:wasCreatedFromProvenanceTemplate.
const ProvenanceTemplate = "https://w3id.org/np/RA7lSq6MuK_TIC6JMSHvLtee3lpLoZDOqLJCLXevnrPoU"

// PubinfoTemplates are the Nanodash pubinfo templates referenced via
// nt:wasCreatedFromPubinfoTemplate, in declaration order.
var PubinfoTemplates = []string{
	"https://w3id.org/np/RA0J4vUn_dekg-U1kK3AOEt02p9mT2WO03uGxLDec1jLw",
	"https://w3id.org/np/RAukAcWHRDlkqxk7H2XNSegc1WnHI569INvNr-xdptDGI",
}

// assertionTemplates maps each record type to the network-recognized
// assertion template it instantiates. Comment nanopubs are free-form and
// reference no assertion template.
var assertionTemplates = map[types.NanopubType]string{
	types.TypeAIDA:     "https://w3id.org/np/RAVGbGZ3BsmRVybxVKokq9Fmn6DbAK29PsGCQHz7e_z_c",
	types.TypeSoftware: "https://w3id.org/np/RAnEkyqvDFg0Ck0067xmiy5fk6cCa45kmdvBYjRv1oKqY",
	types.TypeDataset:  "https://w3id.org/np/RA4c7hMakIjKnWkcE9KBzCqZfdv5Yc1wDZCUvJ3Y9UqWM",
	types.TypeCiTO:     "https://w3id.org/np/RAbT02fQVrwhX6fOrPE1E6rrTDIFClqJPDW9RiQUBAbnE",
	types.TypeWikidata: "https://w3id.org/np/RAEhscSsW7fwN0YhJ1lJgBRW8e0ZU3B4vcszXyD69_wLY",
}

// AssertionTemplate returns the template URI for a record type. The second
// return value is false for types without an assertion template.
func AssertionTemplate(t types.NanopubType) (string, bool) {
	uri, ok := assertionTemplates[t]
	return uri, ok
}

// CiTORelations enumerates the CiTO property local names the builder
// accepts in citation records.
var CiTORelations = map[string]bool{
	"agreesWith":                true,
	"cites":                     true,
	"citesAsAuthority":          true,
	"citesAsDataSource":         true,
	"citesAsEvidence":           true,
	"citesAsMetadataDocument":   true,
	"citesAsPotentialSolution":  true,
	"citesAsRecommendedReading": true,
	"citesAsRelated":            true,
	"citesAsSourceDocument":     true,
	"citesForInformation":       true,
	"confirms":                  true,
	"corrects":                  true,
	"critiques":                 true,
	"disagreesWith":             true,
	"discusses":                 true,
	"disputes":                  true,
	"extends":                   true,
	"includesExcerptFrom":       true,
	"includesQuotationFrom":     true,
	"obtainsBackgroundFrom":     true,
	"obtainsSupportFrom":        true,
	"providesAssertionFor":      true,
	"providesConclusionsFor":    true,
	"providesDataFor":           true,
	"providesExcerptFor":        true,
	"providesMethodFor":         true,
	"providesQuotationFor":      true,
	"refutes":                   true,
	"repliesTo":                 true,
	"reviews":                   true,
	"supports":                  true,
	"updates":                   true,
	"usesDataFrom":              true,
	"usesMethodIn":              true,
}

// ValidCiTORelation reports whether name is an accepted CiTO property.
func ValidCiTORelation(name string) bool {
	return CiTORelations[name]
}
