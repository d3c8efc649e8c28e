// Copyright Science Live Hub, 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
)

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     NanopubRecord
		errPart string
	}{
		{
			name: "valid aida",
			rec:  NanopubRecord{ID: "c1", Type: TypeAIDA, AIDASentence: "Water is wet."},
		},
		{
			name:    "aida missing sentence",
			rec:     NanopubRecord{ID: "c1", Type: TypeAIDA},
			errPart: "aida_sentence",
		},
		{
			name:    "software missing several fields",
			rec:     NanopubRecord{ID: "s1", Type: TypeSoftware, Name: "tool"},
			errPart: "description, url",
		},
		{
			name:    "cito empty citations",
			rec:     NanopubRecord{ID: "c1", Type: TypeCiTO},
			errPart: "citations",
		},
		{
			name: "cito incomplete citation",
			rec: NanopubRecord{ID: "c1", Type: TypeCiTO,
				Citations: []Citation{{Relation: "cites"}}},
			errPart: "citations[0]",
		},
		{
			name: "wikidata incomplete statement",
			rec: NanopubRecord{ID: "w1", Type: TypeWikidata,
				Statements: []WikidataStatement{{
					Subject:  WikidataTerm{ID: "Q1"},
					Property: WikidataTerm{ID: "P31"},
				}}},
			errPart: "statements[0]",
		},
		{
			name:    "missing id",
			rec:     NanopubRecord{Type: TypeAIDA, AIDASentence: "x"},
			errPart: "id",
		},
		{
			name:    "unknown type",
			rec:     NanopubRecord{ID: "x", Type: "poem"},
			errPart: "unknown nanopublication type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.errPart == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Validate error = %v, want containing %q", err, tt.errPart)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		rec  NanopubRecord
		want string
	}{
		{"explicit label wins", NanopubRecord{ID: "x", Label: "My label", AIDASentence: "s"}, "My label"},
		{"aida sentence", NanopubRecord{ID: "x", AIDASentence: "Water is wet."}, "Water is wet."},
		{"software name", NanopubRecord{ID: "x", Name: "tool"}, "tool"},
		{"comment text", NanopubRecord{ID: "x", Comment: "Nice result."}, "Nice result."},
		{"falls back to id", NanopubRecord{ID: "x"}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.DisplayLabel(); got != tt.want {
				t.Errorf("DisplayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetadataValidate(t *testing.T) {
	meta := Metadata{PaperTitle: "T", CreatorORCID: "0000-0002-1825-0097", CreatorName: "N"}
	if err := meta.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	missing := Metadata{PaperTitle: "T"}
	err := missing.Validate()
	if err == nil || !strings.Contains(err.Error(), "creator_orcid") {
		t.Errorf("err = %v, want missing creator_orcid", err)
	}
}
