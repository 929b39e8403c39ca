package fasta

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"proteindata.org/uniprot-header-api/internal/uniprot"
)

const testFasta = `>sp|P02668|CASK_BOVIN Kappa-casein OS=Bos taurus OX=9913 GN=CSN3 PE=1 SV=1
MMKSFFLVVTILALTLPFLGAQEQNQEQPIRCEKDERFFSDKIAKYIPIQYVLSRYPSYG
LNYYQQKPVALINNQFLPYPYYAKPAAVRSPAQILQWQVLSNTVPAKSCQAQPTTMARHP
>sp|P18355|YPFU_ECOLI Uncharacterized protein in traD-traI intergenic region OS=Escherichia coli (strain K12) OX=83333 PE=3 SV=1
MKRLLITGGRALSGEIAHALQQLGHEVIVTGRNAEALAPLAAEFGAADYL
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(testFasta))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if !strings.HasPrefix(first.Header, ">sp|P02668|CASK_BOVIN") {
		t.Errorf("unexpected header %q", first.Header)
	}
	if first.Line != 1 {
		t.Errorf("expected line 1, got %d", first.Line)
	}
	if len(first.Sequence) != 120 {
		t.Errorf("expected 120 residues, got %d", len(first.Sequence))
	}

	if records[1].Line != 4 {
		t.Errorf("expected line 4, got %d", records[1].Line)
	}
}

func TestParseEmptyInput(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestParseHeaders(t *testing.T) {
	parsed, failed, err := ParseHeaders(strings.NewReader(testFasta), uniprot.ParseUniProtKB)
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 0 {
		t.Fatalf("expected no failures, got %v", failed)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 parsed records, got %d", len(parsed))
	}

	expected := uniprot.UniProtKB{
		Database:           uniprot.SwissProt,
		Identifier:         "P18355",
		EntryName:          "YPFU_ECOLI",
		ProteinName:        "Uncharacterized protein in traD-traI intergenic region",
		OrganismName:       "Escherichia coli (strain K12)",
		OrganismIdentifier: "83333",
		ProteinExistence:   uniprot.InferredHomology,
		SequenceVersion:    "1",
	}
	if !cmp.Equal(expected, parsed[1].Record) {
		t.Errorf("unexpected record:\n%s", cmp.Diff(expected, parsed[1].Record))
	}
	if parsed[1].Sequence != "MKRLLITGGRALSGEIAHALQQLGHEVIVTGRNAEALAPLAAEFGAADYL" {
		t.Errorf("unexpected sequence %q", parsed[1].Sequence)
	}
}

// A malformed header is collected as a per-record failure and does not
// abort the scan.
func TestParseHeadersCollectsFailures(t *testing.T) {
	input := ">xx|P02668|CASK_BOVIN Kappa-casein OS=Bos taurus OX=9913 PE=1 SV=1\n" +
		"MMKSFFLVVTILALTLPFLGAQ\n" +
		">sp|P18355|YPFU_ECOLI Uncharacterized protein OS=Escherichia coli OX=83333 PE=3 SV=1\n" +
		"MKRLLITGGRALSGEI\n"

	parsed, failed, err := ParseHeaders(strings.NewReader(input), uniprot.ParseUniProtKB)
	if err != nil {
		t.Fatal(err)
	}

	if len(parsed) != 1 {
		t.Fatalf("expected 1 parsed record, got %d", len(parsed))
	}
	if parsed[0].Record.Identifier != "P18355" {
		t.Errorf("expected P18355, got %q", parsed[0].Record.Identifier)
	}

	if len(failed) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failed))
	}
	if failed[0].Line != 1 {
		t.Errorf("expected failure on line 1, got %d", failed[0].Line)
	}
	if !errors.Is(&failed[0], uniprot.ErrUnknownDatabase) {
		t.Errorf("expected ErrUnknownDatabase, got %v", failed[0].Err)
	}
}

// The isoform parser plugs into the same reader without any format
// knowledge in this package.
func TestParseHeadersIsoform(t *testing.T) {
	input := ">sp|Q4R572-2|1433B_MACFA Isoform Short of 14-3-3 protein beta/alpha OS=Macaca fascicularis OX=9541 GN=YWHAB\n" +
		"MDKSELVQKAKLAEQAERYDDMAA\n"

	parsed, failed, err := ParseHeaders(strings.NewReader(input), uniprot.ParseUniProtKBIsoform)
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 0 {
		t.Fatalf("expected no failures, got %v", failed)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 parsed record, got %d", len(parsed))
	}
	if parsed[0].Record.Isoform != "2" {
		t.Errorf("expected isoform 2, got %q", parsed[0].Record.Isoform)
	}
}
