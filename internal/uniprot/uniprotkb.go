// Package uniprot parses the header lines of UniProtKB FASTA entries, in
// both the canonical and the isoform variant, into typed records.
//
// The parsers are pure functions over a single header line: no I/O, no
// logging, no shared state. Iterating a FASTA file and deciding what to do
// with malformed headers is the caller's job; see the fasta package.
//
// Format reference: https://www.uniprot.org/help/fasta-headers
package uniprot

import (
	"errors"
	"strings"
)

// UniProtKB is the parsed form of a canonical UniProtKB FASTA header:
//
//	>db|UniqueIdentifier|EntryName ProteinName OS=OrganismName OX=OrganismIdentifier [GN=GeneName ]PE=ProteinExistence SV=SequenceVersion
type UniProtKB struct {
	Database Database `json:"database"`
	// Accession number, see https://www.uniprot.org/help/accession_numbers
	Identifier string `json:"identifier"`
	// Entry name, see https://www.uniprot.org/help/entry_name
	EntryName   string `json:"entry_name"`
	ProteinName string `json:"protein_name"`
	// Organism name, with any strain information kept verbatim
	OrganismName string `json:"organism_name"`
	// NCBI taxonomy identifier, kept as text
	OrganismIdentifier string `json:"organism_identifier"`
	// Gene name; nil when the GN= tag is absent, which is distinct from
	// the tag being present with an empty value
	GeneName         *string          `json:"gene_name,omitempty"`
	ProteinExistence ProteinExistence `json:"protein_existence"`
	// Sequence version, kept as text
	SequenceVersion string `json:"sequence_version"`
}

// ParseFunc is the shape shared by both header parsers: consume one header
// line, return the record and any unconsumed trailing input. A generic
// FASTA reader picks the parser for its record type without knowing the
// format internals.
type ParseFunc[R any] func(header string) (R, string, error)

// ParseUniProtKB parses a canonical UniProtKB FASTA header line.
//
// The grammar is consumed strictly left to right with no backtracking: the
// first rule that cannot be satisfied fails the whole parse with a
// *ParseError and no partial record is ever returned. Unconsumed trailing
// input after the sequence version (normally nothing, or a newline) is
// returned alongside the record and is not an error.
func ParseUniProtKB(header string) (UniProtKB, string, error) {
	var rec UniProtKB

	rest, err := scanMarker(header)
	if err != nil {
		return UniProtKB{}, rest, err
	}

	dbTag, rest, err := scanPipeToken(rest)
	if err != nil {
		return UniProtKB{}, rest, err
	}
	if rec.Database, err = DatabaseFromTag(dbTag); err != nil {
		return UniProtKB{}, rest, errAt(err, rest)
	}

	if rec.Identifier, rest, err = scanIdentifier(rest); err != nil {
		return UniProtKB{}, rest, err
	}

	if rec.EntryName, rest, err = scanEntryName(rest); err != nil {
		return UniProtKB{}, rest, err
	}

	rec.ProteinName, rest = scanFreeText(rest)
	rec.ProteinName = strings.TrimSpace(rec.ProteinName)
	if rec.ProteinName == "" {
		return UniProtKB{}, rest, &ParseError{Err: ErrEmptyField, Token: "protein_name", Rest: rest}
	}

	if rec.OrganismName, rec.OrganismIdentifier, rest, err = scanOrganism(rest); err != nil {
		return UniProtKB{}, rest, err
	}

	gene, ok, rest, err := scanTagText(rest, "GN=", true)
	if err != nil {
		return UniProtKB{}, rest, err
	}
	if ok {
		rec.GeneName = &gene
	}

	peCode, rest, err := scanTagDigits(rest, "PE=")
	if err != nil {
		return UniProtKB{}, rest, err
	}
	if rec.ProteinExistence, err = ProteinExistenceFromCode(peCode); err != nil {
		return UniProtKB{}, rest, errAt(err, rest)
	}

	if rec.SequenceVersion, rest, err = scanTagDigits(rest, "SV="); err != nil {
		return UniProtKB{}, rest, err
	}
	if rec.SequenceVersion == "" {
		return UniProtKB{}, rest, &ParseError{Err: ErrEmptyField, Token: "sequence_version", Rest: rest}
	}

	return rec, rest, nil
}

// scanIdentifier consumes the pipe-delimited identifier field. The
// identifier may not contain whitespace; a space before the '|' means the
// field boundary is not where the format requires it.
func scanIdentifier(in string) (string, string, error) {
	id, rest, err := scanPipeToken(in)
	if err != nil {
		return "", rest, err
	}
	if id == "" {
		return "", rest, &ParseError{Err: ErrEmptyField, Token: "identifier", Rest: in}
	}
	if strings.ContainsAny(id, " \t") {
		return "", rest, &ParseError{Err: ErrMissingDelimiter, Token: "|", Rest: in}
	}
	return id, rest, nil
}

func scanEntryName(in string) (string, string, error) {
	name, rest, err := scanSpaceToken(in)
	if err != nil {
		return "", rest, err
	}
	if name == "" {
		return "", rest, &ParseError{Err: ErrEmptyField, Token: "entry_name", Rest: in}
	}
	return name, rest, nil
}

// scanOrganism handles the mandatory OS= and OX= pair shared by both
// header formats.
func scanOrganism(in string) (name, id, rest string, err error) {
	name, _, rest, err = scanTagText(in, "OS=", false)
	if err != nil {
		return "", "", rest, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", rest, &ParseError{Err: ErrEmptyField, Token: "organism_name", Rest: rest}
	}

	id, rest, err = scanTagDigits(rest, "OX=")
	if err != nil {
		return "", "", rest, err
	}
	if id == "" {
		return "", "", rest, &ParseError{Err: ErrEmptyField, Token: "organism_identifier", Rest: rest}
	}
	return name, id, rest, nil
}

// errAt fills in the unconsumed remainder on errors coming from the
// vocabulary lookups, which do not know their position in the line.
func errAt(err error, rest string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Rest == "" {
		pe.Rest = rest
	}
	return err
}

// LooksLikeIsoform reports whether the identifier field of a header line
// carries an isoform suffix, so batch callers can route the line to the
// right parser. It looks no further than the second '|' and does not
// validate the rest of the header.
func LooksLikeIsoform(header string) bool {
	rest, err := scanMarker(header)
	if err != nil {
		return false
	}
	if _, rest, err = scanPipeToken(rest); err != nil {
		return false
	}
	id, _, err := scanPipeToken(rest)
	if err != nil {
		return false
	}
	_, _, err = splitIsoformID(id)
	return err == nil
}
