package uniprot

import "strings"

// UniProtKBIsoform is the parsed form of a UniProtKB isoform FASTA header:
//
//	>db|IsoID|EntryName Isoform IsoformName of ProteinName OS=OrganismName OX=OrganismIdentifier[ GN=GeneName]
//
// The isoform format never carries PE= or SV= fields.
type UniProtKBIsoform struct {
	Database Database `json:"database"`
	// Accession number without the isoform suffix
	Identifier string `json:"identifier"`
	// Numeric isoform suffix, e.g. "2" for Q4R572-2
	Isoform            string  `json:"isoform"`
	EntryName          string  `json:"entry_name"`
	ProteinName        string  `json:"protein_name"`
	OrganismName       string  `json:"organism_name"`
	OrganismIdentifier string  `json:"organism_identifier"`
	GeneName           *string `json:"gene_name,omitempty"`
}

// ParseUniProtKBIsoform parses a UniProtKB isoform FASTA header line.
//
// The grammar matches ParseUniProtKB up to the identifier, which is split
// into accession and isoform suffix, and ends after the optional GN= tag.
// PE= or SV= tags in the input are not an error; they are simply returned
// as unconsumed trailing input, since success does not require the whole
// line to be consumed.
func ParseUniProtKBIsoform(header string) (UniProtKBIsoform, string, error) {
	var rec UniProtKBIsoform

	rest, err := scanMarker(header)
	if err != nil {
		return UniProtKBIsoform{}, rest, err
	}

	dbTag, rest, err := scanPipeToken(rest)
	if err != nil {
		return UniProtKBIsoform{}, rest, err
	}
	if rec.Database, err = DatabaseFromTag(dbTag); err != nil {
		return UniProtKBIsoform{}, rest, errAt(err, rest)
	}

	id, rest, err := scanIdentifier(rest)
	if err != nil {
		return UniProtKBIsoform{}, rest, err
	}
	if rec.Identifier, rec.Isoform, err = splitIsoformID(id); err != nil {
		return UniProtKBIsoform{}, rest, errAt(err, rest)
	}

	if rec.EntryName, rest, err = scanEntryName(rest); err != nil {
		return UniProtKBIsoform{}, rest, err
	}

	rec.ProteinName, rest = scanFreeText(rest)
	rec.ProteinName = strings.TrimSpace(rec.ProteinName)
	if rec.ProteinName == "" {
		return UniProtKBIsoform{}, rest, &ParseError{Err: ErrEmptyField, Token: "protein_name", Rest: rest}
	}

	if rec.OrganismName, rec.OrganismIdentifier, rest, err = scanOrganism(rest); err != nil {
		return UniProtKBIsoform{}, rest, err
	}

	gene, ok, rest, err := scanTagText(rest, "GN=", true)
	if err != nil {
		return UniProtKBIsoform{}, rest, err
	}
	if ok {
		rec.GeneName = &gene
	}

	return rec, rest, nil
}
