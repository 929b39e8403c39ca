package data

import (
	"proteindata.org/uniprot-header-api/internal/uniprot"
)

// HeaderEntry is the flattened row form shared by both header record
// types. Isoform, ProteinExistence and SequenceVersion are nil for the
// format that does not carry them.
type HeaderEntry struct {
	ID                 int64   `json:"id,omitempty"`
	Database           string  `json:"database"`
	Identifier         string  `json:"identifier"`
	Isoform            *string `json:"isoform,omitempty"`
	EntryName          string  `json:"entry_name"`
	ProteinName        string  `json:"protein_name"`
	OrganismName       string  `json:"organism_name"`
	OrganismIdentifier string  `json:"organism_identifier"`
	GeneName           *string `json:"gene_name,omitempty"`
	ProteinExistence   *int    `json:"protein_existence,omitempty"`
	SequenceVersion    *string `json:"sequence_version,omitempty"`
}

// EntryFromUniProtKB flattens a canonical header record into its row form.
func EntryFromUniProtKB(rec uniprot.UniProtKB) HeaderEntry {
	existence := int(rec.ProteinExistence)
	version := rec.SequenceVersion
	return HeaderEntry{
		Database:           rec.Database.Tag(),
		Identifier:         rec.Identifier,
		EntryName:          rec.EntryName,
		ProteinName:        rec.ProteinName,
		OrganismName:       rec.OrganismName,
		OrganismIdentifier: rec.OrganismIdentifier,
		GeneName:           rec.GeneName,
		ProteinExistence:   &existence,
		SequenceVersion:    &version,
	}
}

// EntryFromIsoform flattens an isoform header record into its row form.
func EntryFromIsoform(rec uniprot.UniProtKBIsoform) HeaderEntry {
	isoform := rec.Isoform
	return HeaderEntry{
		Database:           rec.Database.Tag(),
		Identifier:         rec.Identifier,
		Isoform:            &isoform,
		EntryName:          rec.EntryName,
		ProteinName:        rec.ProteinName,
		OrganismName:       rec.OrganismName,
		OrganismIdentifier: rec.OrganismIdentifier,
		GeneName:           rec.GeneName,
	}
}

// EntryFromHeader routes a header line to the right parser based on the
// identifier field and flattens the result. The leftover input is returned
// so callers can decide whether trailing content matters to them.
func EntryFromHeader(header string) (HeaderEntry, string, error) {
	if uniprot.LooksLikeIsoform(header) {
		rec, rest, err := uniprot.ParseUniProtKBIsoform(header)
		if err != nil {
			return HeaderEntry{}, rest, err
		}
		return EntryFromIsoform(rec), rest, nil
	}
	rec, rest, err := uniprot.ParseUniProtKB(header)
	if err != nil {
		return HeaderEntry{}, rest, err
	}
	return EntryFromUniProtKB(rec), rest, nil
}

// HeaderCounts summarizes what has been ingested so far.
type HeaderCounts struct {
	Total     int `json:"total"`
	Canonical int `json:"canonical"`
	Isoforms  int `json:"isoforms"`
	SwissProt int `json:"swissprot"`
	TrEMBL    int `json:"trembl"`
}
