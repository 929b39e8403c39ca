package uniprot

import "fmt"

// Database identifies the UniProtKB section an entry comes from.
type Database int

const (
	SwissProt Database = iota + 1
	TrEMBL
)

// DatabaseFromTag maps the two-letter header tag to a Database.
// Only "sp" and "tr" exist; anything else is a parse error.
func DatabaseFromTag(tag string) (Database, error) {
	switch tag {
	case "sp":
		return SwissProt, nil
	case "tr":
		return TrEMBL, nil
	default:
		return 0, &ParseError{Err: ErrUnknownDatabase, Token: tag}
	}
}

// Tag returns the header tag the database was parsed from.
func (d Database) Tag() string {
	switch d {
	case SwissProt:
		return "sp"
	case TrEMBL:
		return "tr"
	}
	return ""
}

func (d Database) String() string {
	switch d {
	case SwissProt:
		return "UniProtKB/Swiss-Prot"
	case TrEMBL:
		return "UniProtKB/TrEMBL"
	}
	return fmt.Sprintf("Database(%d)", int(d))
}

// MarshalJSON serializes the database as its header tag.
func (d Database) MarshalJSON() ([]byte, error) {
	tag := d.Tag()
	if tag == "" {
		return nil, fmt.Errorf("cannot serialize invalid database %d", int(d))
	}
	return []byte(`"` + tag + `"`), nil
}

func (d *Database) UnmarshalJSON(raw []byte) error {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("invalid database value %s", string(raw))
	}
	db, err := DatabaseFromTag(string(raw[1 : len(raw)-1]))
	if err != nil {
		return err
	}
	*d = db
	return nil
}

// ProteinExistence is UniProt's evidence level for the existence of a
// protein, see https://www.uniprot.org/help/protein_existence
type ProteinExistence int

const (
	// Experimental evidence at protein level
	ExperimentalEvidenceProtein ProteinExistence = iota + 1
	// Experimental evidence at transcript level
	ExperimentalEvidenceTranscript
	// Protein inferred from homology
	InferredHomology
	// Protein predicted
	Predicted
	// Protein uncertain
	Uncertain
)

// ProteinExistenceFromCode maps the single-digit PE= code to a
// ProteinExistence. Valid codes are "1" through "5".
func ProteinExistenceFromCode(code string) (ProteinExistence, error) {
	if len(code) == 1 && code[0] >= '1' && code[0] <= '5' {
		return ProteinExistence(code[0] - '0'), nil
	}
	return 0, &ParseError{Err: ErrUnknownProteinExistence, Token: code}
}

// Code returns the PE= code the evidence level was parsed from.
func (pe ProteinExistence) Code() string {
	if pe < ExperimentalEvidenceProtein || pe > Uncertain {
		return ""
	}
	return string(rune('0' + pe))
}

func (pe ProteinExistence) String() string {
	switch pe {
	case ExperimentalEvidenceProtein:
		return "Experimental evidence at protein level"
	case ExperimentalEvidenceTranscript:
		return "Experimental evidence at transcript level"
	case InferredHomology:
		return "Protein inferred from homology"
	case Predicted:
		return "Protein predicted"
	case Uncertain:
		return "Protein uncertain"
	}
	return fmt.Sprintf("ProteinExistence(%d)", int(pe))
}

// MarshalJSON serializes the evidence level as its numeric code.
func (pe ProteinExistence) MarshalJSON() ([]byte, error) {
	code := pe.Code()
	if code == "" {
		return nil, fmt.Errorf("cannot serialize invalid protein existence %d", int(pe))
	}
	return []byte(code), nil
}

func (pe *ProteinExistence) UnmarshalJSON(raw []byte) error {
	parsed, err := ProteinExistenceFromCode(string(raw))
	if err != nil {
		return err
	}
	*pe = parsed
	return nil
}
