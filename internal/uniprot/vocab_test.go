package uniprot

import (
	"errors"
	"testing"
)

func TestDatabaseRoundTrip(t *testing.T) {
	tests := []struct {
		Tag      string
		Expected Database
	}{
		{"sp", SwissProt},
		{"tr", TrEMBL},
	}

	for _, tt := range tests {
		db, err := DatabaseFromTag(tt.Tag)
		if err != nil {
			t.Fatal(err)
		}
		if db != tt.Expected {
			t.Errorf("DatabaseFromTag(%q): expected %v, got %v", tt.Tag, tt.Expected, db)
		}
		if db.Tag() != tt.Tag {
			t.Errorf("%v.Tag(): expected %q, got %q", db, tt.Tag, db.Tag())
		}
	}
}

func TestDatabaseFromTagUnknown(t *testing.T) {
	for _, tag := range []string{"xx", "SP", "spx", ""} {
		_, err := DatabaseFromTag(tag)
		if !errors.Is(err, ErrUnknownDatabase) {
			t.Errorf("DatabaseFromTag(%q): expected ErrUnknownDatabase, got %v", tag, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("DatabaseFromTag(%q): expected *ParseError, got %T", tag, err)
		}
		if pe.Token != tag {
			t.Errorf("DatabaseFromTag(%q): error carries token %q", tag, pe.Token)
		}
	}
}

func TestProteinExistenceRoundTrip(t *testing.T) {
	tests := []struct {
		Code     string
		Expected ProteinExistence
	}{
		{"1", ExperimentalEvidenceProtein},
		{"2", ExperimentalEvidenceTranscript},
		{"3", InferredHomology},
		{"4", Predicted},
		{"5", Uncertain},
	}

	for _, tt := range tests {
		pe, err := ProteinExistenceFromCode(tt.Code)
		if err != nil {
			t.Fatal(err)
		}
		if pe != tt.Expected {
			t.Errorf("ProteinExistenceFromCode(%q): expected %v, got %v", tt.Code, tt.Expected, pe)
		}
		if pe.Code() != tt.Code {
			t.Errorf("%v.Code(): expected %q, got %q", pe, tt.Code, pe.Code())
		}
	}
}

func TestProteinExistenceFromCodeUnknown(t *testing.T) {
	for _, code := range []string{"0", "6", "12", "x", ""} {
		_, err := ProteinExistenceFromCode(code)
		if !errors.Is(err, ErrUnknownProteinExistence) {
			t.Errorf("ProteinExistenceFromCode(%q): expected ErrUnknownProteinExistence, got %v", code, err)
		}
	}
}

func TestVocabJSON(t *testing.T) {
	raw, err := SwissProt.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"sp"` {
		t.Errorf(`expected "sp", got %s`, raw)
	}

	var db Database
	if err := db.UnmarshalJSON([]byte(`"tr"`)); err != nil {
		t.Fatal(err)
	}
	if db != TrEMBL {
		t.Errorf("expected TrEMBL, got %v", db)
	}

	raw, err = InferredHomology.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "3" {
		t.Errorf("expected 3, got %s", raw)
	}

	var pe ProteinExistence
	if err := pe.UnmarshalJSON([]byte("5")); err != nil {
		t.Fatal(err)
	}
	if pe != Uncertain {
		t.Errorf("expected Uncertain, got %v", pe)
	}

	if err := pe.UnmarshalJSON([]byte("7")); !errors.Is(err, ErrUnknownProteinExistence) {
		t.Errorf("expected ErrUnknownProteinExistence, got %v", err)
	}
}
