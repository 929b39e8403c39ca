package models

import (
	"proteindata.org/uniprot-header-api/internal/data"
)

// MockHeaderModel is an in-memory stand-in for handler tests.
type MockHeaderModel struct {
	entries []data.HeaderEntry
	nextID  int64
}

func NewMockHeaderModel() *MockHeaderModel {
	return &MockHeaderModel{nextID: 1}
}

func (m *MockHeaderModel) Add(entry data.HeaderEntry) error {
	for _, existing := range m.entries {
		if existing.Identifier == entry.Identifier && equalStringPtr(existing.Isoform, entry.Isoform) {
			return data.ErrDuplicateEntry
		}
	}
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockHeaderModel) Get(accession string) ([]data.HeaderEntry, error) {
	var matches []data.HeaderEntry
	for _, entry := range m.entries {
		if entry.Identifier == accession {
			matches = append(matches, entry)
		}
	}
	if len(matches) == 0 {
		return nil, data.ErrRecordNotFound
	}
	return matches, nil
}

func (m *MockHeaderModel) List() ([]data.HeaderEntry, error) {
	entries := make([]data.HeaderEntry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

func (m *MockHeaderModel) Counts() (*data.HeaderCounts, error) {
	var counts data.HeaderCounts
	counts.Total = len(m.entries)
	for _, entry := range m.entries {
		if entry.Isoform == nil {
			counts.Canonical++
		} else {
			counts.Isoforms++
		}
		switch entry.Database {
		case "sp":
			counts.SwissProt++
		case "tr":
			counts.TrEMBL++
		}
	}
	return &counts, nil
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
