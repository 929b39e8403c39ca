package models

import (
	"database/sql"

	"github.com/lib/pq"

	"proteindata.org/uniprot-header-api/internal/data"
)

type HeaderModel interface {
	Add(entry data.HeaderEntry) error
	Get(accession string) ([]data.HeaderEntry, error)
	List() ([]data.HeaderEntry, error)
	Counts() (*data.HeaderCounts, error)
}

type LiveHeaderModel struct {
	DB *sql.DB
}

func NewHeaderModel(db *sql.DB) *LiveHeaderModel {
	return &LiveHeaderModel{DB: db}
}

func (m *LiveHeaderModel) Add(entry data.HeaderEntry) error {
	statement := `INSERT INTO headers
	(database, identifier, isoform, entry_name, protein_name, organism_name, organism_identifier, gene_name, protein_existence, sequence_version)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := m.DB.Exec(statement, entry.Database, entry.Identifier, entry.Isoform,
		entry.EntryName, entry.ProteinName, entry.OrganismName, entry.OrganismIdentifier,
		entry.GeneName, entry.ProteinExistence, entry.SequenceVersion)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return data.ErrDuplicateEntry
		}
		return err
	}
	return nil
}

func (m *LiveHeaderModel) Get(accession string) ([]data.HeaderEntry, error) {
	statement := `SELECT
	id, database, identifier, isoform, entry_name, protein_name, organism_name, organism_identifier, gene_name, protein_existence, sequence_version
	FROM headers
	WHERE identifier = $1
	ORDER BY isoform NULLS FIRST`

	rows, err := m.DB.Query(statement, accession)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := parseHeaderEntriesFromDB(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, data.ErrRecordNotFound
	}
	return entries, nil
}

func (m *LiveHeaderModel) List() ([]data.HeaderEntry, error) {
	statement := `SELECT
	id, database, identifier, isoform, entry_name, protein_name, organism_name, organism_identifier, gene_name, protein_existence, sequence_version
	FROM headers
	ORDER BY identifier, isoform NULLS FIRST`

	rows, err := m.DB.Query(statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return parseHeaderEntriesFromDB(rows)
}

func parseHeaderEntriesFromDB(rows *sql.Rows) ([]data.HeaderEntry, error) {
	var entries []data.HeaderEntry

	for rows.Next() {
		var (
			entry     data.HeaderEntry
			isoform   sql.NullString
			geneName  sql.NullString
			existence sql.NullInt64
			version   sql.NullString
		)

		if err := rows.Scan(&entry.ID, &entry.Database, &entry.Identifier, &isoform,
			&entry.EntryName, &entry.ProteinName, &entry.OrganismName, &entry.OrganismIdentifier,
			&geneName, &existence, &version); err != nil {
			return nil, err
		}

		if isoform.Valid {
			entry.Isoform = &isoform.String
		}
		if geneName.Valid {
			entry.GeneName = &geneName.String
		}
		if existence.Valid {
			value := int(existence.Int64)
			entry.ProteinExistence = &value
		}
		if version.Valid {
			entry.SequenceVersion = &version.String
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (m *LiveHeaderModel) Counts() (*data.HeaderCounts, error) {
	stmtTotal := `SELECT COUNT(id) FROM headers`
	stmtCanonical := `SELECT COUNT(id) FROM headers WHERE isoform IS NULL`
	stmtIsoforms := `SELECT COUNT(id) FROM headers WHERE isoform IS NOT NULL`
	stmtSwissProt := `SELECT COUNT(id) FROM headers WHERE database = 'sp'`
	stmtTrEMBL := `SELECT COUNT(id) FROM headers WHERE database = 'tr'`
	var counts data.HeaderCounts

	err := m.DB.QueryRow(stmtTotal).Scan(&counts.Total)
	if err != nil {
		return nil, err
	}

	err = m.DB.QueryRow(stmtCanonical).Scan(&counts.Canonical)
	if err != nil {
		return nil, err
	}

	err = m.DB.QueryRow(stmtIsoforms).Scan(&counts.Isoforms)
	if err != nil {
		return nil, err
	}

	err = m.DB.QueryRow(stmtSwissProt).Scan(&counts.SwissProt)
	if err != nil {
		return nil, err
	}

	err = m.DB.QueryRow(stmtTrEMBL).Scan(&counts.TrEMBL)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
