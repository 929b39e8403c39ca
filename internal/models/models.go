package models

import "database/sql"

type Models struct {
	Headers HeaderModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Headers: NewHeaderModel(db),
	}
}

func NewMockModels() Models {
	return Models{
		Headers: NewMockHeaderModel(),
	}
}
