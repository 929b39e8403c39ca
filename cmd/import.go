/*
Copyright © 2024 The uniprot-header-api authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"proteindata.org/uniprot-header-api/internal/data"
	"proteindata.org/uniprot-header-api/internal/fasta"
	"proteindata.org/uniprot-header-api/internal/models"
)

var skipDuplicates bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <fasta file>",
	Short: "Import the headers of a FASTA file into the database",
	Long: `Import the headers of a FASTA file into the database.

Every parseable header is flattened into a row of the headers table.
Headers the parser rejects are reported on stderr and skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		fastaFileName := args[0]

		fastaFile, err := os.Open(fastaFileName)
		if err != nil {
			panic(fmt.Errorf("error opening FASTA file: %s", err))
		}
		defer fastaFile.Close()

		records, err := fasta.Parse(fastaFile)
		if err != nil {
			panic(fmt.Errorf("error reading FASTA file: %s", err))
		}

		db, err := InitDb()
		if err != nil {
			panic(fmt.Errorf("error opening database: %s", err))
		}

		m := models.NewModels(db)

		imported := 0
		skipped := 0
		for _, record := range records {
			entry, _, err := data.EntryFromHeader(record.Header)
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %s\n", record.Line, err)
				skipped++
				continue
			}

			err = m.Headers.Add(entry)
			if errors.Is(err, data.ErrDuplicateEntry) && skipDuplicates {
				skipped++
				continue
			}
			if err != nil {
				panic(fmt.Errorf("error writing entry %s to database: %s", entry.Identifier, err))
			}
			imported++
		}

		fmt.Printf("imported %d headers, skipped %d\n", imported, skipped)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&skipDuplicates, "skip-duplicates", "s", false, "Skip headers already present in the database")
}
