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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"proteindata.org/uniprot-header-api/internal/data"
	"proteindata.org/uniprot-header-api/internal/fasta"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <fasta file>",
	Short: "Extract header metadata from a FASTA file",
	Long: `Extract header metadata from a FASTA file.

Prints one tab-separated line per parseable header. Headers the parser
rejects are reported on stderr and skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extractHeaders(args[0])
	},
}

func extractHeaders(fastaFileName string) {
	fastaFile, err := os.Open(fastaFileName)
	if err != nil {
		panic(fmt.Errorf("error opening FASTA file: %s", err))
	}
	defer fastaFile.Close()

	records, err := fasta.Parse(fastaFile)
	if err != nil {
		panic(fmt.Errorf("error reading FASTA file: %s", err))
	}

	for _, record := range records {
		entry, _, err := data.EntryFromHeader(record.Header)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %s\n", record.Line, err)
			continue
		}
		fmt.Printf("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Database, entry.Identifier, orEmpty(entry.Isoform), entry.EntryName,
			entry.ProteinName, entry.OrganismName, entry.OrganismIdentifier,
			orEmpty(entry.GeneName), orEmpty(entry.SequenceVersion))
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
