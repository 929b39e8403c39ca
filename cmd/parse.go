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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"proteindata.org/uniprot-header-api/internal/data"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <header>",
	Short: "Parse a single UniProtKB FASTA header",
	Long: `Parse a single UniProtKB FASTA header and print the record as JSON.

Canonical and isoform headers are detected from the identifier field.
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		header := args[0]

		entry, leftover, err := data.EntryFromHeader(header)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot parse header: %s\n", err)
			os.Exit(2)
		}

		if leftover != "" && strings.TrimSpace(leftover) != "" {
			fmt.Fprintf(os.Stderr, "warning: unconsumed trailing input %q\n", leftover)
		}

		buf := new(bytes.Buffer)
		encoder := json.NewEncoder(buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "    ")
		encoder.Encode(entry)

		fmt.Printf("%s", buf.String())
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
