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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"proteindata.org/uniprot-header-api/internal/web"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the header parsing API server",
	Long: `Run the header parsing API server.

The server exposes the parse, extract, stats and headers endpoints
under /api/v1.`,
	Run: func(cmd *cobra.Command, args []string) {
		web.Run(viper.GetBool("debug"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
