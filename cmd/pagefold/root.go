/*
Copyright 2024 The pdfcpu Authors.

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

package main

import (
	"github.com/pagefold/pagefold/pkg/log"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	veryVerbose bool
	quiet       bool
	confPath    string
	bindingArg  string
	marginArg   float64
	guidesArg   bool
)

var rootCmd = &cobra.Command{
	Use:   "pagefold",
	Short: "Impose PDF pages onto saddle-stitch booklet sheets",
	Long: `pagefold arranges the pages of a PDF document onto larger sheets for
saddle-stitch booklet printing.

It supports:
- Signature planning across configurable large/small signature pairs
- One to four sheet folds (A5 through A8 trim sizes)
- Left-to-right and right-to-left binding
- A dry-run preview of the signature plan without touching a PDF`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "turn on logging")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable output")
	rootCmd.PersistentFlags().StringVarP(&confPath, "conf", "c", "", "path to a pagefold.yml configuration file")

	rootCmd.AddCommand(bookletCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(serveCmd())
}

func initConfig() {
	if quiet {
		return
	}
	log.SetDefaultInfoLogger()
	log.SetDefaultStatsLogger()
	if verbose || veryVerbose {
		log.SetDefaultDebugLogger()
	}
}
