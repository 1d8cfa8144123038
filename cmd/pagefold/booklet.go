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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagefold/pagefold/pkg/model"
	"github.com/pagefold/pagefold/pkg/render"
	"github.com/spf13/cobra"
)

func bookletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booklet srcFile (a5|a6|a7|a8)[l|p] [outFile]",
		Short: "Impose a PDF document onto booklet sheets of the given trim size",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runBooklet,
	}
	cmd.Flags().StringVar(&bindingArg, "binding", "ltr", "binding direction: ltr|rtl")
	cmd.Flags().Float64Var(&marginArg, "margin", model.DefaultPageMargin, "inset applied inside each panel box, in points")
	cmd.Flags().BoolVar(&guidesArg, "guides", false, "draw fold/cut guides on every sheet")
	return cmd
}

func runBooklet(cmd *cobra.Command, args []string) error {
	srcFile := args[0]
	targetSize := strings.ToUpper(args[1])

	binding, err := model.ParseBinding(bindingArg)
	if err != nil {
		return err
	}

	conf, err := loadConfigOrDefault(confPath)
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	cfg := conf.ToImposeConfig()
	if cmd.Flags().Changed("margin") {
		cfg.PageMargin = marginArg
	}
	guides := guidesArg || conf.Guides

	var outFile string
	if len(args) == 3 {
		outFile = args[2]
	} else {
		outFile = nextAvailableOutFile(srcFile, targetSize)
	}

	return render.BookletFile(srcFile, outFile, targetSize, binding, cfg, guides)
}

// nextAvailableOutFile derives a booklet output filename from srcFile and
// targetSize, e.g. "report.pdf" + "A5" -> "report_A5_booklet.pdf", appending
// " (1)", " (2)", ... if a file of that name already exists.
func nextAvailableOutFile(srcFile, targetSize string) string {
	dir := filepath.Dir(srcFile)
	base := strings.TrimSuffix(filepath.Base(srcFile), filepath.Ext(srcFile))
	stem := fmt.Sprintf("%s_%s_booklet", base, targetSize)

	candidate := filepath.Join(dir, stem+".pdf")
	for i := 1; fileExists(candidate); i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d).pdf", stem, i))
	}
	return candidate
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func loadConfigOrDefault(path string) (*model.Configuration, error) {
	if path == "" {
		return model.NewDefaultConfiguration(), nil
	}
	return model.LoadConfiguration(path)
}
