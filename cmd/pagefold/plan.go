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
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/pagefold/pagefold/pkg/fold"
	"github.com/pagefold/pagefold/pkg/model"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan (srcFile|pageCount)",
		Short: "Preview the signature plan pagefold would choose, without writing a PDF",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlan,
	}
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	n, err := resolvePageCount(args[0])
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

	best, candidates, err := fold.ChooseBestPlan(n, cfg.Pairs)
	if err != nil {
		return err
	}

	printPlanTable(candidates)
	fmt.Printf("\nchosen: %s\n", best.String())
	return nil
}

func resolvePageCount(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	return api.PageCountFile(arg)
}

// printPlanTable renders one row per candidate plan, column-aligned with
// go-runewidth so the pair/total/blanks columns line up even though "pair"
// strings vary in length.
func printPlanTable(plans []model.Plan) {
	headers := []string{"pair", "total pages", "blanks", "sequence"}
	rows := make([][]string, len(plans))
	for i, p := range plans {
		rows[i] = []string{
			fmt.Sprintf("%d/%d", p.Pair.Large, p.Pair.Small),
			strconv.Itoa(p.TotalPages),
			strconv.Itoa(p.Blanks),
			fmt.Sprintf("%v", p.Sequence),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	printRow(headers, widths)
	for _, row := range rows {
		printRow(row, widths)
	}
}

func printRow(cells []string, widths []int) {
	line := ""
	for i, cell := range cells {
		line += runewidth.FillRight(cell, widths[i]+2)
	}
	fmt.Println(line)
}
