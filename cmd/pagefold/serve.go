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
	"github.com/pagefold/pagefold/internal/jobserver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP job planning service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	conf, err := loadConfigOrDefault(confPath)
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	zlog, err := newZapLogger()
	if err != nil {
		return err
	}
	defer func() { _ = zlog.Sync() }()

	return jobserver.New(zlog, conf.ToImposeConfig()).Start(serveAddr)
}

func newZapLogger() (*zap.Logger, error) {
	if verbose || veryVerbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
