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

// Package jobserver exposes pagefold's core imposition planner over HTTP.
// It is purely in-memory: no file I/O, no persisted jobs. A request plans
// and maps a job exactly as the CLI's booklet command does internally, and
// returns the resulting model.JobDescriptor as JSON.
package jobserver

import (
	"github.com/labstack/echo/v4"
	"github.com/pagefold/pagefold/pkg/model"
	"go.uber.org/zap"
)

// Server wraps an echo.Echo instance wired with request logging and the
// /jobs route.
type Server struct {
	echo   *echo.Echo
	log    *zap.Logger
	config model.ImposeConfig
}

// New builds a Server. config supplies the signature pair search space
// every submitted job is planned against.
func New(log *zap.Logger, config model.ImposeConfig) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, log: log, config: config}
	e.Use(zapRequestLogger(log))
	e.POST("/jobs", s.createJob)
	return s
}

// Start blocks, serving on addr until the process is interrupted or the
// listener fails.
func (s *Server) Start(addr string) error {
	s.log.Info("jobserver listening", zap.String("addr", addr))
	return s.echo.Start(addr)
}
