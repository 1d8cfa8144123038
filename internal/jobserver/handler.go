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

package jobserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pagefold/pagefold/pkg/fold"
	"github.com/pagefold/pagefold/pkg/model"
)

// jobRequest is the POST /jobs request body.
type jobRequest struct {
	PageCount int    `json:"page_count"`
	Level     int    `json:"level"`
	Binding   string `json:"binding"`
}

// jobError is the response body for a rejected or failed job.
type jobError struct {
	Error string `json:"error"`
}

func (s *Server) createJob(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jobError{Error: err.Error()})
	}

	binding, err := model.ParseBinding(req.Binding)
	if err != nil {
		return c.JSON(http.StatusBadRequest, jobError{Error: err.Error()})
	}

	job, err := fold.Impose(req.PageCount, model.Level(req.Level), binding, s.config)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, jobError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, job)
}
