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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pagefold/pagefold/pkg/model"
	"go.uber.org/zap"
)

func testServer() *Server {
	cfg := model.ImposeConfig{Pairs: []model.SignaturePair{{Large: 32, Small: 28}}}
	return New(zap.NewNop(), cfg)
}

func TestCreateJobOK(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"page_count":100,"level":2,"binding":"ltr"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestCreateJobInvalidBinding(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"page_count":100,"level":2,"binding":"sideways"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateJobEmptyInput(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"page_count":0,"level":1,"binding":"ltr"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
