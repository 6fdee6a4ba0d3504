package controllers

import (
	"net/http"

	"bloghub/app/services"
)

// TestingController exposes the data reset hook
type TestingController struct {
	testingService *services.TestingService
}

// NewTestingController creates a new TestingController
func NewTestingController(testingService *services.TestingService) *TestingController {
	return &TestingController{testingService: testingService}
}

// ClearAll wipes every collection
func (tc *TestingController) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := tc.testingService.ClearAll(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Home answers the root path with a plain greeting
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("bloghub is up"))
}
