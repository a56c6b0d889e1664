// Minimal end-to-end integration test for the Grant Portal API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
)

var baseURL = getenv("API_URL", "http://localhost:8080")

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	checkHealth()

	appID := submitApplication()
	checkListing(appID)

	fmt.Println("✓ all endpoints passed")
}

func checkHealth() {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	doJSON("GET", "/health/db", nil, &resp, http.StatusOK)
	if !resp.Success {
		log.Fatal("health: database not reachable")
	}
}

func submitApplication() string {
	marker := uuid.NewString()
	var resp struct {
		Success       bool   `json:"success"`
		ApplicationID string `json:"applicationId"`
	}
	doJSON("POST", "/applications", map[string]any{
		"firstName":          "Integration",
		"lastName":           "Test",
		"email":              "integration@example.com",
		"phone":              "+10000000000",
		"country":            "Testland",
		"city":               "Testville",
		"projectTitle":       "integration-test " + marker,
		"projectDescription": "submitted by scripts/api/test_api.go",
		"requestedAmount":    "1",
	}, &resp, http.StatusOK)
	if !resp.Success || resp.ApplicationID == "" {
		log.Fatal("submit: missing applicationId")
	}
	return resp.ApplicationID
}

func checkListing(want string) {
	var resp struct {
		Success      bool `json:"success"`
		Applications []struct {
			ApplicationID string `json:"applicationId"`
		} `json:"applications"`
	}
	doJSON("GET", "/applications?status=pending", nil, &resp, http.StatusOK)
	for _, app := range resp.Applications {
		if app.ApplicationID == want {
			return
		}
	}
	log.Fatal("listing: submitted application not found")
}

// ----------------------------- helpers

func doJSON(method, path string, body, out any, want int) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("%s %s encode: %v", method, path, err)
		}
	}
	req, _ := http.NewRequest(method, baseURL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()
	if res.StatusCode != want {
		log.Fatalf("%s %s: want %d got %d", method, path, want, res.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			log.Fatalf("%s %s decode: %v", method, path, err)
		}
	}
}
