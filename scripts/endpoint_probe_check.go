// scripts/endpoint_probe_check.go
//
// One-shot readiness check against a recipe's serving endpoint. Unlike
// 'balbis run benchmark', which polls until a model appears, this hits
// GET /models exactly once and dumps the raw payload. Useful when a
// server answers but the launcher keeps retrying.
//
// Usage:
//
//	go run scripts/endpoint_probe_check.go --recipe demo
//	go run scripts/endpoint_probe_check.go --url http://localhost:8080/v1
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/recipe"
)

type servedModel struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Name  string `json:"name"`
}

type modelsResponse struct {
	Data []servedModel `json:"data"`
}

func main() {
	configPath := flag.String("config", appconfig.DefaultConfigPath, "Path to config JSON")
	recipeArg := flag.String("recipe", "", "Recipe path or bare name")
	overrideURL := flag.String("url", "", "Override the endpoint base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP timeout")
	flag.Parse()

	baseURL, err := resolveTarget(*configPath, *recipeArg, *overrideURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Target endpoint: %s\n\n", baseURL)

	client := &http.Client{Timeout: *timeout}
	if err := checkModels(client, baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "models check failed: %v\n", err)
		os.Exit(1)
	}
}

func resolveTarget(configPath, recipeArg, overrideURL string) (string, error) {
	if overrideURL != "" {
		return strings.TrimRight(overrideURL, "/"), nil
	}
	if recipeArg == "" {
		return "", fmt.Errorf("pass --recipe or --url")
	}

	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return "", err
	}

	path, err := recipe.Resolve(cfg.RecipesDirPath(), recipeArg)
	if err != nil {
		return "", err
	}
	rec, err := recipe.Load(path)
	if err != nil {
		return "", err
	}
	return rec.BaseURL(), nil
}

func checkModels(client *http.Client, baseURL string) error {
	fmt.Println("== /models ==")
	req, err := http.NewRequest(http.MethodGet, baseURL+"/models", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Println("Raw:")
	fmt.Println(indentJSON(body))

	var parsed modelsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Printf("Parse: %v\n", err)
		return nil
	}

	fmt.Printf("Parsed models: %d\n", len(parsed.Data))
	for _, m := range parsed.Data {
		fmt.Printf("  - %s\n", modelDisplayName(m))
	}
	if len(parsed.Data) > 0 {
		if name := modelDisplayName(parsed.Data[0]); name != "" {
			fmt.Printf("Launcher would resolve: %s\n", name)
		} else {
			fmt.Println("Launcher would keep retrying: first entry has no usable name")
		}
	} else {
		fmt.Println("Launcher would keep retrying: model list is empty")
	}
	return nil
}

// modelDisplayName mirrors the launcher's field priority: id, then
// model, then name, whitespace trimmed.
func modelDisplayName(m servedModel) string {
	if v := strings.TrimSpace(m.ID); v != "" {
		return v
	}
	if v := strings.TrimSpace(m.Model); v != "" {
		return v
	}
	return strings.TrimSpace(m.Name)
}

func indentJSON(body []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}
