package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	aoc "github.com/aestallon/advent-of-code-2023"
	"github.com/aestallon/advent-of-code-2023/internal/config"
	"github.com/aestallon/advent-of-code-2023/internal/source"
	"github.com/aestallon/advent-of-code-2023/pkg/logging"
)

type SolveRequest struct {
	Day int `json:"day"`
	// Exactly one of Lines and InputKey is set.
	Lines    []string `json:"lines"`
	InputKey string   `json:"inputKey"`
	Parts    []int    `json:"parts"`
}

type PartAnswer struct {
	Part   int    `json:"part"`
	Answer int64  `json:"answer"`
	Millis int64  `json:"millis"`
	Error  string `json:"error,omitempty"`
}

type SolveResponse struct {
	Success bool         `json:"success"`
	Answers []PartAnswer `json:"answers"`
	Error   string       `json:"error,omitempty"`
}

var (
	cfg    config.Config
	logger *slog.Logger
)

// inputs returns the loader for stored inputs under key. Replaced in tests.
var inputs = func(key string) source.Loader {
	bq := cfg.Input.BigQuery
	return source.BigQuery{Project: bq.Project, Table: bq.Table, Location: bq.Location, Key: key}
}

func execute(ctx context.Context, req SolveRequest) ([]aoc.Result, error) {
	if _, err := aoc.Lookup(req.Day); err != nil {
		return nil, err
	}
	if (len(req.Lines) == 0) == (req.InputKey == "") {
		return nil, fmt.Errorf("exactly one of lines and inputKey must be given")
	}

	runner := aoc.CreateRunner(nil, cfg.ToOptions(), logger)
	for _, p := range req.Parts {
		if p != 1 && p != 2 {
			return nil, fmt.Errorf("invalid part %d", p)
		}
		runner.Parts = append(runner.Parts, aoc.Part(p))
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		logger.Debug("setting timeout", "timeout", timeout)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lines := req.Lines
	if req.InputKey != "" {
		var err error
		if lines, err = inputs(req.InputKey).Lines(ctx, req.Day); err != nil {
			return nil, fmt.Errorf("loading input: %w", err)
		}
		logger.Info("loaded input", "day", req.Day, "lines", len(lines))
	}
	results, err := runner.SolveLines(ctx, req.Day, lines)
	if err != nil {
		return nil, err
	}
	return results, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solve(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SolveResponse{Error: fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	results, err := execute(r.Context(), req)
	response := SolveResponse{Success: err == nil}
	if err != nil {
		response.Error = err.Error()
	}
	for _, res := range results {
		a := PartAnswer{Part: int(res.Part), Answer: res.Answer, Millis: res.Duration.Milliseconds()}
		if res.Err != nil {
			a.Error = res.Err.Error()
			response.Success = false
		}
		response.Answers = append(response.Answers, a)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("encoding response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	var err error
	if cfg, err = config.Load(os.Getenv("AOC_CONFIG")); err != nil {
		log.Fatalf("config.Load: %v\n", err)
	}
	logCfg := cfg.Logging()
	logCfg.JSON = true
	logger = logging.New(logCfg)

	funcframework.RegisterHTTPFunction("/solve", solve)
	funcframework.RegisterHTTPFunction("/metrics", promhttp.Handler().ServeHTTP)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
