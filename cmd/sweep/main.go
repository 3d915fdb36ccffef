// Command sweep drives a running mission server with randomly generated
// missions and cross-checks the server's results against local execution. It
// verifies that every final position stays inside the plateau, that reruns are
// deterministic, and that the report endpoint matches the run report.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/roversim/plateau/rover/engine"
	"github.com/roversim/plateau/rover/formatter"
	"github.com/roversim/plateau/rover/parser"
	"github.com/roversim/plateau/rover/service"
)

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(missionText string) (*service.SessionInfo, error) {
	reqBody, err := json.Marshal(map[string]string{"mission_text": missionText})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session service.SessionInfo
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return &session, nil
}

func (c *Client) Run(rerun bool) (*service.RunResult, error) {
	reqBody, err := json.Marshal(map[string]bool{"rerun": rerun})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/run", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("run mission: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("run failed: %s - %s", resp.Status, string(body))
	}

	var result service.RunResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse run response: %w", err)
	}

	return &result, nil
}

func (c *Client) GetReport() (string, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/report", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("get report: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("report failed: %s - %s", resp.Status, string(body))
	}

	return string(body), nil
}

func (c *Client) DeleteSession() error {
	url := fmt.Sprintf("%s/api/sessions/%s", c.baseURL, c.sessionID)
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete failed: %s", resp.Status)
	}
	return nil
}

// checkMission runs one generated mission against the server and returns the
// list of invariant violations it found.
func checkMission(client *Client, missionText string, verbose bool) []string {
	var failures []string

	mission, err := parser.Parse(missionText)
	if err != nil {
		return []string{fmt.Sprintf("generated mission failed local parse: %v", err)}
	}
	expected := formatter.Report(engine.ExecuteMission(*mission))

	session, err := client.CreateSession(missionText)
	if err != nil {
		return []string{fmt.Sprintf("create session: %v", err)}
	}
	defer func() {
		if err := client.DeleteSession(); err != nil {
			log.Printf("Warning: failed to delete session %s: %v", client.sessionID, err)
		}
	}()

	if verbose {
		log.Printf("Session %s: plateau %dx%d, %d rovers, %d commands",
			session.ID, session.Plateau.MaxX, session.Plateau.MaxY,
			session.RoverCount, session.TotalCommands)
	}

	result, err := client.Run(false)
	if err != nil {
		return []string{fmt.Sprintf("run: %v", err)}
	}

	if result.Report != expected {
		failures = append(failures, fmt.Sprintf("report mismatch: server %q, local %q", result.Report, expected))
	}

	for _, rover := range result.Rovers {
		if !mission.Plateau.Contains(rover.Final.Position) {
			failures = append(failures, fmt.Sprintf("rover %d escaped the plateau: final (%d, %d) outside [0,%d]x[0,%d]",
				rover.Index, rover.Final.Position.X, rover.Final.Position.Y,
				mission.Plateau.MaxX, mission.Plateau.MaxY))
		}
	}

	rerun, err := client.Run(true)
	if err != nil {
		failures = append(failures, fmt.Sprintf("rerun: %v", err))
	} else if rerun.Report != result.Report {
		failures = append(failures, fmt.Sprintf("rerun not deterministic: first %q, second %q", result.Report, rerun.Report))
	}

	reportText, err := client.GetReport()
	if err != nil {
		failures = append(failures, fmt.Sprintf("report endpoint: %v", err))
	} else if strings.TrimRight(reportText, "\n") != expected {
		failures = append(failures, fmt.Sprintf("report endpoint mismatch: got %q, want %q", reportText, expected))
	}

	return failures
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Mission server URL")
	missionCount := flag.Int("missions", 50, "Number of random missions to sweep")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed (default: time-based)")
	maxSize := flag.Int("max-size", 8, "Maximum plateau dimension")
	maxRovers := flag.Int("max-rovers", 4, "Maximum rovers per mission")
	maxCommands := flag.Int("max-commands", 40, "Maximum commands per rover")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between missions in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Sweeping mission server at %s", *serverURL)
	log.Printf("Seed: %d, missions: %d, plateau up to %dx%d, up to %d rovers x %d commands",
		*seed, *missionCount, *maxSize, *maxSize, *maxRovers, *maxCommands)

	client := NewClient(*serverURL)
	gen := NewGenerator(*seed, *maxSize, *maxRovers, *maxCommands)

	failed := 0
	for i := 1; i <= *missionCount; i++ {
		missionText := gen.NextMission()

		failures := checkMission(client, missionText, *verbose)
		if len(failures) > 0 {
			failed++
			log.Printf("❌ Mission %d/%d failed:", i, *missionCount)
			log.Printf("   Text:\n%s", missionText)
			for _, f := range failures {
				log.Printf("   %s", f)
			}
		} else if *verbose {
			log.Printf("✅ Mission %d/%d OK", i, *missionCount)
		}

		if *delayMs > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	if failed > 0 {
		log.Printf("\n❌ %d of %d missions violated invariants (seed %d)", failed, *missionCount, *seed)
		os.Exit(1)
	}
	log.Printf("\n🎉 All %d missions passed (seed %d)", *missionCount, *seed)
}
