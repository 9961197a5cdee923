package main

import (
	"encoding/json"
	"fmt"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/engine"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/schedule"
	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/scoring"
)

// Response envelopes for --json output.

type analyzeResponse struct {
	Success    bool             `json:"success"`
	Strategy   scoring.Strategy `json:"strategy_used"`
	TotalTasks int              `json:"total_tasks"`
	Tasks      []scoring.Scored `json:"tasks"`
	Warnings   []string         `json:"warnings,omitempty"`
}

type suggestResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Suggestions []engine.Suggestion `json:"suggestions"`
	Warnings    []string            `json:"warnings,omitempty"`
}

type planResponse struct {
	Success      bool            `json:"success"`
	TotalHours   int             `json:"total_hours"`
	CriticalPath []int           `json:"critical_path"`
	Order        []int           `json:"order"`
	Waves        []schedule.Wave `json:"waves"`
	Warnings     []string        `json:"warnings,omitempty"`
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
