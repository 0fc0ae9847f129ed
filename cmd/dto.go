package cmd

import "github.com/josephgoksu/TodoWing/models"

// taskResponse is the --json output of the mutating commands.
type taskResponse struct {
	Status string      `json:"status"`
	Task   models.Task `json:"task"`
}

type backupResponse struct {
	Status      string `json:"status"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Tasks       int    `json:"tasks"`
}

type exportResponse struct {
	Status string `json:"status"`
	Format string `json:"format"`
	Output string `json:"output"`
	Tasks  int    `json:"tasks"`
}
