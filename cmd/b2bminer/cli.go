package main

import (
	"context"
	"io"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/Raavan18/b2b-data-miner/gin"
	"github.com/Raavan18/b2b-data-miner/pipeline"
	"github.com/Raavan18/b2b-data-miner/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Reports miner.ReportService
	Miner   *pipeline.Pipeline
	Server  *gin.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mine   MineCmd   `cmd:"" help:"Mine contacts for a company domain"`
	Runs   RunsCmd   `cmd:"" help:"List saved mining runs"`
	Show   ShowCmd   `cmd:"" help:"Show a saved run's report"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved run"`
	Serve  ServeCmd  `cmd:"" help:"Serve the mining API over HTTP"`
}

// MineCmd is the "mine" subcommand.
type MineCmd struct {
	Domain      string `arg:"" help:"Company domain, such as acmecorp.com"`
	CompanyName string `arg:"" optional:"" help:"Company name, improves query targeting"`
	Fetcher     string `short:"f" enum:"zenrows,http,rod" default:"zenrows" help:"Page fetcher backend (zenrows, http or rod)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
	MaxFetch    int    `name:"max-fetch" default:"0" help:"Max pages to fetch, 0 for no bound"`
	SeedPaths   bool   `name:"seed-paths" help:"Also fetch common contact paths when search finds nothing"`
	Out         string `short:"o" help:"Directory to write the report JSON into"`
	NoSave      bool   `name:"no-save" help:"Do not record the run in the database"`
	Verbose     bool   `short:"v" help:"Log fetch and discovery activity to stderr"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Domain string `help:"Only show runs for this domain"`
	Limit  int    `default:"20" help:"Max runs to show"`
	Offset int    `help:"Skip this many runs"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Run ID"`
	JSON bool   `help:"Dump the full report as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Config string `short:"C" type:"existingfile" help:"YAML config file"`
	Addr   string `default:":8080" help:"Bind address"`
}
