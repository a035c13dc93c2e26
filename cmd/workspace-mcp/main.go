// Package main implements the MCP server for workspace file inspection.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/workspace-mcp/internal/config"
	"github.com/taigrr/workspace-mcp/internal/filesystem"
	"github.com/taigrr/workspace-mcp/internal/pathfilter"
	"github.com/taigrr/workspace-mcp/internal/search"
)

var (
	fileSystem    *filesystem.Service
	searchService *search.Service
)

func main() {
	cmd := &cobra.Command{
		Use:   "workspace-mcp [workspace-path]",
		Short: "MCP file inspection tools for coding agents",
		Long: `workspace-mcp is a Model Context Protocol (MCP) server that exposes
filesystem tools for a software workspace. Any MCP-compatible coding
agent can list, read, search, and edit files under a project root
while build artifacts, VCS metadata, dependency trees, and caches
stay filtered out of every result.`,
		Example: `workspace-mcp ~/src/myproject`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServer,
	}

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var workspacePath string
	if len(args) > 0 {
		workspacePath = args[0]
	} else {
		var err error
		workspacePath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	filterConfig, err := config.Load(workspacePath)
	if err != nil {
		return err
	}

	// Initialize services
	pf := pathfilter.New(filterConfig)
	fileSystem = filesystem.New(workspacePath, pf)
	searchService = search.New(workspacePath, pf)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "workspace-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
