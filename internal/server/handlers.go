package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/outlook"
	"github.com/mj1618/outlook-a11y/internal/output"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errNoScenario = errors.New("one of file or scenario is required")

type scenarioArgs struct {
	File     string `json:"file"`
	Scenario string `json:"scenario"`
	Version  int    `json:"version"`
	Roles    string `json:"roles"`
	Text     string `json:"text"`
}

func (a scenarioArgs) filter() model.Filter {
	return model.Filter{Roles: splitList(a.Roles), Text: a.Text}
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// decode unmarshals MCP request arguments into a typed struct.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}

func (s *Server) scenario(args scenarioArgs) (sim.Scenario, error) {
	switch {
	case args.File != "":
		return s.scenarios.Get(args.File)
	case args.Scenario != "":
		return sim.Parse([]byte(args.Scenario))
	default:
		return sim.Scenario{}, errNoScenario
	}
}

// toText serializes a result to YAML for the MCP response.
func toText(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("yaml encode: %w", err)
	}
	return string(b), nil
}

func (s *Server) handleClassify(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[scenarioArgs](request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sc, err := s.scenario(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version := args.Version
	if version == 0 {
		version = outlook.ScenarioVersion(sc)
	}
	text, err := toText(output.ClassifyResult{
		File:     args.File,
		Version:  version,
		Elements: outlook.ClassifyScenario(sc, s.cfg, version, args.filter()),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleReplay(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[scenarioArgs](request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sc, err := s.scenario(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	report, err := outlook.Replay(sc, s.cfg, s.log.With(zap.String("scenario", sc.Name)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := toText(report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !report.Passed {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}
