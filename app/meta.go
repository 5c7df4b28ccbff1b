package app

import (
	"encoding/json"
	"os"
	"runtime/debug"
	"strings"
)

// ServiceInfo is parsed from AWS_LAMBDA_FUNCTION_NAME.
// Naming scheme: business-component-runtime-resource-instance
type ServiceInfo struct {
	Business  string `json:"business"`
	Component string `json:"component"`
	Runtime   string `json:"runtime"`
	Resource  string `json:"resource"`
	Instance  string `json:"instance"`
}

// BuildInfo comes from the module data embedded in the binary.
type BuildInfo struct {
	Module  string `json:"module"`
	Version string `json:"version"`
	Built   string `json:"built"`
}

type Meta struct {
	Service ServiceInfo `json:"service"`
	Build   BuildInfo   `json:"build"`
}

type MetaGenerator struct{}

func NewMetaGenerator() *MetaGenerator {
	return &MetaGenerator{}
}

func parseServiceInfo() ServiceInfo {
	funcName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	parts := strings.SplitN(funcName, "-", 5)

	info := ServiceInfo{}
	if len(parts) > 0 {
		info.Business = parts[0]
	}
	if len(parts) > 1 {
		info.Component = parts[1]
	}
	if len(parts) > 2 {
		info.Runtime = parts[2]
	}
	if len(parts) > 3 {
		info.Resource = parts[3]
	}
	if len(parts) > 4 {
		info.Instance = parts[4]
	}

	return info
}

func parseBuildInfo() BuildInfo {
	info := BuildInfo{}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Module = buildInfo.Main.Path
	info.Version = buildInfo.Main.Version

	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.time" {
			info.Built = setting.Value
			break
		}
	}

	return info
}

// Generate renders the meta document. Fields of extra (a JSON object)
// are merged at the top level without overwriting built-in sections;
// invalid extra is ignored.
func (g *MetaGenerator) Generate(extra string) string {
	meta := Meta{
		Service: parseServiceInfo(),
		Build:   parseBuildInfo(),
	}

	result, err := json.Marshal(meta)
	if err != nil {
		return "{}"
	}

	if extra == "" {
		return string(result)
	}

	var baseMap map[string]interface{}
	if err := json.Unmarshal(result, &baseMap); err != nil {
		return string(result)
	}

	var extraMap map[string]interface{}
	if err := json.Unmarshal([]byte(extra), &extraMap); err != nil {
		return string(result)
	}

	for k, v := range extraMap {
		if _, exists := baseMap[k]; !exists {
			baseMap[k] = v
		}
	}

	merged, err := json.Marshal(baseMap)
	if err != nil {
		return string(result)
	}

	return string(merged)
}
