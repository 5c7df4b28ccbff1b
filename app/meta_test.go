package app

import (
	"encoding/json"
	"testing"
)

func TestGenerateParsesServiceInfo(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "text2sqlrag-api-go-512m-prod")

	result := NewMetaGenerator().Generate("")

	var meta map[string]interface{}
	if err := json.Unmarshal([]byte(result), &meta); err != nil {
		t.Fatalf("Generate() is not valid JSON: %v", err)
	}

	service, ok := meta["service"].(map[string]interface{})
	if !ok {
		t.Fatal("service field not found or not an object")
	}

	want := map[string]string{
		"business":  "text2sqlrag",
		"component": "api",
		"runtime":   "go",
		"resource":  "512m",
		"instance":  "prod",
	}
	for field, value := range want {
		if service[field] != value {
			t.Errorf("service.%s = %v, want %q", field, service[field], value)
		}
	}
}

func TestGenerateShortFunctionName(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "text2sqlrag")

	var meta map[string]interface{}
	if err := json.Unmarshal([]byte(NewMetaGenerator().Generate("")), &meta); err != nil {
		t.Fatalf("Generate() is not valid JSON: %v", err)
	}

	service := meta["service"].(map[string]interface{})
	if service["business"] != "text2sqlrag" {
		t.Errorf("service.business = %v, want text2sqlrag", service["business"])
	}
	if service["component"] != "" {
		t.Errorf("service.component = %v, want empty for short name", service["component"])
	}
}

func TestGenerateIncludesBuildInfo(t *testing.T) {
	result := NewMetaGenerator().Generate("")

	var meta map[string]interface{}
	if err := json.Unmarshal([]byte(result), &meta); err != nil {
		t.Fatalf("Generate() is not valid JSON: %v", err)
	}

	build, ok := meta["build"].(map[string]interface{})
	if !ok {
		t.Fatal("build field not found or not an object")
	}
	if build["module"] == "" {
		t.Error("build.module should not be empty under go test")
	}
}

func TestGenerateMergesExtraWithoutOverwrite(t *testing.T) {
	extra := `{"models":{"embedding":"bge-small-en"},"service":"must-not-win"}`

	var meta map[string]interface{}
	if err := json.Unmarshal([]byte(NewMetaGenerator().Generate(extra)), &meta); err != nil {
		t.Fatalf("Generate() is not valid JSON: %v", err)
	}

	models, ok := meta["models"].(map[string]interface{})
	if !ok {
		t.Fatal("merged models field not found")
	}
	if models["embedding"] != "bge-small-en" {
		t.Errorf("models.embedding = %v, want bge-small-en", models["embedding"])
	}
	if _, clobbered := meta["service"].(string); clobbered {
		t.Error("extra overwrote the built-in service section")
	}
}

func TestGenerateIgnoresInvalidExtra(t *testing.T) {
	var meta map[string]interface{}
	if err := json.Unmarshal([]byte(NewMetaGenerator().Generate("{not json")), &meta); err != nil {
		t.Fatalf("Generate() is not valid JSON: %v", err)
	}
	if _, ok := meta["build"]; !ok {
		t.Error("build section missing when extra is invalid")
	}
}
