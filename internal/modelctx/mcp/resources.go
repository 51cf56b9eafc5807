package mcp

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/internal/modelctx/dataset"
)

const (
	URITrainingData   = "mcp://modelctx/training-data"
	URIConfig         = "mcp://modelctx/config"
	URIPromptTemplate = "mcp://modelctx/prompt-template"
)

// resourceFiles maps resource URIs to their backing files in the data
// dir.
var resourceFiles = map[string]string{
	URITrainingData:   dataset.TrainingDataFile,
	URIConfig:         dataset.ConfigFile,
	URIPromptTemplate: dataset.PromptTemplateFile,
}

func (s *Service) dataPath(file string) string {
	return filepath.Join(s.conf.DataDir, file)
}

func (s *Service) registerResources() {
	registry := s.server.Resources()

	registry.Register(mcp.Resource{
		URI:         URITrainingData,
		Name:        "Training Data",
		Description: "Fine-tuning training dataset",
		MimeType:    "application/json",
	}, s.readTrainingData)

	registry.Register(mcp.Resource{
		URI:         URIConfig,
		Name:        "Model Configuration",
		Description: "Model configuration",
		MimeType:    "application/json",
	}, s.readConfig)

	registry.Register(mcp.Resource{
		URI:         URIPromptTemplate,
		Name:        "Prompt Template",
		Description: "Custom prompt template for fine-tuning",
		MimeType:    "text/plain",
	}, s.readPromptTemplate)
}

// readTrainingData re-encodes the JSONL file as one pretty-printed JSON
// array so readers get a single document.
func (s *Service) readTrainingData() (string, error) {
	f, err := os.Open(s.dataPath(dataset.TrainingDataFile))
	if err != nil {
		return "", errors.ResourceUnavailable("Training data", err)
	}
	defer f.Close()

	examples := make([]interface{}, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var example interface{}
		if err := json.Unmarshal(line, &example); err != nil {
			return "", errors.ResourceUnavailable("Training data", err)
		}
		examples = append(examples, example)
	}
	if err := scanner.Err(); err != nil {
		return "", errors.ResourceUnavailable("Training data", err)
	}

	out, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return "", errors.ResourceUnavailable("Training data", err)
	}
	return string(out), nil
}

func (s *Service) readConfig() (string, error) {
	data, err := os.ReadFile(s.dataPath(dataset.ConfigFile))
	if err != nil {
		return "", errors.ResourceUnavailable("Configuration", err)
	}
	var config interface{}
	if err := json.Unmarshal(data, &config); err != nil {
		return "", errors.ResourceUnavailable("Configuration", err)
	}
	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return "", errors.ResourceUnavailable("Configuration", err)
	}
	return string(out), nil
}

func (s *Service) readPromptTemplate() (string, error) {
	data, err := os.ReadFile(s.dataPath(dataset.PromptTemplateFile))
	if err != nil {
		return "", errors.ResourceUnavailable("Prompt template", err)
	}
	return string(data), nil
}
