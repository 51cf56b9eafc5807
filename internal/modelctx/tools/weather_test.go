package tools

import (
	"context"
	"testing"

	"github.com/modelctx/modelctx/internal/mcp"
)

func TestGetWeather(t *testing.T) {
	e := NewExecutor(nil)

	tests := []struct {
		name     string
		args     mcp.M
		wantTemp string
		wantCond string
	}{
		{"known location celsius", mcp.M{"location": "New York, NY"}, "22°C", "Partly cloudy"},
		{"known location fahrenheit", mcp.M{"location": "New York, NY", "unit": "fahrenheit"}, "72°F", "Partly cloudy"},
		{"foggy city", mcp.M{"location": "San Francisco, CA"}, "18°C", "Foggy"},
		{"unknown location default", mcp.M{"location": "Nowhere, XX"}, "20°C", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := e.Execute(context.Background(), "get_weather", tt.args)
			if err != nil {
				t.Fatal(err)
			}
			m := result.(mcp.M)
			if m["temperature"] != tt.wantTemp {
				t.Errorf("temperature = %v, want %v", m["temperature"], tt.wantTemp)
			}
			if m["condition"] != tt.wantCond {
				t.Errorf("condition = %v, want %v", m["condition"], tt.wantCond)
			}
			if m["location"] != tt.args["location"] {
				t.Errorf("location = %v", m["location"])
			}
		})
	}
}

func TestGetWeatherMissingLocation(t *testing.T) {
	e := NewExecutor(nil)
	if _, err := e.Execute(context.Background(), "get_weather", mcp.M{}); err == nil {
		t.Error("expected error for missing location")
	}
}
