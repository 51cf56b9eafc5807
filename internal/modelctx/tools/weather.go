package tools

import (
	"context"
	"fmt"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

type weatherFixture struct {
	TempC     int
	TempF     int
	Condition string
	Humidity  int
}

// Fixture data standing in for a real weather provider.
var weatherFixtures = map[string]weatherFixture{
	"New York, NY":      {TempC: 22, TempF: 72, Condition: "Partly cloudy", Humidity: 65},
	"San Francisco, CA": {TempC: 18, TempF: 64, Condition: "Foggy", Humidity: 80},
	"London, UK":        {TempC: 15, TempF: 59, Condition: "Rainy", Humidity: 85},
	"Tokyo, Japan":      {TempC: 25, TempF: 77, Condition: "Clear", Humidity: 60},
}

var weatherDefault = weatherFixture{TempC: 20, TempF: 68, Condition: "Unknown", Humidity: 50}

func (e *Executor) getWeather(ctx context.Context, args mcp.M) (interface{}, error) {
	location := util.AnyToString(args["location"])
	if location == "" {
		return nil, errors.InvalidArg("location")
	}
	unit := util.AnyToString(args["unit"])
	if unit == "" {
		unit = "celsius"
	}

	weather, ok := weatherFixtures[location]
	if !ok {
		weather = weatherDefault
	}

	temp, symbol := weather.TempC, "°C"
	if unit == "fahrenheit" {
		temp, symbol = weather.TempF, "°F"
	}

	return mcp.M{
		"location":    location,
		"temperature": fmt.Sprintf("%d%s", temp, symbol),
		"condition":   weather.Condition,
		"humidity":    fmt.Sprintf("%d%%", weather.Humidity),
	}, nil
}
