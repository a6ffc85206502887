package validator

import (
	"earnings/model"

	"github.com/Oudwins/zog"
)

// BatchRequestShape requires a non-empty symbols list. Individual entries are
// checked per symbol by the orchestrator so one bad entry cannot fail the batch.
func BatchRequestShape(maxSymbols int) zog.Shape {
	symbols := zog.Slice(zog.String()).Required().Min(1)
	if maxSymbols > 0 {
		symbols = symbols.Max(maxSymbols)
	}
	return zog.Shape{
		"Symbols": symbols,
	}
}

// ValidateBatchRequest returns a flat field -> messages map, or nil when req
// is acceptable.
func ValidateBatchRequest(req *model.BatchRequest, maxSymbols int) map[string][]string {
	issues := zog.Struct(BatchRequestShape(maxSymbols)).Validate(req)
	if len(issues) == 0 {
		return nil
	}

	out := make(map[string][]string, len(issues))
	for field, list := range issues {
		for _, issue := range list {
			out[field] = append(out[field], issue.Message)
		}
	}
	return out
}
