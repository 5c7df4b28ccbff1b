package entry

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
)

// WarmupSource marks scheduled keep-warm invocations. Real HTTP events
// never carry a top-level source field, so the sniff cannot collide.
const WarmupSource = "warmup"

// IsWarmup reports whether the payload is a keep-warm event rather than
// an HTTP request.
func IsWarmup(event []byte) bool {
	return gjson.GetBytes(event, "source").String() == WarmupSource
}

type warmupAck struct {
	Status      string `json:"status"`
	Initialized bool   `json:"initialized"`
}

func warmupResponse(initialized bool) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(warmupAck{Status: "warm", Initialized: initialized})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
