package entry

import "github.com/tidwall/gjson"

// Origin identifies which front door delivered an invocation.
type Origin string

const (
	OriginFunctionURL Origin = "function-url"
	OriginAPIGateway  Origin = "api-gateway"
)

// Front door constants fixed at deploy time. API Gateway prepends its
// stage name to every path; Function URLs always report the $default
// stage and never prefix.
const (
	APIGatewayBasePath = "/prod"
	FunctionURLStage   = "$default"
)

// Classify reads requestContext.stage from the raw payload and decides
// the origin. A missing or empty stage and the literal $default stage
// mean a Function URL; any other stage is API Gateway. Malformed
// payloads read as missing, so Classify never fails.
func Classify(event []byte) Origin {
	stage := gjson.GetBytes(event, "requestContext.stage").String()
	if stage == "" || stage == FunctionURLStage {
		return OriginFunctionURL
	}
	return OriginAPIGateway
}
