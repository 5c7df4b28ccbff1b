package entry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

// ForwardedPrefixHeader carries the path prefix the front door consumed
// before the request reached the application.
const ForwardedPrefixHeader = "X-Forwarded-Prefix"

// Proxy translates a raw invocation payload into an HTTP request against
// the application and the application's answer back into a payload the
// platform accepts.
type Proxy interface {
	Proxy(ctx context.Context, event []byte) (events.APIGatewayV2HTTPResponse, error)
}

// binding is one immutable origin-specific adapter around the shared
// application. basePath is the prefix stripped from incoming paths;
// empty means paths pass through untouched.
type binding struct {
	basePath string
	adapter  *ginadapter.GinLambdaV2
}

func newBinding(app *gin.Engine, basePath string) *binding {
	adapter := ginadapter.NewV2(app)
	if basePath != "" {
		adapter.StripBasePath(basePath)
	}
	return &binding{
		basePath: basePath,
		adapter:  adapter,
	}
}

func (b *binding) Proxy(ctx context.Context, event []byte) (events.APIGatewayV2HTTPResponse, error) {
	var req events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("entry: decode event: %w", err)
	}

	if b.basePath != "" {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		req.Headers[ForwardedPrefixHeader] = b.basePath
	}

	return b.adapter.ProxyWithContext(ctx, req)
}
