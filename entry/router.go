package entry

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Router holds the immutable origin-to-proxy table. Every proxy exists
// before the first invocation; dispatch only selects, it never builds.
type Router struct {
	proxies map[Origin]Proxy
}

func NewRouter(proxies map[Origin]Proxy) *Router {
	table := make(map[Origin]Proxy, len(proxies))
	for origin, proxy := range proxies {
		table[origin] = proxy
	}
	return &Router{proxies: table}
}

// Dispatch hands the untouched payload to the proxy bound to origin and
// returns the proxy's answer unmodified.
func (r *Router) Dispatch(ctx context.Context, origin Origin, event []byte) (events.APIGatewayV2HTTPResponse, error) {
	proxy, ok := r.proxies[origin]
	if !ok {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("entry: no proxy bound for origin %q", origin)
	}
	return proxy.Proxy(ctx, event)
}
