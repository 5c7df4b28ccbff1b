package entrycli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/charanteja1799/text2sqlrag-project/entry"
)

// warmupPayload is the keep-warm event the entry engine recognizes.
type warmupPayload struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// Client keeps deployed execution environments warm by firing async
// invocations at the function.
type Client struct {
	*Options
}

func NewClient(opts ...Option) *Client {
	return &Client{
		Options: NewOptions(opts...),
	}
}

// NewDefaultClient builds a client for functionName using the ambient
// AWS configuration.
func NewDefaultClient(ctx context.Context, functionName string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("entrycli: load aws config: %w", err)
	}
	return NewClient(
		WithLambdaClient(lambda.NewFromConfig(cfg)),
		WithFunctionName(functionName),
	), nil
}

// Warm fires n concurrent async keep-warm invocations so the platform
// spreads them over n execution environments. It returns the first
// error observed; successful invocations are fire-and-forget.
func (c *Client) Warm(ctx context.Context, n int) error {
	if c.LambdaClient == nil {
		return errors.New("entrycli: no lambda client configured")
	}
	if n < 1 {
		n = 1
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = c.warmOne(ctx, n)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("entrycli: warm: %w", err)
		}
	}
	return nil
}

func (c *Client) warmOne(ctx context.Context, concurrency int) error {
	payload, err := json.Marshal(warmupPayload{
		Source:      entry.WarmupSource,
		Concurrency: concurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	_, err = c.LambdaClient.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(c.FunctionName),
		InvocationType: types.InvocationTypeEvent,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("lambda invoke failed: %w", err)
	}

	return nil
}
