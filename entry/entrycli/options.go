package entrycli

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/mohae/deepcopy"
)

// LambdaClient is the Invoke surface of the AWS client, kept narrow so
// tests can inject a recorder.
type LambdaClient interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput,
		optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type Options struct {
	LambdaClient LambdaClient
	FunctionName string
}

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

var defaultOptions = &Options{}

// NewOptions applies opts over the defaults. An unset function name
// falls back to AWS_LAMBDA_FUNCTION_NAME, so a function can warm itself.
func NewOptions(opts ...Option) *Options {
	o := deepcopy.Copy(defaultOptions).(*Options)
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
	if o.FunctionName == "" {
		o.FunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	}
	return o
}

// WithLambdaClient sets the Lambda client used for invocations.
func WithLambdaClient(client LambdaClient) Option {
	return OptionFunc(func(o *Options) {
		o.LambdaClient = client
	})
}

// WithFunctionName sets the target Lambda function name.
func WithFunctionName(name string) Option {
	return OptionFunc(func(o *Options) {
		o.FunctionName = name
	})
}
