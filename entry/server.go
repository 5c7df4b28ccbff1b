package entry

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/charanteja1799/text2sqlrag-project/app"
)

// engine is the global engine variable for the entry module.
var engine *Engine

// Serve builds the entry engine and hands its Handle method to the
// Lambda runtime. It blocks for the lifetime of the process.
func Serve(entryOpts []Option, appOpts []app.Option) {
	engine = NewEngine(entryOpts, appOpts)
	lambda.Start(engine.Handle)
}

// Close stops the engine gracefully.
func Close() {
	if engine != nil {
		engine.Stop()
	}
}
