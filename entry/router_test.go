package entry

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// stubProxy records the payloads it receives and returns a canned answer.
type stubProxy struct {
	received [][]byte
	response events.APIGatewayV2HTTPResponse
	err      error
}

func (s *stubProxy) Proxy(ctx context.Context, event []byte) (events.APIGatewayV2HTTPResponse, error) {
	s.received = append(s.received, event)
	return s.response, s.err
}

func TestDispatchSelectsBoundProxy(t *testing.T) {
	gateway := &stubProxy{response: events.APIGatewayV2HTTPResponse{StatusCode: 201}}
	function := &stubProxy{response: events.APIGatewayV2HTTPResponse{StatusCode: 202}}
	r := NewRouter(map[Origin]Proxy{
		OriginAPIGateway:  gateway,
		OriginFunctionURL: function,
	})

	resp, err := r.Dispatch(context.Background(), OriginAPIGateway, []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Dispatch(gateway) error = %v, want nil", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("Dispatch(gateway) status = %d, want 201", resp.StatusCode)
	}

	resp, err = r.Dispatch(context.Background(), OriginFunctionURL, []byte(`{"b":2}`))
	if err != nil {
		t.Fatalf("Dispatch(function) error = %v, want nil", err)
	}
	if resp.StatusCode != 202 {
		t.Errorf("Dispatch(function) status = %d, want 202", resp.StatusCode)
	}

	if len(gateway.received) != 1 || len(function.received) != 1 {
		t.Errorf("proxy hits = %d/%d, want 1/1", len(gateway.received), len(function.received))
	}
}

func TestDispatchUnknownOrigin(t *testing.T) {
	r := NewRouter(map[Origin]Proxy{
		OriginFunctionURL: &stubProxy{},
	})

	_, err := r.Dispatch(context.Background(), Origin("queue"), []byte(`{}`))
	if err == nil {
		t.Error("Dispatch(unknown origin) error = nil, want failure")
	}
}

func TestDispatchReturnsProxyError(t *testing.T) {
	boom := errors.New("decode event: unexpected end of JSON input")
	r := NewRouter(map[Origin]Proxy{
		OriginFunctionURL: &stubProxy{err: boom},
	})

	_, err := r.Dispatch(context.Background(), OriginFunctionURL, []byte(`{}`))
	if !errors.Is(err, boom) {
		t.Errorf("Dispatch() error = %v, want proxy error unmodified", err)
	}
}

// *For any* payload and any canned response, dispatch SHALL hand the
// payload to the selected proxy verbatim and SHALL return the proxy's
// response without touching it.
func TestDispatchPassThroughFidelity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("dispatch neither mutates payload nor response", prop.ForAll(
		func(raw []byte, status int, body string) bool {
			want := events.APIGatewayV2HTTPResponse{StatusCode: status, Body: body}
			p := &stubProxy{response: want}
			r := NewRouter(map[Origin]Proxy{OriginFunctionURL: p})

			got, err := r.Dispatch(context.Background(), OriginFunctionURL, raw)
			if err != nil {
				t.Logf("Dispatch() error = %v, want nil", err)
				return false
			}
			if len(p.received) != 1 || !bytes.Equal(p.received[0], raw) {
				t.Logf("proxy saw %q, want %q", p.received, raw)
				return false
			}
			return got.StatusCode == want.StatusCode && got.Body == want.Body
		},
		gen.SliceOf(gen.UInt8()),
		gen.IntRange(100, 599),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
