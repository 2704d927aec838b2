package calculatorbridge

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mann-127/duoapi/bridge/scaffolding/errs"
	"github.com/mann-127/duoapi/core/calc"
	"github.com/mann-127/duoapi/infrastructure/web"
)

const serviceName = "calculator-api"

// bridge provides HTTP handlers for the calculator operations.
type bridge struct{}

// newBridge creates a new calculator bridge
func newBridge() *bridge {
	return &bridge{}
}

// httpIndex serves the root banner.
func (b *bridge) httpIndex(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewTextResponse("Hello, CI/CD! This is a simple REST API.")
}

// httpAdd handles GET requests for addition.
func (b *bridge) httpAdd(ctx context.Context, r *http.Request) web.Encoder {
	a, bb, err := parseOperands(r)
	if err != nil {
		return err
	}
	return web.NewJSONResponse(ResultResponse{Result: calc.Add(a, bb)})
}

// httpSubtract handles GET requests for subtraction.
func (b *bridge) httpSubtract(ctx context.Context, r *http.Request) web.Encoder {
	a, bb, err := parseOperands(r)
	if err != nil {
		return err
	}
	return web.NewJSONResponse(ResultResponse{Result: calc.Subtract(a, bb)})
}

// httpMultiply handles GET requests for multiplication.
func (b *bridge) httpMultiply(ctx context.Context, r *http.Request) web.Encoder {
	a, bb, err := parseOperands(r)
	if err != nil {
		return err
	}
	return web.NewJSONResponse(ResultResponse{Result: calc.Multiply(a, bb)})
}

// httpDivide handles GET requests for division. A missing operand still
// defaults to zero, so a zero divisor is rejected rather than computed.
func (b *bridge) httpDivide(ctx context.Context, r *http.Request) web.Encoder {
	a, bb, err := parseOperands(r)
	if err != nil {
		return err
	}

	quotient, divErr := calc.Divide(a, bb)
	if divErr != nil {
		return errs.Newf(errs.InvalidArgument, "%s", divErr)
	}

	return web.NewJSONResponse(QuotientResponse{Result: quotient})
}

// httpCube handles GET requests for cubing a single operand.
func (b *bridge) httpCube(ctx context.Context, r *http.Request) web.Encoder {
	x, err := parseIntParam(r, "x")
	if err != nil {
		return err
	}
	return web.NewJSONResponse(ResultResponse{Result: calc.Cube(x)})
}

// httpArea handles POST requests computing a rectangle area from a JSON body.
func (b *bridge) httpArea(ctx context.Context, r *http.Request) web.Encoder {
	var input AreaInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid input: 'width' and 'height' must be integers")
	}

	if input.Width == nil || input.Height == nil {
		return errs.Newf(errs.InvalidArgument, "missing 'width' or 'height' in JSON body")
	}

	width, werr := strconv.Atoi(input.Width.String())
	height, herr := strconv.Atoi(input.Height.String())
	if werr != nil || herr != nil {
		return errs.Newf(errs.InvalidArgument, "invalid input: 'width' and 'height' must be integers")
	}

	return web.NewJSONResponse(AreaResponse{
		Result: calc.Area(width, height),
		Units:  "square units",
	})
}

// httpHealth returns the fixed liveness payload.
func (b *bridge) httpHealth(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewJSONResponse(HealthResponse{
		Status:  "ok",
		Service: serviceName,
	})
}

// parseOperands reads the a and b query parameters, defaulting absent
// values to zero.
func parseOperands(r *http.Request) (int, int, *errs.Error) {
	a, err := parseIntParam(r, "a")
	if err != nil {
		return 0, 0, err
	}
	b, err := parseIntParam(r, "b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseIntParam(r *http.Request, name string) (int, *errs.Error) {
	raw := web.QueryParam(r, name)
	if raw == "" {
		raw = "0"
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.Newf(errs.InvalidArgument, "invalid input: '%s' must be an integer", name)
	}
	return v, nil
}
