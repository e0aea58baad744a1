// SPDX-License-Identifier: MIT
package transport

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"hyperion/pkg/compare"
	"hyperion/pkg/literal"
	"hyperion/pkg/platform"
)

// ErrUnknownOp is returned for requests naming an operation the evaluator
// does not implement.
var ErrUnknownOp = errors.New("unknown operation")

// ErrUnknownPredicate is returned for compare requests with an unrecognized
// pred.
var ErrUnknownPredicate = errors.New("unknown comparison predicate")

// Evaluator answers parse, compare and info requests.
type Evaluator struct {
	epsilons []compare.Epsilon
}

// NewEvaluator returns an Evaluator. eps, when given, is used for compare
// requests that carry no epsilon of their own.
func NewEvaluator(eps ...compare.Epsilon) *Evaluator {
	return &Evaluator{epsilons: eps}
}

func (e *Evaluator) Handle(ctx context.Context, req Request) Response {
	if err := ctx.Err(); err != nil {
		return failure(req, err)
	}

	switch strings.ToLower(req.Op) {
	case OpParse:
		return e.parse(req)
	case OpCompare:
		return e.compare(req)
	case OpInfo:
		facts := platform.Current()
		return Response{ID: req.ID, OK: true, Facts: &facts}
	default:
		return failure(req, errors.Wrapf(ErrUnknownOp, "%q", req.Op))
	}
}

func failure(req Request, err error) Response {
	resp := Response{ID: req.ID, Error: err.Error()}
	for _, sentinel := range []error{literal.ErrOutOfRange, literal.ErrInvalidCharacterSequence, literal.ErrInvalidLiteralType} {
		if errors.Is(err, sentinel) {
			resp.Status = literal.StatusOf(err).String()
			break
		}
	}
	return resp
}

func (e *Evaluator) parse(req Request) Response {
	v, err := ParseOperand(literal.KindOf(req.Kind), req.Literal)
	if err != nil {
		return failure(req, err)
	}
	return Response{ID: req.ID, OK: true, Status: literal.Valid.String(), Value: v}
}

func (e *Evaluator) compare(req Request) Response {
	lhs, err := ParseOperand(literal.KindOf(req.LHSKind), req.LHS)
	if err != nil {
		return failure(req, errors.Wrap(err, "lhs"))
	}
	rhs, err := ParseOperand(literal.KindOf(req.RHSKind), req.RHS)
	if err != nil {
		return failure(req, errors.Wrap(err, "rhs"))
	}

	eps := e.epsilons
	if req.Epsilon != nil {
		kind, err := compare.ParseEpsilonType(req.Epsilon.Type)
		if err != nil {
			return failure(req, err)
		}
		eps = []compare.Epsilon{compare.NewEpsilon(kind, req.Epsilon.Value)}
	}

	o, err := Order(lhs, rhs, eps...)
	if err != nil {
		return failure(req, err)
	}

	v, err := Predicate(req.Pred, o)
	if err != nil {
		return failure(req, err)
	}
	return Response{ID: req.ID, OK: true, Value: v}
}

// Predicate applies the named predicate to an ordering. "order" returns the
// ordering name itself; the comparison predicates return a bool.
func Predicate(pred string, o compare.Ordering) (any, error) {
	switch strings.ToLower(pred) {
	case "eq", "==":
		return o == compare.Equivalent, nil
	case "ne", "!=":
		return o != compare.Equivalent, nil
	case "lt", "<":
		return o == compare.LessThan, nil
	case "le", "<=":
		return o == compare.LessThan || o == compare.Equivalent, nil
	case "gt", ">":
		return o == compare.GreaterThan, nil
	case "ge", ">=":
		return o == compare.GreaterThan || o == compare.Equivalent, nil
	case "order", "cmp", "":
		return o.String(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownPredicate, "%q", pred)
	}
}

var _ Handler = (*Evaluator)(nil)
