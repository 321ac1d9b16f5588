package verify

import (
	"fmt"

	"github.com/dmitrijs2005/onetap/internal/netx"
)

// Kind classifies the result of a verification call.
type Kind string

const (
	KindVerified        Kind = "verified"
	KindRejected        Kind = "rejected"
	KindNetworkError    Kind = "network_error"
	KindUnexpectedError Kind = "unexpected_error"
)

// Outcome is the classified result of one Verify call. Which fields are set
// depends on Kind:
//
//	verified          Body
//	rejected          StatusCode, Reason, Body
//	network_error     Detail, Err
//	unexpected_error  Detail, Err
type Outcome struct {
	Kind       Kind
	Body       string
	StatusCode int
	Reason     string
	Detail     string
	Err        error

	timeout bool
}

func Verified(body string) Outcome {
	return Outcome{Kind: KindVerified, Body: body}
}

func Rejected(statusCode int, reason string) Outcome {
	return Outcome{Kind: KindRejected, StatusCode: statusCode, Reason: reason}
}

func NetworkError(err error) Outcome {
	return Outcome{Kind: KindNetworkError, Detail: errDetail(err), Err: err, timeout: netx.IsTimeout(err)}
}

func UnexpectedError(err error) Outcome {
	return Outcome{Kind: KindUnexpectedError, Detail: errDetail(err), Err: err}
}

// OK reports whether the endpoint accepted the token.
func (o Outcome) OK() bool { return o.Kind == KindVerified }

// Timeout reports whether a network error was caused by a deadline.
func (o Outcome) Timeout() bool { return o.timeout }

func (o Outcome) String() string {
	switch o.Kind {
	case KindVerified:
		return fmt.Sprintf("verified (%d bytes)", len(o.Body))
	case KindRejected:
		return fmt.Sprintf("rejected: %d %s", o.StatusCode, o.Reason)
	default:
		return fmt.Sprintf("%s: %s", o.Kind, o.Detail)
	}
}

func errDetail(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
