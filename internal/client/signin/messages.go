package signin

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/verify"
)

// acquisitionState maps a failed acquisition to its terminal state. It must
// not be called with an obtained token.
func acquisitionState(res credential.Result) State {
	if res.Kind == credential.ResultAcquisitionFailed {
		return Failed("Sign-in failed: " + res.Detail)
	}
	return Failed(MsgNoIDToken)
}

func verificationState(out verify.Outcome) State {
	switch out.Kind {
	case verify.KindVerified:
		return Succeeded("Server response: " + out.Body)
	case verify.KindRejected:
		return Failed(fmt.Sprintf("Server verification failed: %d %s", out.StatusCode, out.Reason))
	case verify.KindNetworkError:
		if errors.Is(out.Err, context.Canceled) {
			return Failed(MsgVerifyCanceled)
		}
		if out.Timeout() {
			return Failed(MsgNetworkTimeout)
		}
		return Failed(MsgNetworkError)
	case verify.KindUnexpectedError:
		return Failed("An unexpected error occurred: " + out.Detail)
	}
	return Failed(fmt.Sprintf("An unexpected error occurred: unknown verification outcome %q", out.Kind))
}
