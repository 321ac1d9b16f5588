package credential

// ResultKind classifies an acquisition.
type ResultKind string

const (
	ResultObtained           ResultKind = "obtained"
	ResultNoUsableCredential ResultKind = "no_usable_credential"
	ResultAcquisitionFailed  ResultKind = "acquisition_failed"
)

// Result is the outcome of Acquirer.Acquire. Token is set only for
// ResultObtained, Detail only for ResultAcquisitionFailed.
type Result struct {
	Kind   ResultKind
	Token  string
	Detail string
}

func Obtained(token string) Result {
	return Result{Kind: ResultObtained, Token: token}
}

func NoUsableCredential() Result {
	return Result{Kind: ResultNoUsableCredential}
}

func AcquisitionFailed(detail string) Result {
	return Result{Kind: ResultAcquisitionFailed, Detail: detail}
}

// OK reports whether a token was obtained.
func (r Result) OK() bool { return r.Kind == ResultObtained && r.Token != "" }
