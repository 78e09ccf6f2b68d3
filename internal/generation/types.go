package generation

// one authenticated exchange with a generation endpoint
type Request struct {
	Endpoint  string
	AuthToken string
	Payload   map[string]any
}

// outcome of a generation request: either generated text or a message for the operator
type Result struct {
	text    string
	message string
	ok      bool
}

func Success(text string) Result {
	return Result{text: text, ok: true}
}

func Failure(message string) Result {
	return Result{message: message}
}

func (r Result) OK() bool {
	return r.ok
}

// generated text; empty for failures
func (r Result) Text() string {
	return r.text
}

// failure message; empty for successes
func (r Result) Message() string {
	return r.message
}
