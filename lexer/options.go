package lexer

// Option configures a tokenizer.
type Option func(*options)

type options struct {
	contextLength int
	errorHandler  func(error)
	keepLexemes   bool
}

// DefaultContextLength is the default length (in bytes) of the input snippet
// carried by a LexicalError.
const DefaultContextLength = 20

func defaultOptions() options {
	return options{
		contextLength: DefaultContextLength,
		errorHandler:  logError,
		keepLexemes:   true,
	}
}

// ContextLength sets the maximum length of the input snippet carried by
// lexical errors.
func ContextLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.contextLength = n
		}
	}
}

// ErrorHandler sets a function which will be called once with a lexical error,
// before the tokenizer stops. The default handler traces the error.
// Setting nil restores the default.
func ErrorHandler(h func(error)) Option {
	return func(o *options) {
		if h == nil {
			h = logError
		}
		o.errorHandler = h
	}
}

// KeepLexemes tells the tokenizer whether to copy the matched text into
// tokens. Default is true. Tokens always carry their span.
func KeepLexemes(b bool) Option {
	return func(o *options) {
		o.keepLexemes = b
	}
}

// Default error reporting function for tokenizers
func logError(e error) {
	tracer().Errorf("lexical error: %v", e)
}
