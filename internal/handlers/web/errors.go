package web

// WebError is an HTTP surface error
type WebError string

func (e WebError) Error() string {
	return string(e)
}

const (
	errNilConfig       WebError = "config cannot be nil"
	errNilAppService   WebError = "app service cannot be nil"
	errNilMessaging    WebError = "messaging service cannot be nil"
	errNothingRendered WebError = "navigation rendered nothing"
)
