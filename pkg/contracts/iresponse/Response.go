package iresponse

// Response is the envelope every request execution resolves to. Data is nil
// whenever the call failed or the server answered with an empty body.
type Response[T any] struct {
	Data       *T     `json:"data"`
	StatusCode int    `json:"statusCode"`
	ErrMsg     string `json:"errMsg,omitempty"`
}

func Success[T any](statusCode int, data *T) *Response[T] {
	return &Response[T]{
		Data:       data,
		StatusCode: statusCode,
	}
}

func Failure[T any](statusCode int, errMsg string) *Response[T] {
	return &Response[T]{
		Data:       nil,
		StatusCode: statusCode,
		ErrMsg:     errMsg,
	}
}

func (response *Response[T]) Failed() bool {
	return response.ErrMsg != ""
}
