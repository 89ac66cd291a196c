package http

const (
	ErrorUnmarshal = "Error while unmarshal"
)
