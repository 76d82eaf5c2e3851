package models

type CustomError struct {
	Kind    string
	Code    string
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}

func (e CustomError) ErrorCode() string {
	return e.Code
}

func (e CustomError) ErrorKind() string {
	return e.Kind
}
