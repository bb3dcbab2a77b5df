package models

// ErrorValidation rejects malformed or invariant-violating input before
// anything is persisted (inverted ranges, overlapping intervals, bad targets).
type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

// ErrorNotFound signals that a referenced text, article, version or effect
// does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}

// DataFault describes an invariant violation discovered in already-persisted
// data. It is never returned from a read path; reads degrade deterministically
// and the fault is logged for the coherence scan instead.
type DataFault struct {
	Category    FaultCategory
	ArticleID   uint
	Description string
}

func (e DataFault) Error() string {
	return e.Description
}
